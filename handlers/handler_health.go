package handlers

import (
	"net/http"
	"time"
)

type healthResp struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, healthResp{Status: "healthy", Timestamp: time.Now().UTC()})
}

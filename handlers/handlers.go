package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/MatBureau/rocketone/internal/page"
	"github.com/MatBureau/rocketone/internal/system"
)

type HostCollector interface {
	Collect(ctx context.Context) system.HostSnapshot
}

type EnvCollector interface {
	Collect() system.EnvironmentTable
}

type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

type Handlers struct {
	host     HostCollector
	env      EnvCollector
	renderer Renderer
}

func New(host HostCollector, env EnvCollector, renderer Renderer) *Handlers {
	return &Handlers{host: host, env: env, renderer: renderer}
}

func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	h.writeHTML(w, r, page.Index, page.NewIndexContext())
}

func (h *Handlers) Info(w http.ResponseWriter, r *http.Request) {
	snap := h.host.Collect(r.Context())
	h.writeHTML(w, r, page.Info, page.NewInfoContext(snap))
}

func (h *Handlers) Env(w http.ResponseWriter, r *http.Request) {
	h.writeHTML(w, r, page.Env, page.NewEnvContext(h.env.Collect()))
}

func (h *Handlers) InfoJSON(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, page.NewInfoContext(h.host.Collect(r.Context())))
}

func (h *Handlers) EnvJSON(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, page.NewEnvContext(h.env.Collect()))
}

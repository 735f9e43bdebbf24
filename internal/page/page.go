// Package page turns host snapshots and environment tables into HTML.
package page

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/MatBureau/rocketone/internal/system"
)

// Placeholder replaces any fact the platform could not report.
const Placeholder = "N/A"

const (
	Index = "index"
	Info  = "info"
	Env   = "env"
)

//go:embed templates/*.html
var templateFS embed.FS

type IndexContext struct {
	Title string `json:"title"`
}

type InfoContext struct {
	Title         string `json:"title"`
	OSName        string `json:"os_name"`
	OSVersion     string `json:"os_version"`
	KernelVersion string `json:"kernel_version"`
	CPUModel      string `json:"cpu_model"`
	CoreCount     string `json:"core_count"`
	Memory        string `json:"memory"`
	Hostname      string `json:"hostname"`
}

type EnvContext struct {
	Title string                  `json:"title"`
	Vars  system.EnvironmentTable `json:"vars"`
}

func NewIndexContext() IndexContext {
	return IndexContext{Title: "Willkommen bei RocketOne"}
}

// NewInfoContext resolves every absent field to Placeholder.
func NewInfoContext(s system.HostSnapshot) InfoContext {
	return InfoContext{
		Title:         "Systeminformationen",
		OSName:        OrDefault(s.OSName, Placeholder),
		OSVersion:     OrDefault(s.OSVersion, Placeholder),
		KernelVersion: OrDefault(s.KernelVersion, Placeholder),
		CPUModel:      OrDefault(s.CPUModel, Placeholder),
		CoreCount:     OrDefault(s.PhysicalCores, Placeholder),
		Memory:        FormatGiB(s.TotalMemoryGiB),
		Hostname:      OrDefault(s.Hostname, Placeholder),
	}
}

func NewEnvContext(vars system.EnvironmentTable) EnvContext {
	return EnvContext{Title: "Umgebungsvariablen", Vars: vars}
}

// OrDefault formats *v, or returns def when v is nil.
func OrDefault[T any](v *T, def string) string {
	if v == nil {
		return def
	}
	return fmt.Sprint(*v)
}

func FormatGiB(gib float64) string {
	return strconv.FormatFloat(gib, 'f', 2, 64)
}

type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses each page together with the shared layout.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{Index, Info, Env} {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

package system

import (
	"context"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

const bytesPerGiB = 1024 * 1024 * 1024

// Facts is the source of raw host facts. GopsutilFacts reads the real
// machine; tests substitute their own.
type Facts interface {
	Host(ctx context.Context) (*host.InfoStat, error)
	CPUs(ctx context.Context) ([]cpu.InfoStat, error)
	PhysicalCores(ctx context.Context) (int, error)
	VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error)
}

// HostSnapshot is a point-in-time capture of host facts. A nil field means
// the platform did not report it.
type HostSnapshot struct {
	OSName         *string `json:"os_name"`
	OSVersion      *string `json:"os_version"`
	KernelVersion  *string `json:"kernel_version"`
	CPUModel       *string `json:"cpu_model"`
	PhysicalCores  *int    `json:"physical_cores"`
	TotalMemoryGiB float64 `json:"total_memory_gib"`
	Hostname       *string `json:"hostname"`
}

type Collector struct {
	facts Facts
}

// NewCollector returns a Collector reading from f, or from gopsutil when f
// is nil.
func NewCollector(f Facts) *Collector {
	if f == nil {
		f = GopsutilFacts{}
	}
	return &Collector{facts: f}
}

// Collect queries every fact independently. A failing query only blanks
// its own field.
func (c *Collector) Collect(ctx context.Context) HostSnapshot {
	var s HostSnapshot

	// host.Info can return a partially filled struct alongside an error
	if info, _ := c.facts.Host(ctx); info != nil {
		s.OSName = nonEmpty(info.Platform)
		s.OSVersion = nonEmpty(info.PlatformVersion)
		s.KernelVersion = nonEmpty(info.KernelVersion)
		s.Hostname = nonEmpty(info.Hostname)
	}

	if cpus, err := c.facts.CPUs(ctx); err == nil && len(cpus) > 0 {
		s.CPUModel = nonEmpty(cpus[0].ModelName)
	}

	if n, err := c.facts.PhysicalCores(ctx); err == nil && n > 0 {
		s.PhysicalCores = &n
	}

	if vm, err := c.facts.VirtualMemory(ctx); err == nil && vm != nil {
		s.TotalMemoryGiB = float64(vm.Total) / bytesPerGiB
	}

	return s
}

func nonEmpty(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// GopsutilFacts reads host facts through gopsutil.
type GopsutilFacts struct{}

func (GopsutilFacts) Host(ctx context.Context) (*host.InfoStat, error) {
	return host.InfoWithContext(ctx)
}

func (GopsutilFacts) CPUs(ctx context.Context) ([]cpu.InfoStat, error) {
	return cpu.InfoWithContext(ctx)
}

func (GopsutilFacts) PhysicalCores(ctx context.Context) (int, error) {
	return cpu.CountsWithContext(ctx, false)
}

func (GopsutilFacts) VirtualMemory(ctx context.Context) (*mem.VirtualMemoryStat, error) {
	return mem.VirtualMemoryWithContext(ctx)
}

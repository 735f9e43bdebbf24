package system

import (
	"os"
	"strings"
)

type EnvVar struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// EnvironmentTable keeps the order of the platform listing.
type EnvironmentTable []EnvVar

type EnvironmentCollector struct {
	// Environ lists "KEY=value" entries. Defaults to os.Environ.
	Environ func() []string
}

// Collect returns every variable verbatim, with no filtering or redaction.
func (c EnvironmentCollector) Collect() EnvironmentTable {
	environ := c.Environ
	if environ == nil {
		environ = os.Environ
	}

	entries := environ()
	table := make(EnvironmentTable, 0, len(entries))
	for _, e := range entries {
		k, v, _ := strings.Cut(e, "=")
		table = append(table, EnvVar{Key: k, Value: v})
	}
	return table
}

package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironmentCollect(t *testing.T) {
	tests := []struct {
		name    string
		environ []string
		want    EnvironmentTable
	}{
		{
			name:    "single variable",
			environ: []string{"PATH=/usr/bin"},
			want:    EnvironmentTable{{Key: "PATH", Value: "/usr/bin"}},
		},
		{
			name:    "listing order is kept",
			environ: []string{"ZED=1", "ALPHA=2", "MID=3"},
			want: EnvironmentTable{
				{Key: "ZED", Value: "1"},
				{Key: "ALPHA", Value: "2"},
				{Key: "MID", Value: "3"},
			},
		},
		{
			name:    "value containing equals sign",
			environ: []string{"OPTS=a=b=c"},
			want:    EnvironmentTable{{Key: "OPTS", Value: "a=b=c"}},
		},
		{
			name:    "duplicates and empty values are kept",
			environ: []string{"A=1", "A=1", "EMPTY=", "BARE"},
			want: EnvironmentTable{
				{Key: "A", Value: "1"},
				{Key: "A", Value: "1"},
				{Key: "EMPTY", Value: ""},
				{Key: "BARE", Value: ""},
			},
		},
		{
			name:    "empty environment",
			environ: []string{},
			want:    EnvironmentTable{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnvironmentCollector{Environ: func() []string { return tt.environ }}.Collect()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnvironmentCollectDefaultsToProcessEnv(t *testing.T) {
	t.Setenv("ROCKETONE_TEST_VAR", "on")

	got := EnvironmentCollector{}.Collect()

	assert.Contains(t, got, EnvVar{Key: "ROCKETONE_TEST_VAR", Value: "on"})
}

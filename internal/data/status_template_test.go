package data

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatusTemplates(t *testing.T) {
	raw := []byte(`
statuses:
  - name: Haste
    effect: SpeedChange
    duration: 30s
    params:
      value: "25"
  - name: Entangle
    effect: Root
    duration: 1500ms
`)
	got, err := ParseStatusTemplates(raw)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, StatusTemplate{
		Name:     "Haste",
		Effect:   "SpeedChange",
		Duration: 30 * time.Second,
		Params:   map[string]string{"value": "25"},
	}, got[0])
	assert.Equal(t, 1500*time.Millisecond, got[1].Duration)
	assert.Nil(t, got[1].Params)
}

func TestParseStatusTemplates_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed", "statuses: [\n"},
		{"missing name", "statuses:\n  - effect: Root\n    duration: 1s\n"},
		{"missing effect", "statuses:\n  - name: X\n    duration: 1s\n"},
		{"zero duration", "statuses:\n  - name: X\n    effect: Root\n"},
		{"duplicate", "statuses:\n  - {name: X, effect: Root, duration: 1s}\n  - {name: X, effect: Root, duration: 2s}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStatusTemplates([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestLoadStatusTemplates(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		got, err := LoadStatusTemplates(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultStatusTemplates(), got)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "statuses.yaml")
		require.NoError(t, os.WriteFile(path, []byte("statuses:\n  - {name: Guard, effect: DamageShield, duration: 3s}\n"), 0o600))

		got, err := LoadStatusTemplates(path)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Guard", got[0].Name)
	})

	t.Run("invalid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "statuses.yaml")
		require.NoError(t, os.WriteFile(path, []byte("statuses:\n  - {name: Guard}\n"), 0o600))

		_, err := LoadStatusTemplates(path)
		assert.Error(t, err)
	})
}

func TestDefaultStatusTemplates_Valid(t *testing.T) {
	seen := map[string]bool{}
	for _, tmpl := range DefaultStatusTemplates() {
		require.NoError(t, tmpl.Validate())
		assert.False(t, seen[tmpl.Name], "duplicate %s", tmpl.Name)
		seen[tmpl.Name] = true
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenario = `
image_size: 800x600
width: 400
height: 300
step_increment: 10
steps:
  - op: fit
  - op: scale_at
    scale: 2
    x: 100
    y: 50
  - op: translate
    dx: 1000
  - op: scroll_v
    value: 40
`

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenario), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "800x600", cfg.ImageSize)
	assert.Equal(t, 400, cfg.Width)
	assert.Equal(t, 300, cfg.Height)
	assert.Equal(t, 10.0, cfg.StepIncrement)
	require.Len(t, cfg.Steps, 4)
	assert.Equal(t, Step{Op: OpScaleAt, Scale: 2, X: 100, Y: 50}, cfg.Steps[1])
	assert.Equal(t, Step{Op: OpTranslate, DX: 1000}, cfg.Steps[2])
	assert.Equal(t, 40.0, cfg.Steps[3].Value)
}

func TestParse_UnknownOp(t *testing.T) {
	_, err := Parse([]byte("steps:\n  - op: rotate\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOp)
	assert.Contains(t, err.Error(), "step 0")
}

func TestParse_BadImageSize(t *testing.T) {
	_, err := Parse([]byte("image_size: huge\n"))
	assert.ErrorIs(t, err, ErrBadSize)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("steps: [\n"))
	assert.Error(t, err)
}

func TestMerge_FlagsTakePrecedence(t *testing.T) {
	cfg := &Config{Image: "a.png", Width: 400, Height: 300, Scale: 2}

	cfg.Merge(Overrides{Width: 1024, Scale: 0.5})
	assert.Equal(t, "a.png", cfg.Image)
	assert.Equal(t, 1024, cfg.Width)
	assert.Equal(t, 300, cfg.Height)
	assert.Equal(t, 0.5, cfg.Scale)

	cfg.Merge(Overrides{Image: "b.png", ImageSize: "10x10", Height: 50})
	assert.Equal(t, "b.png", cfg.Image)
	assert.Equal(t, "10x10", cfg.ImageSize)
	assert.Equal(t, 50, cfg.Height)
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input   string
		w, h    int
		wantErr bool
	}{
		{"800x600", 800, 600, false},
		{" 1920X1080 ", 1920, 1080, false},
		{"0x0", 0, 0, false},
		{"800", 0, 0, true},
		{"ax600", 0, 0, true},
		{"800x-1", 0, 0, true},
		{"", 0, 0, true},
	}
	for _, tt := range tests {
		w, h, err := ParseSize(tt.input)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrBadSize, "ParseSize(%q)", tt.input)
			continue
		}
		require.NoError(t, err, "ParseSize(%q)", tt.input)
		assert.Equal(t, tt.w, w)
		assert.Equal(t, tt.h, h)
	}
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/banshee-data/lut2png/internal/fsutil"
	"github.com/banshee-data/lut2png/internal/lut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyConfigDefaults(t *testing.T) {
	cfg := EmptyConfig()

	assert.Equal(t, "normalize", cfg.GetMode())
	assert.Equal(t, "base64", cfg.GetOutput())
	assert.Equal(t, "ltc_sheen_lut.png", cfg.GetOutfile())
	assert.False(t, cfg.GetSwapXY())
	assert.Empty(t, cfg.GetPlot())
	assert.Empty(t, cfg.GetChart())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "lut2png.json")

	testJSON := `{
  "mode": "clip",
  "output": "png",
  "outfile": "sheen.png",
  "swap_xy": true,
  "plot": "preview.png",
  "chart": "preview.html"
}`
	require.NoError(t, os.WriteFile(configPath, []byte(testJSON), 0644))

	cfg, err := LoadConfig(fsutil.OSFileSystem{}, configPath)
	require.NoError(t, err)

	assert.Equal(t, "clip", cfg.GetMode())
	assert.Equal(t, "png", cfg.GetOutput())
	assert.Equal(t, "sheen.png", cfg.GetOutfile())
	assert.True(t, cfg.GetSwapXY())
	assert.Equal(t, "preview.png", cfg.GetPlot())
	assert.Equal(t, "preview.html", cfg.GetChart())
}

func TestLoadConfig_Partial(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()
	require.NoError(t, mfs.WriteFile("partial.json", []byte(`{"swap_xy": true}`), 0644))

	cfg, err := LoadConfig(mfs, "partial.json")
	require.NoError(t, err)

	assert.True(t, cfg.GetSwapXY())
	assert.Equal(t, "normalize", cfg.GetMode(), "omitted fields keep defaults")
	assert.Equal(t, "ltc_sheen_lut.png", cfg.GetOutfile())
}

func TestLoadConfig_Errors(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()
	require.NoError(t, mfs.WriteFile("bad.json", []byte(`{"mode": `), 0644))
	require.NoError(t, mfs.WriteFile("mode.json", []byte(`{"mode": "stretch"}`), 0644))
	require.NoError(t, mfs.WriteFile("output.json", []byte(`{"output": "jpeg"}`), 0644))
	require.NoError(t, mfs.WriteFile("outfile.json", []byte(`{"outfile": ""}`), 0644))
	require.NoError(t, mfs.WriteFile("config.yaml", []byte(`mode: clip`), 0644))
	require.NoError(t, mfs.WriteFile("huge.json", make([]byte, maxFileSize+1), 0644))

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"wrong extension", "config.yaml", ".json extension"},
		{"missing file", "missing.json", "failed to stat"},
		{"too large", "huge.json", "too large"},
		{"malformed", "bad.json", "failed to parse"},
		{"unknown mode", "mode.json", "unknown mode"},
		{"unknown output", "output.json", "unknown output format"},
		{"empty outfile", "outfile.json", "outfile"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(mfs, tc.path)
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tc.wantErr), "error %q should mention %q", err, tc.wantErr)
		})
	}
}

func TestValidate_WrapsSentinels(t *testing.T) {
	mode := "stretch"
	err := (&Config{Mode: &mode}).Validate()
	assert.True(t, errors.Is(err, lut.ErrUnknownMode))

	output := "jpeg"
	err = (&Config{Output: &output}).Validate()
	assert.True(t, errors.Is(err, lut.ErrUnknownFormat))
}

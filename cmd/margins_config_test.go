package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patefield-go/patefield/rcont"
)

// TestExampleConfigs_Load verifies that every shipped example margins file
// parses and passes margin validation.
func TestExampleConfigs_Load(t *testing.T) {
	cases := []struct {
		file    string
		rowSums []int64
		colSums []int64
	}{
		{"margins-2x2.yaml", []int64{3, 2}, []int64{4, 1}},
		{"margins-3x4.yaml", []int64{10, 20, 30}, []int64{15, 15, 20, 10}},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			cfg, err := LoadMarginsConfig(filepath.Join("..", "examples", tc.file))
			require.NoError(t, err, "failed to load %s", tc.file)

			assert.Equal(t, tc.rowSums, cfg.RowSums)
			assert.Equal(t, tc.colSums, cfg.ColSums)

			_, err = rcont.NewMargins(cfg.RowSums, cfg.ColSums)
			assert.NoError(t, err, "example margins must validate")
		})
	}
}

func TestLoadMarginsConfig_MissingFile(t *testing.T) {
	_, err := LoadMarginsConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadMarginsConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("row_sums: [3, 2\n"), 0o644))

	_, err := LoadMarginsConfig(path)
	assert.Error(t, err)
}

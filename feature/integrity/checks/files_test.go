package checks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "gabungan.xlsx")
	require.NoError(t, os.WriteFile(source, []byte("x"), 0o644))
	absent := filepath.Join(dir, "template.xlsx")

	report := CheckFiles([]string{source, "", absent, dir, source})

	assert.Equal(t, []string{source, dir}, report.Present)
	assert.Equal(t, []string{absent}, report.Missing)
}

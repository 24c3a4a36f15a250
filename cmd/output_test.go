package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	err := renderTable(&buf, []string{"Kode", "Nama Aset"}, [][]string{
		{"A001", "Laptop"},
		{"BTPNINFJKT/0124/4.0055 NB", "Printer"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "A001")
	assert.Contains(t, out, "BTPNINFJKT/0124/4.0055 NB")
	assert.Contains(t, out, "Printer")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]int{"files": 2}))
	assert.Equal(t, "{\n  \"files\": 2\n}\n", buf.String())
}

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSourcesCommandStructure(t *testing.T) {
	assert.NotNil(t, listSourcesCmd)
	assert.Equal(t, "list-sources", listSourcesCmd.Use)
	assert.NotEmpty(t, listSourcesCmd.Short)
	assert.NotEmpty(t, listSourcesCmd.Long)
	assert.NotNil(t, listSourcesCmd.RunE)
}

func TestListSourcesCommandExample(t *testing.T) {
	assert.Contains(t, listSourcesCmd.Long, "Example:")
	assert.Contains(t, listSourcesCmd.Long, "goprofile list-sources")
}

func TestRunListSources(t *testing.T) {
	resetProfileFlags(t)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "goprofile.yaml")
	configContent := `
sources:
  events:
    type: ndjson
    path: /var/data/events.ndjson
  orders:
    type: mysql
    dsn: "user:pass@tcp(localhost:3306)/shop"
    query: "SELECT * FROM orders"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	cfgFile = configPath

	var out bytes.Buffer
	listSourcesCmd.SetOut(&out)
	err := runListSources(listSourcesCmd, nil)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "events")
	assert.Contains(t, output, "ndjson")
	assert.Contains(t, output, "/var/data/events.ndjson")
	assert.Contains(t, output, "orders")
	assert.Contains(t, output, "SELECT * FROM orders")
	assert.Contains(t, output, "Total: 2 source(s)")
}

func TestRunListSources_Empty(t *testing.T) {
	resetProfileFlags(t)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "goprofile.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("logging:\n  level: info\n"), 0644))
	cfgFile = configPath

	var out bytes.Buffer
	listSourcesCmd.SetOut(&out)
	err := runListSources(listSourcesCmd, nil)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "No sources defined")
}

func TestRunListSources_MissingConfig(t *testing.T) {
	resetProfileFlags(t)
	cfgFile = "/nonexistent/goprofile.yaml"

	err := runListSources(listSourcesCmd, nil)
	assert.Error(t, err)
}

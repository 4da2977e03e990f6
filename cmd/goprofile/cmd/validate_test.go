package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommandStructure(t *testing.T) {
	assert.NotNil(t, validateCmd)
	assert.Equal(t, "validate", validateCmd.Use)
	assert.NotEmpty(t, validateCmd.Short)
	assert.NotEmpty(t, validateCmd.Long)
	assert.NotNil(t, validateCmd.RunE)
}

func TestValidateCommandChecks(t *testing.T) {
	// Verify the command documents the validation checks
	doc := validateCmd.Long
	assert.Contains(t, doc, "Checks performed")
	assert.Contains(t, doc, "Configuration")
	assert.Contains(t, doc, "Source types")
	assert.Contains(t, doc, "Logging")
}

func TestRunValidate_Valid(t *testing.T) {
	resetProfileFlags(t)

	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "in.ndjson")
	require.NoError(t, os.WriteFile(inputPath, []byte("{}\n"), 0644))

	configPath := filepath.Join(tmpDir, "goprofile.yaml")
	configContent := `
sources:
  events:
    type: ndjson
    path: ` + inputPath + `
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	cfgFile = configPath

	var out bytes.Buffer
	validateCmd.SetOut(&out)
	err := runValidate(validateCmd, nil)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "is valid")
	assert.Contains(t, out.String(), "0 warning(s)")
}

func TestRunValidate_MissingInputFileWarns(t *testing.T) {
	resetProfileFlags(t)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "goprofile.yaml")
	configContent := `
sources:
  events:
    type: ndjson
    path: /nonexistent/in.ndjson
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	cfgFile = configPath

	var out bytes.Buffer
	validateCmd.SetOut(&out)
	err := runValidate(validateCmd, nil)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "warning")
	assert.Contains(t, out.String(), "1 warning(s)")
}

func TestRunValidate_InvalidConfig(t *testing.T) {
	resetProfileFlags(t)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "goprofile.yaml")
	configContent := `
sources:
  bad:
    type: csv
    path: x.csv
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	cfgFile = configPath

	err := runValidate(validateCmd, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sources.bad.type")
}

func TestRunValidate_MissingConfig(t *testing.T) {
	resetProfileFlags(t)
	cfgFile = "/nonexistent/goprofile.yaml"

	err := runValidate(validateCmd, nil)
	assert.Error(t, err)
}

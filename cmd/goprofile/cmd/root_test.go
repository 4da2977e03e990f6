package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommandStructure(t *testing.T) {
	assert.NotNil(t, rootCmd)
	assert.Equal(t, "goprofile", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.Equal(t, Version, rootCmd.Version)
}

func TestRootPersistentFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	configFlag := flags.Lookup("config")
	assert.NotNil(t, configFlag)
	assert.Equal(t, "goprofile.yaml", configFlag.DefValue)
	assert.Equal(t, "c", configFlag.Shorthand)

	assert.NotNil(t, flags.Lookup("log-level"))
	assert.NotNil(t, flags.Lookup("log-format"))
	assert.NotNil(t, flags.Lookup("exclude"))
	assert.NotNil(t, flags.Lookup("data-only"))
	assert.NotNil(t, flags.Lookup("no-color"))

	propertyFlag := flags.Lookup("property")
	assert.NotNil(t, propertyFlag)
	assert.Equal(t, "p", propertyFlag.Shorthand)
}

func TestRootSubcommands(t *testing.T) {
	want := map[string]bool{
		"profile":      false,
		"list-sources": false,
		"validate":     false,
		"version":      false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}

	for name, found := range want {
		assert.True(t, found, "%s command should be added to root command", name)
	}
}

func TestGetConfigFile(t *testing.T) {
	assert.Equal(t, cfgFile, GetConfigFile())
}

func TestGetCLIOverrides(t *testing.T) {
	overrides := GetCLIOverrides()

	assert.Equal(t, logLevel, overrides.LogLevel)
	assert.Equal(t, logFormat, overrides.LogFormat)
	assert.Equal(t, properties, overrides.Properties)
	assert.Equal(t, excludes, overrides.Excludes)
	assert.Equal(t, dataOnly, overrides.DataOnly)
}

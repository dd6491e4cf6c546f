package alchemy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"go.minekube.com/alchemy/pkg/version"
)

func TestVersionCommand(t *testing.T) {
	app := App()

	// Verify version is set correctly
	assert.Equal(t, version.String(), app.Version, "App version should match version package")

	help, err := app.ToMarkdown()
	require.NoError(t, err, "Should be able to generate help text")
	assert.Contains(t, help, "version", "Help should mention version command")

	flags := make(map[string]bool)
	for _, flag := range app.Flags {
		for _, name := range flag.Names() {
			if flags[name] {
				t.Errorf("Flag conflict detected: %s", name)
			}
			flags[name] = true
		}
	}

	for _, name := range []string{"verbosity", "v", "config", "c", "debug", "d", "output", "o"} {
		assert.True(t, flags[name], "flag %s should exist", name)
	}

	// -V for version, -v for verbosity following Unix conventions
	assert.Contains(t, help, "-V", "Help should show -V for version")
	assert.Contains(t, help, "--version", "Help should show --version flag")
}

func TestVersionFlagSetOnce(t *testing.T) {
	flag := cli.VersionFlag
	App()
	App()
	assert.Same(t, flag, cli.VersionFlag, "building the app must keep the version flag")
	assert.Equal(t, []string{"version", "V"}, flag.Names())

	out, err := run(t, "", "-V")
	require.NoError(t, err)
	assert.Contains(t, out, version.String())
}

func TestCommandsExist(t *testing.T) {
	app := App()
	for _, name := range []string{"config", "effects", "preset", "inspect", "edit"} {
		assert.NotNil(t, app.Command(name), name)
	}
}

func TestUserAgentIncludesVersion(t *testing.T) {
	userAgent := version.UserAgent()
	assert.Contains(t, userAgent, "Minekube-Alchemy")
	assert.Contains(t, userAgent, version.String())
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger(false, 0)
	require.NoError(t, err)
	assert.True(t, log.Enabled())
	assert.False(t, log.V(1).Enabled())

	log, err = newLogger(true, 2)
	require.NoError(t, err)
	assert.True(t, log.V(2).Enabled())
	assert.False(t, log.V(3).Enabled())
}

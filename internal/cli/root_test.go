package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every RUNEWORD_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"RUNEWORD_CATALOG",
		"RUNEWORD_FORMAT",
		"RUNEWORD_MAX_WORDS",
		"RUNEWORD_SYMMETRIC",
		"RUNEWORD_VERBOSE",
	} {
		t.Setenv(key, "") // restores the previous value on cleanup
		require.NoError(t, os.Unsetenv(key))
	}
}

// execute runs the CLI in-process and returns exit code, stdout and stderr.
func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Execute(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRootCommand_Flags(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "runeword", cmd.Use)

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)

	maxWords := cmd.PersistentFlags().Lookup("max-words")
	require.NotNil(t, maxWords)
	assert.Equal(t, "10", maxWords.DefValue)

	assert.NotNil(t, cmd.PersistentFlags().Lookup("catalog"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("symmetric"))
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := NewRootCommand()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"generate", "check", "catalog", "test"})
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	clearEnv(t)

	code, out, errOut := execute(t, "check", "Ber", "--format", "xml")
	assert.Equal(t, ExitCommandError, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `invalid format "xml"`)
}

func TestRootCommand_UnknownFlagIsCommandError(t *testing.T) {
	clearEnv(t)

	code, _, errOut := execute(t, "check", "Ber", "--nope")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, errOut, "unknown flag")
}

func TestRootCommand_EnvDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("RUNEWORD_FORMAT", "json")
	t.Setenv("RUNEWORD_MAX_WORDS", "1")

	code, out, _ := execute(t, "generate", "2")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, `"status":"ok"`)
	assert.Contains(t, out, `"Eld-Lum"`)
	assert.NotContains(t, out, `"Eth-Sur"`)
}

func TestRootCommand_FlagOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("RUNEWORD_FORMAT", "json")

	code, out, _ := execute(t, "check", "Ber-Ohm-Lo", "--format", "text")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "Ber-Ohm-Lo\t6\n", out)
}

func TestRootCommand_BadEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("RUNEWORD_MAX_WORDS", "many")

	code, _, errOut := execute(t, "check", "Ber")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, errOut, "parse env")
}

func TestRootCommand_VerboseLogsToStderr(t *testing.T) {
	clearEnv(t)

	code, out, errOut := execute(t, "generate", "1", "-v", "--format", "json", "--max-words", "1")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, errOut, "level=DEBUG")
	assert.NotContains(t, out, "level=DEBUG")
}

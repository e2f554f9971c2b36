package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/runeword/internal/testutil"
)

func TestGenerateCommand_Text(t *testing.T) {
	clearEnv(t)

	code, out, _ := execute(t, "generate", "3")
	require.Equal(t, ExitSuccess, code)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, []string{"Eld-Lum-Eth", "96"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"Sur-Cham-El", "87"}, strings.Fields(lines[1]))
}

func TestGenerateCommand_JSONWithTraceID(t *testing.T) {
	opts := &RootOptions{Format: "json", IDGen: testutil.NewFixedIDGenerator("req-gen")}
	cmd := NewGenerateCommand(opts)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"17"})
	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Length int `json:"length"`
			Words  []struct {
				Word  string `json:"word"`
				Power int    `json:"power"`
			} `json:"words"`
		} `json:"data"`
		TraceID string `json:"trace_id"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "req-gen", resp.TraceID)
	assert.Equal(t, 17, resp.Data.Length)
	require.Len(t, resp.Data.Words, 1)
	assert.Equal(t, "Eld-Lum-Eth-Cham-El-Ko-Lem-Ral-Vex-Ith-Io-Zod-Shael-Fal-Thul-Hel-Nef", resp.Data.Words[0].Word)
	assert.Equal(t, 379, resp.Data.Words[0].Power)
}

func TestGenerateCommand_Symmetric(t *testing.T) {
	clearEnv(t)

	code, out, _ := execute(t, "generate", "17", "--symmetric")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, []string{"Eld-Lum-Eth-Cham-El-Ko-Lem-Ral-Vex-Ith-Io-Zod-Fal-Thul-Hel-Nef-Ber", "365"}, strings.Fields(out))
}

func TestGenerateCommand_MaxWords(t *testing.T) {
	clearEnv(t)

	code, out, _ := execute(t, "generate", "2", "--max-words", "2")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, []string{"Eld-Lum", "65", "Eth-Sur", "61"}, strings.Fields(out))
}

func TestGenerateCommand_CatalogFile(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"yaml", []string{"generate", "2", "--catalog", "testdata/catalogs/chain.yaml"}, []string{"A-C", "8", "B-D", "6"}},
		{"cue", []string{"generate", "2", "--catalog", "testdata/catalogs/chain.cue"}, []string{"A-C", "8", "B-D", "6"}},
		{"forward", []string{"generate", "3", "--catalog", "testdata/catalogs/chain.yaml"}, []string{"A-C-D", "10"}},
		{"symmetric", []string{"generate", "3", "--catalog", "testdata/catalogs/chain.yaml", "--symmetric"}, []string{"A-C-E", "9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, _ := execute(t, tt.args...)
			require.Equal(t, ExitSuccess, code)
			assert.Equal(t, tt.want, strings.Fields(out))
		})
	}
}

func TestGenerateCommand_UsageErrors(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name    string
		args    []string
		code    string
		message string
	}{
		{"word", []string{"generate", "x"}, "LENGTH_NOT_NUMBER", "length has to be number"},
		{"null", []string{"generate", "null"}, "LENGTH_NOT_NUMBER", "length has to be number"},
		{"fraction", []string{"generate", "2.5"}, "LENGTH_NOT_NUMBER", "length has to be number"},
		{"zero", []string{"generate", "0"}, "LENGTH_NOT_POSITIVE", "length has to greater than 0"},
		{"negative", []string{"generate", "--", "-1"}, "LENGTH_NOT_POSITIVE", "length has to greater than 0"},
		{"too large", []string{"generate", "34"}, "LENGTH_TOO_LARGE", "length has to be smaller than 33"},
		{"no words", []string{"generate", "19"}, "NO_WORDS", "Could not create any Runic Words with a length of 19"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := execute(t, tt.args...)
			assert.Equal(t, ExitFailure, code)
			assert.Equal(t, "Error ["+tt.code+"]: "+tt.message+"\n", out)
			assert.Empty(t, errOut, "reported errors are not printed twice")
		})
	}
}

func TestGenerateCommand_IntegralFloat(t *testing.T) {
	clearEnv(t)

	code, out, _ := execute(t, "generate", "3.0", "--max-words", "1")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, []string{"Eld-Lum-Eth", "96"}, strings.Fields(out))
}

func TestGenerateCommand_JSONError(t *testing.T) {
	opts := &RootOptions{Format: "json", IDGen: testutil.NewFixedIDGenerator("req-err")}
	cmd := NewGenerateCommand(opts)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"34"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "req-err", resp.TraceID)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "LENGTH_TOO_LARGE", resp.Error.Code)
	assert.Equal(t, "length has to be smaller than 33", resp.Error.Message)
}

func TestGenerateCommand_MissingCatalog(t *testing.T) {
	clearEnv(t)

	code, out, _ := execute(t, "generate", "2", "--catalog", "testdata/catalogs/missing.yaml")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, out, "Error [E005]")
}

func TestParseScalar(t *testing.T) {
	assert.Equal(t, 3, parseScalar("3"))
	assert.Equal(t, -1, parseScalar("-1"))
	assert.Equal(t, 2.5, parseScalar("2.5"))
	assert.Equal(t, "x", parseScalar("x"))
	assert.Nil(t, parseScalar("null"))
	assert.Equal(t, "[", parseScalar("["))
}

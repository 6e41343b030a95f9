package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bpsgateway/internal/exitcode"
)

// clearEnv isolates a test from the caller's configuration.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HTTP_PORT", "LOG_FORMAT", "LOG_LEVEL", "MAX_COMPOUND_ITERATIONS", "CONFIG_FILE"} {
		t.Setenv(k, "")
	}
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := execute(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestExecute_Outputs(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"of", "1000", "500"}, "50\n"},
		{[]string{"of", "1000", "5%"}, "50\n"},
		{[]string{"of", "99", "1%"}, "0\n"},
		{[]string{"steps", "99", "100"}, "product:  9900\nquotient: 0\nresult:   0\n"},
		{[]string{"precision", "--factor", "100", "99", "100"}, "0\n"},
		{[]string{"what", "50", "100"}, "5000 bps (50.00%)\n"},
		{[]string{"compound", "100", "500", "2"}, "110\n"},
		{[]string{"compound", "100", "500", "0"}, "100\n"},
		{[]string{"diff", "150", "100"}, "5000 bps (50.00%) increase\n"},
		{[]string{"diff", "50", "100"}, "5000 bps (50.00%) decrease\n"},
		{[]string{"diff", "100", "100"}, "0 bps (0.00%) increase\n"},
	}
	for _, tt := range tests {
		code, out, errOut := run(t, tt.args...)
		require.Equal(t, exitcode.Success, code, "args=%v stderr=%s", tt.args, errOut)
		assert.Equal(t, tt.want, out, "args=%v", tt.args)
	}
}

func TestExecute_ExitCodes(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		args []string
		want int
	}{
		{[]string{"what", "1", "0"}, exitcode.DivisionByZero},
		{[]string{"diff", "1", "0"}, exitcode.DivisionByZero},
		{[]string{"precision", "--factor", "0", "1", "1"}, exitcode.DivisionByZero},
		{[]string{"of", "18446744073709551615", "2"}, exitcode.ArithmeticOverflow},
		{[]string{"compound", "18446744073709551615", "1", "1"}, exitcode.ArithmeticOverflow},
		{[]string{"of", "-1", "2"}, exitcode.UsageError},
		{[]string{"of", "1"}, exitcode.UsageError},
		{[]string{"bogus"}, exitcode.UsageError},
		{[]string{"--log-format", "xml", "of", "1", "1"}, exitcode.UsageError},
	}
	for _, tt := range tests {
		code, out, errOut := run(t, tt.args...)
		assert.Equal(t, tt.want, code, "args=%v", tt.args)
		assert.Empty(t, out, "args=%v", tt.args)
		assert.Contains(t, errOut, "bpscalc failed", "args=%v", tt.args)
	}
}

func TestExecute_ConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "bpscalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_format: json\nmax_compound_iterations: 5\n"), 0644))

	code, _, errOut := run(t, "--config", path, "compound", "100", "500", "6")
	assert.Equal(t, exitcode.UsageError, code)
	assert.Contains(t, errOut, `"level":"error"`)
	assert.Contains(t, errOut, "iterations must be at most 5")

	code, out, _ := run(t, "--config", path, "compound", "100", "500", "5")
	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "126\n", out)
}

func TestExecute_Environment(t *testing.T) {
	t.Run("default iteration cap", func(t *testing.T) {
		clearEnv(t)
		code, _, errOut := run(t, "compound", "100", "500", "10001")
		assert.Equal(t, exitcode.UsageError, code)
		assert.Contains(t, errOut, "iterations must be at most 10000")
	})

	t.Run("env cap and log format", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MAX_COMPOUND_ITERATIONS", "3")
		t.Setenv("LOG_FORMAT", "json")

		code, _, errOut := run(t, "compound", "100", "500", "4")
		assert.Equal(t, exitcode.UsageError, code)
		assert.Contains(t, errOut, `"level":"error"`)
		assert.Contains(t, errOut, "iterations must be at most 3")

		code, out, _ := run(t, "compound", "100", "500", "3")
		assert.Equal(t, exitcode.Success, code)
		assert.Equal(t, "115\n", out)
	})

	t.Run("flag beats env", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LOG_FORMAT", "json")

		code, _, errOut := run(t, "--log-format", "text", "what", "1", "0")
		assert.Equal(t, exitcode.DivisionByZero, code)
		assert.Contains(t, errOut, "bpscalc failed")
		assert.NotContains(t, errOut, `"level":"error"`)
	})

	t.Run("invalid env", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MAX_COMPOUND_ITERATIONS", "many")

		code, out, errOut := run(t, "of", "1000", "500")
		assert.Equal(t, exitcode.UsageError, code)
		assert.Empty(t, out)
		assert.Contains(t, errOut, "MAX_COMPOUND_ITERATIONS")
	})
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCmd(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Fields(t *testing.T) {
	path := writeFile(t, "in.csv", "a,\"b\"\"c\"\nd")

	code, out, _ := runCmd("fields", path)
	require.Equal(t, 0, code)

	want := []string{
		"0\ttext\t0\t0\t0\t1\t\"a\"",
		"1\tquoted\t3\t6\t3\t1\t\"b\\\"\\\"c\"",
		"2\ttext\t9\t9\t0\t2\t\"d\"",
	}
	require.Equal(t, want, strings.Split(strings.TrimRight(out, "\n"), "\n"))
}

func TestRun_Count(t *testing.T) {
	path := writeFile(t, "in.tsv", "a\tb\tc\n1\t2\t3\n")

	code, out, _ := runCmd("count", "-delim", `\t`, path)
	require.Equal(t, 0, code)
	require.Equal(t, "6\n", out)
}

func TestRun_Records(t *testing.T) {
	path := writeFile(t, "in.csv", "name;note\nAlice; \"x\"\"y\"\n")

	code, out, _ := runCmd("records", "-delim", ";", "-skip-space", path)
	require.Equal(t, 0, code)
	require.Equal(t, "name\tnote\nAlice\tx\"y\n", out)
}

func TestRun_CompressedInput(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte("a,b\nc,d\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := writeFile(t, "in.csv.gz", buf.String())
	code, out, _ := runCmd("count", path)
	require.Equal(t, 0, code)
	require.Equal(t, "4\n", out)
}

func TestRun_Errors(t *testing.T) {
	strictInput := writeFile(t, "strict.csv", "ok\nab\"")
	plain := writeFile(t, "plain.csv", "a,b,c")
	empty := writeFile(t, "empty.csv", "a,,b")

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{name: "no command", args: nil, wantCode: 2, wantErr: "Usage:"},
		{name: "unknown command", args: []string{"frobnicate"}, wantCode: 2, wantErr: `unknown command "frobnicate"`},
		{name: "bad flag", args: []string{"count", "-nope", plain}, wantCode: 2},
		{name: "too many files", args: []string{"count", plain, plain}, wantCode: 2, wantErr: "usage:"},
		{name: "bad delimiter", args: []string{"count", "-delim", "ab", plain}, wantCode: 2},
		{name: "ambiguous dialect", args: []string{"count", "-delim", `\n`, plain}, wantCode: 2, wantErr: "invalid tokenizer configuration"},
		{name: "bad empty policy", args: []string{"count", "-empty", "drop", plain}, wantCode: 2},
		{name: "missing file", args: []string{"count", filepath.Join(t.TempDir(), "missing.csv")}, wantCode: 1},
		{name: "strict", args: []string{"fields", "-strict", strictInput}, wantCode: 1, wantErr: "line 2, column 3: invalid character (code -2)"},
		{name: "capacity", args: []string{"fields", "-cap", "2", plain}, wantCode: 1, wantErr: "not enough memory (code -1)"},
		{name: "reject empty", args: []string{"records", "-empty", "reject", empty}, wantCode: 1, wantErr: "invalid character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCmd(tt.args...)
			require.Equal(t, tt.wantCode, code)
			if tt.wantErr != "" {
				require.Contains(t, stderr, tt.wantErr)
			}
		})
	}
}

func TestRun_Version(t *testing.T) {
	code, out, _ := runCmd("version")
	require.Equal(t, 0, code)
	require.Equal(t, version+"\n", out)
}

func TestParseByte(t *testing.T) {
	tests := []struct {
		in      string
		want    byte
		wantErr bool
	}{
		{in: ",", want: ','},
		{in: `\t`, want: '\t'},
		{in: `\r`, want: '\r'},
		{in: `\x1f`, want: 0x1f},
		{in: "\t", want: '\t'},
		{in: "", wantErr: true},
		{in: "ab", wantErr: true},
		{in: `\t\t`, wantErr: true},
		{in: "é", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseByte(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestOpenQuote(t *testing.T) {
	require.False(t, openQuote(`a,b`))
	require.True(t, openQuote(`a,"b`))
	require.False(t, openQuote(`a,"b""c"`))
	require.True(t, openQuote(`"x""`))
}

func TestDescribe(t *testing.T) {
	d := &dialectFlags{delim: ',', newline: '\n', empty: "emit", strict: true}
	tok, err := d.tokenizer()
	require.NoError(t, err)

	var out bytes.Buffer
	describe(&out, tok, []byte("x,y"))
	require.True(t, strings.HasSuffix(out.String(), "2 fields\n"))

	out.Reset()
	describe(&out, tok, []byte(`x"y`))
	require.Equal(t, "error: parse error on line 1, column 2: invalid character (code -2)\n", out.String())
}

func TestHistoryPath(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "plan9" {
		t.Skip("home directory is not taken from $HOME")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)
	path, ok := historyPath()
	require.True(t, ok)
	require.Equal(t, filepath.Join(home, historyFile), path)

	t.Setenv("HOME", "")
	path, ok = historyPath()
	require.False(t, ok)
	require.Empty(t, path)
}

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/josephcopenhaver/go-exp-bytestr/internal/config"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(t.Context())
	return stdout.String(), err
}

func TestSplitCommand(t *testing.T) {
	out, err := execute(t, "a,,b\n,c\n", "split")
	require.NoError(t, err)
	require.Equal(t, "a\t\tb\n\tc\n", out)

	out, err = execute(t, "a,,b\n,c\n", "split", "--skip-empty", "--ofs", "|")
	require.NoError(t, err)
	require.Equal(t, "a|b\nc\n", out)

	out, err = execute(t, "a\tb\n", "split", "-d", `\t`, "--ofs", ",")
	require.NoError(t, err)
	require.Equal(t, "a,b\n", out)

	_, err = execute(t, "", "split", "-d", "::")
	require.ErrorContains(t, err, "--delim must be exactly one byte")
}

func TestTokenizeAndFieldsCommands(t *testing.T) {
	out, err := execute(t, "a;;b. c\n", "tokenize", "-s", ";. ", "--ofs", ",")
	require.NoError(t, err)
	require.Equal(t, "a,b,c\n", out)

	out, err = execute(t, "  ls \t -la \n", "fields", "--ofs", " ")
	require.NoError(t, err)
	require.Equal(t, "ls -la\n", out)
}

func TestPartitionCommands(t *testing.T) {
	out, err := execute(t, "a=b=c\nabc\n", "partition", "-d", "=", "--ofs", "|")
	require.NoError(t, err)
	require.Equal(t, "a|=|b=c\nabc||\n", out)

	out, err = execute(t, "a=b=c\nabc\n", "rpartition", "-d", "=", "--ofs", "|")
	require.NoError(t, err)
	require.Equal(t, "a=b|=|c\n||abc\n", out)

	out, err = execute(t, "x::y::z\n", "rpartition", "-d", "::", "--ofs", " ")
	require.NoError(t, err)
	require.Equal(t, "x::y :: z\n", out)
}

func TestTrimCommands(t *testing.T) {
	out, err := execute(t, "  a b \t\n", "trim")
	require.NoError(t, err)
	require.Equal(t, "a b\n", out)

	out, err = execute(t, "--a--\n", "ltrim", "-c", "-")
	require.NoError(t, err)
	require.Equal(t, "a--\n", out)

	out, err = execute(t, "--a--\n", "rtrim", "-c", "-")
	require.NoError(t, err)
	require.Equal(t, "--a\n", out)
}

func TestJoinCommand(t *testing.T) {
	out, err := execute(t, ",a,,b\n", "join", "-d", " + ")
	require.NoError(t, err)
	require.Equal(t, " + a +  + b\n", out)

	out, err = execute(t, ",a,,b\n", "join", "-d", " + ", "--skip-empty")
	require.NoError(t, err)
	require.Equal(t, "a + b\n", out)

	out, err = execute(t, "a:b\n", "join", "-i", ":", "-d", `\t`)
	require.NoError(t, err)
	require.Equal(t, "a\tb\n", out)
}

func TestReplaceCommand(t *testing.T) {
	out, err := execute(t, "aaa\nbab\n", "replace", "a", "aa")
	require.NoError(t, err)
	require.Equal(t, "aaaaaa\nbaab\n", out)

	out, err = execute(t, "aaa\n", "replace", "--first", "a", "b")
	require.NoError(t, err)
	require.Equal(t, "baa\n", out)

	_, err = execute(t, "aaa\n", "replace", "", "b")
	require.ErrorIs(t, err, errEmptySearch)
}

func TestStripCommands(t *testing.T) {
	out, err := execute(t, "hello\nhelp\n", "strip-prefix", "hel")
	require.NoError(t, err)
	require.Equal(t, "lo\np\n", out)

	out, err = execute(t, "a.txt\nb.txt\n", "strip-suffix", ".txt")
	require.NoError(t, err)
	require.Equal(t, "a\nb\n", out)

	_, err = execute(t, "hello\nworld\n", "strip-prefix", "he")
	require.ErrorIs(t, err, errMissingPrefix)

	_, err = execute(t, "a.md\n", "strip-suffix", ".txt")
	require.ErrorIs(t, err, errMissingSuffix)
}

func TestCaseCommands(t *testing.T) {
	out, err := execute(t, "Hello World\n", "lower")
	require.NoError(t, err)
	require.Equal(t, "hello world\n", out)

	out, err = execute(t, "Hello World\n", "upper", "-w", "2")
	require.NoError(t, err)
	require.Equal(t, "HELLO WORLD\n", out)
}

func TestRecordDelimiter(t *testing.T) {
	out, err := execute(t, "a b\x00C d\x00", "upper", "--record-delim", `\x00`)
	require.NoError(t, err)
	require.Equal(t, "A B\x00C D\x00", out)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bytestr.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
delimiter = ";"
output_separator = "/"
workers = 3
`), 0o600))

	out, err := execute(t, "a;b\n", "--config", path, "split")
	require.NoError(t, err)
	require.Equal(t, "a/b\n", out)

	// flags win over the file
	out, err = execute(t, "a;b\n", "--config", path, "split", "--ofs", "_")
	require.NoError(t, err)
	require.Equal(t, "a_b\n", out)
}

func TestInvalidSettings(t *testing.T) {
	_, err := execute(t, "", "split", "--workers", "0")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = execute(t, "", "split", "--ofs", `\q`)
	require.ErrorContains(t, err, "invalid escape sequence")
}

func TestUnescape(t *testing.T) {
	cases := map[string]string{
		"plain":      "plain",
		`\t`:         "\t",
		`a\nb`:       "a\nb",
		`\x00`:       "\x00",
		`say "hi"\n`: "say \"hi\"\n",
	}

	for in, want := range cases {
		got, err := unescape(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
}

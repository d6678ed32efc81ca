package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// unescape interprets Go escape sequences such as \t or \x00 in s. Text
// without a backslash is returned as is.
func unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}

	v, err := strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`)
	if err != nil {
		return "", fmt.Errorf("invalid escape sequence in %q", s)
	}

	return v, nil
}

// stringFlag returns the unescaped value of flag name when it was set on
// the command line and def otherwise.
func stringFlag(cmd *cobra.Command, name, def string) (string, error) {
	if !cmd.Flags().Changed(name) {
		return def, nil
	}

	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", err
	}

	v, err := unescape(raw)
	if err != nil {
		return "", fmt.Errorf("--%s: %w", name, err)
	}

	return v, nil
}

func byteFlag(cmd *cobra.Command, name, def string) (byte, error) {
	v, err := stringFlag(cmd, name, def)
	if err != nil {
		return 0, err
	}

	if len(v) != 1 {
		return 0, fmt.Errorf("--%s must be exactly one byte, got %q", name, v)
	}

	return v[0], nil
}

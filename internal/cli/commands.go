package cli

import (
	"errors"
	"fmt"

	"github.com/josephcopenhaver/go-exp-bytestr/internal/pipeline"
	"github.com/josephcopenhaver/go-exp-bytestr/xascii"
	"github.com/josephcopenhaver/go-exp-bytestr/xbytes"
	"github.com/spf13/cobra"
)

var (
	errMissingPrefix = errors.New("record does not begin with prefix")
	errMissingSuffix = errors.New("record does not end with suffix")
	errEmptySearch   = errors.New("search text must not be empty")
)

func (a *app) splitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split each record at a delimiter byte",
		Args:  cobra.NoArgs,
	}

	cmd.Flags().StringP("delim", "d", "", "delimiter byte (default from config, \",\")")
	cmd.Flags().Bool("skip-empty", false, "drop empty parts")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		delim, err := byteFlag(cmd, "delim", a.cfg.Delimiter)
		if err != nil {
			return err
		}

		skipEmpty, err := cmd.Flags().GetBool("skip-empty")
		if err != nil {
			return err
		}

		ofs := []byte(a.cfg.OutputSeparator)
		return a.run(cmd, func(s *pipeline.Scratch, rec []byte) ([]byte, error) {
			if skipEmpty {
				s.Parts = xbytes.AppendSplitWithoutEmptyParts(s.Parts, rec, delim)
			} else {
				s.Parts = xbytes.AppendSplit(s.Parts, rec, delim)
			}
			return xbytes.Join(s.Parts, ofs), nil
		})
	}

	return cmd
}

func (a *app) tokenizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize",
		Short: "Split each record at any byte of a delimiter set, dropping empty parts",
		Args:  cobra.NoArgs,
	}

	cmd.Flags().StringP("set", "s", "", "delimiter byte set (default whitespace)")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		set, err := stringFlag(cmd, "set", xascii.Whitespace)
		if err != nil {
			return err
		}

		delims := []byte(set)
		ofs := []byte(a.cfg.OutputSeparator)
		return a.run(cmd, func(s *pipeline.Scratch, rec []byte) ([]byte, error) {
			s.Parts = xbytes.AppendSplitAnyWithoutEmptyParts(s.Parts, rec, delims)
			return xbytes.Join(s.Parts, ofs), nil
		})
	}

	return cmd
}

func (a *app) fieldsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "Split each record at runs of ASCII whitespace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ofs := []byte(a.cfg.OutputSeparator)
			return a.run(cmd, func(s *pipeline.Scratch, rec []byte) ([]byte, error) {
				s.Parts = xbytes.AppendFields(s.Parts, rec)
				return xbytes.Join(s.Parts, ofs), nil
			})
		},
	}
}

func (a *app) partitionCommand(use, short string, reverse bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + `.

The output is head, separator and tail joined by --ofs. A record without
the separator yields the whole record as the head for partition and as
the tail for rpartition.`,
		Args: cobra.NoArgs,
	}

	cmd.Flags().StringP("sep", "d", "", "separator, one or more bytes (default from config, \",\")")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		raw, err := stringFlag(cmd, "sep", a.cfg.Delimiter)
		if err != nil {
			return err
		}

		sep := xbytes.Literal([]byte(raw))
		if len(raw) == 1 {
			sep = xbytes.Byte(raw[0])
		}

		partition := xbytes.Partition
		if reverse {
			partition = xbytes.RPartition
		}

		ofs := []byte(a.cfg.OutputSeparator)
		return a.run(cmd, func(_ *pipeline.Scratch, rec []byte) ([]byte, error) {
			t := partition(rec, sep)
			return xbytes.Join(t[:], ofs), nil
		})
	}

	return cmd
}

func (a *app) trimCommand(use, short string, left, right bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
	}

	cmd.Flags().StringP("cutset", "c", "", "bytes to trim (default from config, whitespace)")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cutset, err := stringFlag(cmd, "cutset", a.cfg.Cutset)
		if err != nil {
			return err
		}

		set := []byte(cutset)
		trim := xbytes.TrimInPlace
		switch {
		case left && !right:
			trim = xbytes.LTrimInPlace
		case right && !left:
			trim = xbytes.RTrimInPlace
		}

		return a.run(cmd, func(_ *pipeline.Scratch, rec []byte) ([]byte, error) {
			trim(&rec, set)
			return rec, nil
		})
	}

	return cmd
}

func (a *app) joinCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join",
		Short: "Re-join the fields of each record with a new delimiter",
		Long: `Re-join the fields of each record with a new delimiter.

Each record is split at --in-delim and the parts are joined with --delim.`,
		Args: cobra.NoArgs,
	}

	cmd.Flags().StringP("delim", "d", "", "output delimiter (default from config, \",\")")
	cmd.Flags().StringP("in-delim", "i", "", "input field delimiter byte (default from config, \",\")")
	cmd.Flags().Bool("skip-empty", false, "drop empty fields before joining")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		delim, err := stringFlag(cmd, "delim", a.cfg.JoinDelimiter)
		if err != nil {
			return err
		}

		in, err := byteFlag(cmd, "in-delim", a.cfg.Delimiter)
		if err != nil {
			return err
		}

		skipEmpty, err := cmd.Flags().GetBool("skip-empty")
		if err != nil {
			return err
		}

		join := xbytes.Join
		if skipEmpty {
			join = xbytes.JoinWithoutEmptyParts
		}

		out := []byte(delim)
		return a.run(cmd, func(s *pipeline.Scratch, rec []byte) ([]byte, error) {
			s.Parts = xbytes.AppendSplit(s.Parts, rec, in)
			return join(s.Parts, out), nil
		})
	}

	return cmd
}

func (a *app) replaceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replace SEARCH REPLACEMENT",
		Short: "Replace occurrences of SEARCH in each record",
		Long: `Replace occurrences of SEARCH in each record.

Every non-overlapping occurrence is replaced, scanning left to right and
resuming after each inserted replacement. Use --first to replace only
the first occurrence.`,
		Args: cobra.ExactArgs(2),
	}

	cmd.Flags().Bool("first", false, "replace only the first occurrence")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		search, err := unescape(args[0])
		if err != nil {
			return err
		}

		repl, err := unescape(args[1])
		if err != nil {
			return err
		}

		first, err := cmd.Flags().GetBool("first")
		if err != nil {
			return err
		}

		if search == "" && !first {
			return errEmptySearch
		}

		replace := xbytes.ReplaceAll
		if first {
			replace = xbytes.ReplaceFirst
		}

		s, r := []byte(search), []byte(repl)
		return a.run(cmd, func(_ *pipeline.Scratch, rec []byte) ([]byte, error) {
			return replace(rec, s, r), nil
		})
	}

	return cmd
}

func (a *app) stripCommand(use, short string, suffix bool) *cobra.Command {
	arg := "PREFIX"
	if suffix {
		arg = "SUFFIX"
	}

	return &cobra.Command{
		Use:   use + " " + arg,
		Short: short,
		Long: short + `.

Processing stops with an error at the first record that lacks it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := unescape(args[0])
			if err != nil {
				return err
			}

			affix := []byte(v)
			return a.run(cmd, func(_ *pipeline.Scratch, rec []byte) ([]byte, error) {
				if suffix {
					if !xbytes.EndsWith(rec, affix) {
						return nil, fmt.Errorf("%w %q", errMissingSuffix, v)
					}
					return xbytes.StripSuffix(rec, affix), nil
				}

				if !xbytes.BeginsWith(rec, affix) {
					return nil, fmt.Errorf("%w %q", errMissingPrefix, v)
				}
				return xbytes.StripPrefix(rec, affix), nil
			})
		},
	}
}

func (a *app) caseCommand(use, short string, upper bool) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mapCase := xbytes.LowercaseInPlace
			if upper {
				mapCase = xbytes.UppercaseInPlace
			}

			return a.run(cmd, func(_ *pipeline.Scratch, rec []byte) ([]byte, error) {
				mapCase(rec)
				return rec, nil
			})
		},
	}
}

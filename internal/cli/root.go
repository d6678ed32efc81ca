// Package cli wires the xbytes operations to a line-oriented command.
package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/josephcopenhaver/go-exp-bytestr/internal/config"
	"github.com/josephcopenhaver/go-exp-bytestr/internal/pipeline"
	"github.com/josephcopenhaver/go-exp-bytestr/internal/scratch"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

type app struct {
	cfgFile     string
	verbosity   int
	workers     int
	recordDelim string
	ofs         string
	cfg         config.Config
}

func NewRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "bytestr",
		Short: "Split, partition, trim, join, replace and case-map byte records",
		Long: `bytestr applies one byte-string operation to every record read from
stdin and writes one result per record to stdout, in input order.

Records are newline terminated by default; use --record-delim '\0' for
NUL separated input. Delimiter flags accept Go escape sequences such as
\t, \n and \x00.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	pf.CountVarP(&a.verbosity, "verbose", "v", "log verbosity, repeat for more (-v info, -vv debug)")
	pf.IntVarP(&a.workers, "workers", "w", 0, "number of records processed concurrently")
	pf.StringVar(&a.recordDelim, "record-delim", "", "input and output record delimiter (default \"\\n\")")
	pf.StringVar(&a.ofs, "ofs", "", "separator between the pieces of one result (default \"\\t\")")

	cmd.AddCommand(
		a.splitCommand(),
		a.tokenizeCommand(),
		a.fieldsCommand(),
		a.partitionCommand("partition", "Split each record around the first separator", false),
		a.partitionCommand("rpartition", "Split each record around the last separator", true),
		a.trimCommand("trim", "Trim cutset bytes from both ends of each record", true, true),
		a.trimCommand("ltrim", "Trim cutset bytes from the start of each record", true, false),
		a.trimCommand("rtrim", "Trim cutset bytes from the end of each record", false, true),
		a.joinCommand(),
		a.replaceCommand(),
		a.stripCommand("strip-prefix", "Remove a required prefix from each record", false),
		a.stripCommand("strip-suffix", "Remove a required suffix from each record", true),
		a.caseCommand("lower", "ASCII lowercase each record", false),
		a.caseCommand("upper", "ASCII uppercase each record", true),
	)

	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	switch {
	case a.verbosity == 1:
		level = slog.LevelInfo
	case a.verbosity >= 2:
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	})))

	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	pf := cmd.Flags()
	if pf.Changed("workers") {
		cfg.Workers = a.workers
	}

	if pf.Changed("record-delim") {
		if cfg.RecordDelimiter, err = unescape(a.recordDelim); err != nil {
			return fmt.Errorf("--record-delim: %w", err)
		}
	}

	if pf.Changed("ofs") {
		if cfg.OutputSeparator, err = unescape(a.ofs); err != nil {
			return fmt.Errorf("--ofs: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg

	slog.LogAttrs(cmd.Context(), slog.LevelInfo,
		"configuration loaded",
		slog.String("command", cmd.Name()),
		slog.String("config_file", a.cfgFile),
		slog.Int("workers", cfg.Workers),
		slog.Int("batch_size", cfg.BatchSize),
	)

	return nil
}

// run streams stdin through fn to stdout using the configured pipeline.
func (a *app) run(cmd *cobra.Command, fn pipeline.Transform) error {
	pool, err := scratch.NewPool(scratch.PoolOpts().MaxIdle(a.cfg.MaxIdleBuffers))
	if err != nil {
		return err
	}
	defer pool.Close()

	op := pipeline.RunnerOpts()
	rn, err := pipeline.NewRunner(
		op.Workers(a.cfg.Workers),
		op.BatchSize(a.cfg.BatchSize),
		op.RecordDelimiter(a.cfg.RecordDelimiter[0]),
		op.Pool(pool),
	)
	if err != nil {
		return err
	}

	return rn.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), fn)
}

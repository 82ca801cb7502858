package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dayplanner/internal/bootstrap"
	"dayplanner/internal/platform/config"
	"dayplanner/internal/platform/logfields"
	"dayplanner/internal/platform/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

type rootOptions struct {
	dataDir   string
	backend   string
	startHour int
	endHour   int
	verbose   bool
	ephemeral bool

	cmd *cobra.Command
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "dayplanner",
		Short:         "Hour-by-hour planner for today",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	opts.cmd = root
	flags := root.PersistentFlags()
	flags.StringVar(&opts.dataDir, "data", config.DefaultDataDir(), "data directory")
	flags.StringVar(&opts.backend, "backend", "", "storage backend: file|sqlite|memory")
	flags.IntVar(&opts.startHour, "start", config.DefaultStartHour, "first hour shown (0-23)")
	flags.IntVar(&opts.endHour, "end", config.DefaultEndHour, "last hour shown (0-23)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	flags.BoolVar(&opts.ephemeral, "ephemeral", false, "keep notes in memory only")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newShowCmd(opts))
	root.AddCommand(newGetCmd(opts))
	root.AddCommand(newSetCmd(opts))
	root.AddCommand(newClearCmd(opts))
	root.AddCommand(newResetCmd(opts))
	root.AddCommand(newPathCmd(opts))
	return root
}

func (o *rootOptions) config() (config.Config, error) {
	overrides := config.Overrides{Backend: o.backend}
	flags := o.cmd.PersistentFlags()
	if flags.Changed("start") {
		overrides.StartHour = &o.startHour
	}
	if flags.Changed("end") {
		overrides.EndHour = &o.endHour
	}
	if o.ephemeral {
		overrides.Backend = config.BackendMemory
	}
	if o.verbose {
		overrides.LogLevel = "debug"
	}
	return config.Load(o.dataDir, overrides)
}

func loadApp(opts *rootOptions, logOut io.Writer) (*bootstrap.App, error) {
	cfg, err := opts.config()
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, logging.New(cfg.LogLevel, cfg.LogFormat, logOut))
}

func parseHour(raw string) (int, error) {
	hour, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid hour %q", raw)
	}
	return hour, nil
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the planner terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			logger, closer, err := logging.OpenFile(cfg.LogPath, cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return fmt.Errorf("open log: %w", err)
			}
			defer func() { _ = closer.Close() }()

			app, err := bootstrap.New(cfg, logger)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			logger.Info("planner started", logfields.Backend(cfg.Backend))
			return bootstrap.RunTUI(cmd.Context(), app)
		},
	}
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print today's board",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			board, err := app.ScheduleCLI.Board(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, board.Heading)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, slot := range board.Slots {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", slot.Label, slot.Phase, slot.Text)
			}
			return tw.Flush()
		},
	}
}

func newGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <hour>",
		Short: "Print the note for one hour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hour, err := parseHour(args[0])
			if err != nil {
				return err
			}
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			entry, err := app.ScheduleCLI.EntryHour(cmd.Context(), hour)
			if err != nil {
				return err
			}
			if !entry.Found {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: (empty)\n", entry.Label)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", entry.Label, entry.Text)
			return nil
		},
	}
}

func newSetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <hour> <text...>",
		Short: "Save a note for one hour",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hour, err := parseHour(args[0])
			if err != nil {
				return err
			}
			return saveHour(cmd, opts, hour, strings.Join(args[1:], " "))
		},
	}
}

func newClearCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <hour>",
		Short: "Remove the note for one hour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hour, err := parseHour(args[0])
			if err != nil {
				return err
			}
			return saveHour(cmd, opts, hour, "")
		},
	}
}

func saveHour(cmd *cobra.Command, opts *rootOptions, hour int, text string) error {
	app, err := loadApp(opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	out, err := app.ScheduleCLI.SaveHour(cmd.Context(), hour, text)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", out.SlotKey, out.Change)
	return nil
}

func newResetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear every note for today",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			board, err := app.ScheduleCLI.Reset(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", board.Heading)
			return nil
		},
	}
}

func newPathCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where notes are stored",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch cfg.Backend {
			case config.BackendSQLite:
				_, _ = fmt.Fprintln(out, cfg.DBPath)
			case config.BackendMemory:
				_, _ = fmt.Fprintln(out, "(memory)")
			default:
				_, _ = fmt.Fprintln(out, cfg.KVDir)
			}
			return nil
		},
	}
}

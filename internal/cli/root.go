// Package cli wires the paywallui commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	paywallui "github.com/reoring/paywallui"
	"github.com/reoring/paywallui/internal/config"
	"github.com/reoring/paywallui/internal/version"
	"github.com/reoring/paywallui/logging"
)

type globalFlags struct {
	ConfigFile string
	EnvFile    string
	LogLevel   string
	LogFormat  string
	Output     string
}

// app is the state shared by every command of one invocation.
type app struct {
	flags globalFlags
	cfg   *config.Config
	log   logging.Logger
}

// NewRootCmd creates the root cobra command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "paywallui",
		Short:         "Map, render and replay paywall and onboarding configurations",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" || cmd.Name() == "help" {
				return nil
			}
			return a.setup()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.flags.ConfigFile, "config", "", "Config file (default ./paywallui.yaml)")
	pf.StringVar(&a.flags.EnvFile, "env-file", "", "Env file (default ./.env)")
	pf.StringVar(&a.flags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&a.flags.LogFormat, "log-format", "", "Log format (json, console)")
	pf.StringVarP(&a.flags.Output, "output", "o", "json", "Output format (json, yaml)")

	cmd.AddCommand(newMapCmd(a))
	cmd.AddCommand(newRenderCmd(a))
	cmd.AddCommand(newOnboardingCmd(a))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func (a *app) setup() error {
	cfg, err := config.Load(config.LoadOptions{ConfigFile: a.flags.ConfigFile, EnvFile: a.flags.EnvFile})
	if err != nil {
		return err
	}
	if a.flags.LogLevel != "" {
		cfg.Logging.Level = a.flags.LogLevel
	}
	if a.flags.LogFormat != "" {
		cfg.Logging.Format = a.flags.LogFormat
	}
	a.cfg = cfg
	if a.log == nil {
		a.log = logging.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
	}
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		printError(cmd.ErrOrStderr(), err)
		stop()
		os.Exit(1)
	}
}

// printError writes one line per issue so mapping failures stay readable.
func printError(w io.Writer, err error) {
	iss, ok := paywallui.AsIssues(err)
	if !ok {
		fmt.Fprintln(w, "error:", err)
		return
	}
	for _, it := range iss {
		fmt.Fprintf(w, "error: %s at %s: %s", it.Code, it.Path, it.Message)
		if it.Hint != "" {
			fmt.Fprintf(w, " (%s)", it.Hint)
		}
		fmt.Fprintln(w)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/waabox/clidemo/internal/config"
	"github.com/waabox/clidemo/internal/logging"
	"github.com/waabox/clidemo/internal/script"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// app carries what every subcommand needs once the root pre-run has loaded it.
type app struct {
	configPath string
	debug      bool
	cfg        config.Config
	scripts    *script.Registry
	logger     *slog.Logger
	logFile    io.Closer
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var pf playFlags

	root := &cobra.Command{
		Use:           "clidemo [script]",
		Short:         "Play back a scripted developer workflow in a terminal window",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.play(cmd, args, pf)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultConfigPath(), "Path to the config file")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")
	pf.register(root)

	root.AddCommand(playCmd(a))
	root.AddCommand(listCmd(a))
	root.AddCommand(themeCmd(a))
	root.AddCommand(versionCmd())
	return root
}

// load reads the config and sets up logging. Logs go to log_file when set, otherwise to
// stderr until the UI takes over the terminal.
func (a *app) load() error {
	cfg, err := config.LoadFrom(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg
	a.scripts = script.Builtin()

	var w io.Writer = os.Stderr
	if cfg.LogFile != "" {
		f, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			return err
		}
		a.logFile = f
		w = f
	}
	return a.configureLogging(w)
}

func (a *app) configureLogging(w io.Writer) error {
	level := a.cfg.LogLevel
	if a.debug {
		level = logging.LevelDebug
	}
	logger, err := logging.Configure(level, w)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func (a *app) close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

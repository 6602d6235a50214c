package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/waabox/clidemo/internal/config"
	"github.com/waabox/clidemo/internal/device"
	"github.com/waabox/clidemo/internal/domain"
	"github.com/waabox/clidemo/internal/script"
	"github.com/waabox/clidemo/internal/theme"
	"github.com/waabox/clidemo/internal/tui"
)

type playFlags struct {
	static bool
	plain  bool
	loop   bool
	file   string
}

func (f *playFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.static, "static", false, "Open immediately and never auto-advance")
	cmd.Flags().BoolVar(&f.plain, "plain", false, "Print frames as plain text instead of the interactive window")
	cmd.Flags().BoolVar(&f.loop, "loop", false, "Return to the first step after the last one")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Play a YAML or TOML script file")
}

func playCmd(a *app) *cobra.Command {
	var pf playFlags
	cmd := &cobra.Command{
		Use:   "play [script]",
		Short: "Play a demo script",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.play(cmd, args, pf)
		},
	}
	pf.register(cmd)
	return cmd
}

func (a *app) play(cmd *cobra.Command, args []string, pf playFlags) error {
	s, err := a.resolveScript(args, pf)
	if err != nil {
		return err
	}
	a.logger.Debug("playing script", "script", s.Name, "steps", len(s.Steps), "policy", s.Policy())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if pf.plain || !isatty.IsTerminal(os.Stdout.Fd()) {
		return runPlain(ctx, cmd.OutOrStdout(), s, plainOptions{
			static:    pf.static,
			showDelay: a.cfg.ShowDelay(),
			logger:    a.logger,
		})
	}

	// The UI owns the terminal from here on.
	if a.logFile == nil {
		if err := a.configureLogging(io.Discard); err != nil {
			return err
		}
	}
	th, err := a.cfg.ThemeOrDefault()
	if err != nil {
		return err
	}
	m, err := tui.NewAppModel(s, theme.NewProvider(th, config.NewThemeStore(a.configPath)), tui.Options{
		Static:       pf.static,
		ShowDelay:    a.cfg.ShowDelay(),
		Capabilities: device.Detect(a.cfg.ReducedMotion).Capabilities(),
		Logger:       a.logger,
	})
	if err != nil {
		return err
	}
	return tui.Run(ctx, m)
}

// resolveScript picks the script to play and applies end-of-script overrides. Flags beat
// the config file, which beats the script's own settings.
func (a *app) resolveScript(args []string, pf playFlags) (domain.Script, error) {
	var (
		s   domain.Script
		err error
	)
	switch {
	case pf.file != "":
		s, err = script.LoadFile(pf.file)
	case len(args) == 1:
		s, err = a.scripts.Lookup(args[0])
	default:
		s, err = a.scripts.Lookup(a.cfg.ScriptOrDefault())
	}
	if err != nil {
		return domain.Script{}, err
	}

	policy, err := a.cfg.Policy()
	if err != nil {
		return domain.Script{}, err
	}
	if policy != "" {
		s.EndPolicy = policy
	}
	if pf.loop {
		s.EndPolicy = domain.EndLoop
	}
	if pause := a.cfg.LoopPause(); pause > 0 {
		s.LoopPause = pause
	}
	return s, nil
}

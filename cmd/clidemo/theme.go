package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/waabox/clidemo/internal/config"
	"github.com/waabox/clidemo/internal/theme"
)

func themeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the colour theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.showTheme(cmd)
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the selected and effective theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.showTheme(cmd)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Cycle system, light and dark and save the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.themeProvider()
			if err != nil {
				return err
			}
			if err := p.Toggle(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "theme set to %s\n", p.Theme())
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:       "set <light|dark|system>",
		Short:     "Select a theme and save it",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(theme.Light), string(theme.Dark), string(theme.System)},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := theme.Parse(args[0])
			if err != nil {
				return err
			}
			p, err := a.themeProvider()
			if err != nil {
				return err
			}
			if err := p.Set(t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "theme set to %s\n", p.Theme())
			return nil
		},
	})
	return cmd
}

func (a *app) themeProvider() (*theme.Provider, error) {
	t, err := a.cfg.ThemeOrDefault()
	if err != nil {
		return nil, err
	}
	return theme.NewProvider(t, config.NewThemeStore(a.configPath)), nil
}

func (a *app) showTheme(cmd *cobra.Command) error {
	p, err := a.themeProvider()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "theme: %s (effective: %s)\n", p.Theme(), p.Effective())
	return nil
}

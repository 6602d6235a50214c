package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the built-in scripts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := a.scripts.Names()
			rows := make([][]string, 0, len(names))
			for _, name := range names {
				s, err := a.scripts.Lookup(name)
				if err != nil {
					return err
				}
				marker := ""
				if name == a.cfg.ScriptOrDefault() {
					marker = "*"
				}
				rows = append(rows, []string{
					marker + name,
					s.WindowTitle,
					strconv.Itoa(len(s.Steps)),
					string(s.Policy()),
				})
			}
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return lipgloss.NewStyle().Bold(true).Padding(0, 1)
					}
					return lipgloss.NewStyle().Padding(0, 1)
				}).
				Headers("Script", "Title", "Steps", "At end").
				Rows(rows...)
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}
}

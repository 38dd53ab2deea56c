package main

import (
	"github.com/spf13/cobra"
)

func newEntriesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "entries <save file>",
		Short: "List the entry table of a save container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.newApp(cmd)
			if err != nil {
				return err
			}
			return a.ListEntries(cmd.Context(), args[0])
		},
	}
}

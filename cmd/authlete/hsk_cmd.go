package main

import (
	"github.com/spf13/cobra"
)

func (a *app) newHskCmd() *cobra.Command {
	hskCmd := &cobra.Command{
		Use:   "hsk",
		Short: "Inspect keys held in hardware security modules",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			res, err := client.HskGetList(cmd.Context())
			if err != nil {
				return err
			}
			return a.printJSON(res)
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <handle>",
		Short: "Get a key by its handle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			res, err := client.HskGet(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printJSON(res)
		},
	}

	hskCmd.AddCommand(listCmd, getCmd)
	return hskCmd
}

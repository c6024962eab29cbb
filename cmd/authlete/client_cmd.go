package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jrsteele09/go-authlete/oauthmodel"
)

const maxConcurrentGets = 4

func (a *app) newClientCmd() *cobra.Command {
	clientCmd := &cobra.Command{
		Use:   "client",
		Short: "Manage the clients of the service",
	}

	getCmd := &cobra.Command{
		Use:   "get <id>...",
		Short: "Get clients by ID or alias",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			clients := make([]*oauthmodel.Client, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(maxConcurrentGets)
			for i, id := range args {
				g.Go(func() error {
					c, err := client.GetClient(ctx, id)
					if err != nil {
						return err
					}
					clients[i] = c
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			if len(clients) == 1 {
				return a.printJSON(clients[0])
			}
			return a.printJSON(clients)
		},
	}

	var developer string
	var start, end int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			list, err := client.GetClientList(cmd.Context(), &oauthmodel.ClientListRequest{Developer: developer, Start: start, End: end})
			if err != nil {
				return err
			}
			return a.printJSON(list)
		},
	}
	listCmd.Flags().StringVar(&developer, "developer", "", "Only list clients of this developer")
	addRangeFlags(listCmd, &start, &end)

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			if err := client.DeleteClient(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.logger.Info().Str("client", args[0]).Msg("Client deleted")
			return nil
		},
	}

	clientCmd.AddCommand(getCmd, listCmd, deleteCmd)
	return clientCmd
}

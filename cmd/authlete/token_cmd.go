package main

import (
	"github.com/spf13/cobra"

	"github.com/jrsteele09/go-authlete/internal/utils"
	"github.com/jrsteele09/go-authlete/oauthmodel"
)

func (a *app) newTokenCmd() *cobra.Command {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Inspect and delete access tokens",
	}

	var scopes []string
	var subject string
	introspectCmd := &cobra.Command{
		Use:   "introspect <token>",
		Short: "Introspect an access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			res, err := client.Introspection(cmd.Context(), &oauthmodel.IntrospectionRequest{
				Token:   args[0],
				Scopes:  scopes,
				Subject: utils.PtrOrNil(subject),
			})
			if err != nil {
				return err
			}
			a.logger.Debug().Stringer("action", res.Action).Bool("usable", res.Usable).Msg("Introspection")
			return a.printJSON(res)
		},
	}
	introspectCmd.Flags().StringSliceVar(&scopes, "scope", nil, "Scopes the token must cover")
	introspectCmd.Flags().StringVar(&subject, "subject", "", "Subject the token must belong to")

	var clientIdentifier, listSubject string
	var start, end int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List access tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			list, err := client.GetTokenList(cmd.Context(), &oauthmodel.TokenListRequest{
				ClientIdentifier: clientIdentifier,
				Subject:          listSubject,
				Start:            start,
				End:              end,
			})
			if err != nil {
				return err
			}
			return a.printJSON(list)
		},
	}
	listCmd.Flags().StringVar(&clientIdentifier, "client", "", "Only list tokens of this client ID or alias")
	listCmd.Flags().StringVar(&listSubject, "subject", "", "Only list tokens of this subject")
	addRangeFlags(listCmd, &start, &end)

	deleteCmd := &cobra.Command{
		Use:   "delete <token>",
		Short: "Delete an access token by its value or hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			if err := client.TokenDelete(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.logger.Info().Msg("Token deleted")
			return nil
		},
	}

	tokenCmd.AddCommand(introspectCmd, listCmd, deleteCmd)
	return tokenCmd
}

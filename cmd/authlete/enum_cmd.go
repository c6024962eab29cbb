package main

import (
	"github.com/spf13/cobra"

	apperrors "github.com/jrsteele09/go-authlete/internal/errors"
	"github.com/jrsteele09/go-authlete/oauth2"
)

func (a *app) newEnumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enum [kind]",
		Short: "Print protocol constant tables",
		Long: `Without arguments, enum prints the names of the constant kinds.
With a kind, it prints the ordinal, wire value and name of every constant of that kind.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.printJSON(oauth2.KindNames())
			}
			table, ok := oauth2.Kinds()[args[0]]
			if !ok {
				return apperrors.Wrapf(apperrors.ErrUnknownKind, "%q", args[0])
			}
			return a.printJSON(table)
		},
	}
}

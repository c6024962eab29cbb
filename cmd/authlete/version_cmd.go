package main

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			a.displayAppname(a.cfg.GetAppName())
			_, err := fmt.Fprintf(a.out, "%s %s (%s)\n", a.cfg.GetAppName(), version, a.cfg.GetEnv())
			return err
		},
	}
}

func (a *app) displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	fmt.Fprintln(a.out, myFigure.String())
}

package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		a       = &app{}
	)

	root := &cobra.Command{
		Use:           "backoffice",
		Short:         "Deespora admin back-office",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			built, err := newApp(cmd, verbose)
			if err != nil {
				return err
			}
			*a = *built
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log requests to stderr")

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newDashboardCmd(a),
		newListCmd(a),
		newViewCmd(a),
		newCategoriesCmd(a),
		newAdminsCmd(a),
		newUsersCmd(a),
		newAdvertsCmd(a),
	)
	return root
}

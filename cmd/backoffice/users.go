package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/deespora/backoffice/internal/types"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newUsersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}
	cmd.AddCommand(
		newSetActiveCmd(a, true),
		newSetActiveCmd(a, false),
		newExportUsersCmd(a),
		newImportUsersCmd(a),
	)
	return cmd
}

func newSetActiveCmd(a *app, active bool) *cobra.Command {
	use, done := "deactivate", "deactivated"
	if active {
		use, done = "activate", "activated"
	}
	return &cobra.Command{
		Use:   use + " <id>",
		Short: "Mark a user " + done,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := a.authorized(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.users.SetActive(ctx, args[0], active); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "User %s %s\n", args[0], done)
			return nil
		},
	}
}

func newExportUsersCmd(a *app) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every user as CSV or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" && output != "" && output != "-" {
				format = output
			}
			f, err := types.ParseFileFormat(lo.Ternary(format != "", format, string(types.FileFormatCSV)))
			if err != nil {
				return err
			}
			ctx, err := a.authorized(cmd.Context())
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			n, err := a.users.Export(ctx, &buf, f)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = io.Copy(a.out, &buf)
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Exported %d users to %s\n", n, output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "csv or json (defaults to the output extension, then csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write, - for stdout")
	return cmd
}

func newImportUsersCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Read a users export back and display it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := types.ParseFileFormat(lo.Ternary(format != "", format, args[0]))
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			users, err := a.users.Import(cmd.Context(), data, f)
			if err != nil {
				return err
			}
			if err := printUsers(a.out, users, a.cfg.Listing.Location()); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "\n%d users read\n", len(users))
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "csv or json (defaults to the file extension)")
	return cmd
}

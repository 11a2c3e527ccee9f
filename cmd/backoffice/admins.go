package main

import (
	"fmt"

	"github.com/deespora/backoffice/internal/api/dto"
	"github.com/deespora/backoffice/internal/listing"
	"github.com/spf13/cobra"
)

func newAdminsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admins",
		Short: "List and create admins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := a.authorized(cmd.Context())
			if err != nil {
				return err
			}
			result, err := a.admins.View(ctx, listing.ViewState{Page: 1, PageSize: 100})
			if err != nil {
				return err
			}
			return printUsers(a.out, result.Items, a.cfg.Listing.Location())
		},
	}
	cmd.AddCommand(newCreateAdminCmd(a))
	return cmd
}

func newCreateAdminCmd(a *app) *cobra.Command {
	var req dto.CreateAdminRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new admin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := a.authorized(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.admins.Create(ctx, &req); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Admin %s created\n", req.Email)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.FirstName, "first-name", "", "first name")
	f.StringVar(&req.LastName, "last-name", "", "last name")
	f.StringVar(&req.Email, "email", "", "email address")
	f.StringVar(&req.PhoneNumber, "phone", "", "phone number")
	f.StringVar(&req.Password, "password", "", "initial password, at least 5 characters")
	f.StringVar(&req.Role, "role", "admin", "admin, super-admin or administrator")
	return cmd
}

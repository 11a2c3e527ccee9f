package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/deespora/backoffice/internal/api/dto"
	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	var req dto.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in against the backend and save the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewReader(a.in)
			var err error
			if req.Email == "" {
				if req.Email, err = prompt(in, a.out, "Email: "); err != nil {
					return err
				}
			}
			if req.Password == "" {
				req.Password = os.Getenv("BACKOFFICE_PASSWORD")
			}
			if req.Password == "" {
				if req.Password, err = prompt(in, a.out, "Password: "); err != nil {
					return err
				}
			}

			sess, err := a.auth.Login(cmd.Context(), &req)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Logged in as %s\n", sess.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "admin email")
	cmd.Flags().StringVar(&req.Password, "password", "", "admin password (or BACKOFFICE_PASSWORD)")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show who is logged in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.auth.Current(cmd.Context())
			if err != nil {
				return err
			}
			if sess == nil {
				fmt.Fprintln(a.out, "Not logged in")
				return nil
			}
			fmt.Fprintln(a.out, sess.Email)
			return nil
		},
	}
}

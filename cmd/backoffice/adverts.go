package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/deespora/backoffice/internal/api/dto"
	"github.com/spf13/cobra"
)

func newAdvertsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "adverts",
		Aliases: []string{"listings"},
		Short:   "Create, promote and delete listings",
	}
	cmd.AddCommand(
		newCreateAdvertCmd(a),
		newPromoteCmd(a),
		newDeleteAdvertCmd(a),
	)
	return cmd
}

func newCreateAdvertCmd(a *app) *cobra.Command {
	var (
		req    dto.CreateListingRequest
		date   string
		images []string
		fields map[string]string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Upload a new listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if date != "" {
				t, err := time.ParseInLocation(time.DateOnly, date, a.cfg.Listing.Location())
				if err != nil {
					return fmt.Errorf("--date must look like 2006-01-02: %w", err)
				}
				req.EventDate = &t
			}
			req.Fields = fields
			for _, path := range images {
				content, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				req.Images = append(req.Images, dto.ListingImage{
					Filename: filepath.Base(path),
					Content:  content,
				})
			}

			ctx, err := a.authorized(cmd.Context())
			if err != nil {
				return err
			}
			rec, err := a.adverts.Create(ctx, &req)
			if err != nil {
				return err
			}
			if rec == nil || rec.ID == "" {
				fmt.Fprintln(a.out, "Listing created")
				return nil
			}
			fmt.Fprintf(a.out, "Listing created: %s\n", rec.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Title, "title", "", "listing title")
	f.StringVar(&req.Description, "description", "", "listing description")
	f.StringVar(&req.Category, "category", "", "category slug")
	f.StringVar(&req.Location, "location", "", "location")
	f.StringVar(&req.Price, "price", "", "price")
	f.StringVar(&req.Contact, "contact", "", "contact details")
	f.StringVar(&date, "date", "", "event date, YYYY-MM-DD")
	f.StringSliceVar(&images, "image", nil, "image file, repeatable")
	f.StringToStringVar(&fields, "field", nil, "extra form field key=value, repeatable")
	return cmd
}

func newPromoteCmd(a *app) *cobra.Command {
	var (
		req   dto.PromoteRequest
		start string
	)

	cmd := &cobra.Command{
		Use:   "promote <id>",
		Short: "Promote a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if start != "" {
				t, err := time.ParseInLocation(time.DateOnly, start, a.cfg.Listing.Location())
				if err != nil {
					return fmt.Errorf("--start must look like 2006-01-02: %w", err)
				}
				req.PromotionStartDate = t
			}
			ctx, err := a.authorized(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.adverts.Promote(ctx, args[0], &req); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Listing %s promoted for %s\n", args[0], req.PromotionDuration)
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&req.PromoteOnHomepage, "homepage", false, "feature on the homepage")
	f.BoolVar(&req.HighlightInNewsletter, "newsletter", false, "highlight in the newsletter")
	f.BoolVar(&req.AddTrendingBadge, "trending", false, "add a trending badge")
	f.StringVar(&req.PromotionDuration, "duration", "", "promotion duration, for example 7days")
	f.StringVar(&start, "start", "", "start date, YYYY-MM-DD (default today)")
	return cmd
}

func newDeleteAdvertCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(bufio.NewReader(a.in), a.out, fmt.Sprintf("Delete listing %s?", args[0])) {
				fmt.Fprintln(a.out, "Cancelled")
				return nil
			}
			ctx, err := a.authorized(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.adverts.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Listing %s deleted\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation")
	return cmd
}

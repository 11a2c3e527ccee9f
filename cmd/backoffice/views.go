package main

import (
	"fmt"
	"strconv"

	"github.com/deespora/backoffice/internal/api/dto"
	"github.com/deespora/backoffice/internal/types"
	"github.com/k0kubun/pp"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// upcomingShown caps the events listed under the dashboard counters
const upcomingShown = 5

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show user and listing counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := a.authorized(cmd.Context())
			if err != nil {
				return err
			}
			d := a.dashboard.Load(ctx)

			tw := newTable(a.out, "METRIC", "VALUE")
			row(tw, "Total users", strconv.Itoa(d.Stats.TotalUsers))
			row(tw, "Active users", strconv.Itoa(d.Stats.ActiveUsers))
			row(tw, "Churned users", strconv.Itoa(d.Stats.ChurnedUsers))
			row(tw, "New this week", strconv.Itoa(d.Stats.NewUsersThisWeek))
			row(tw, "Total listings", strconv.Itoa(d.Stats.TotalListings))
			row(tw, "Events", strconv.Itoa(d.Stats.Events))
			row(tw, "Restaurants", strconv.Itoa(d.Stats.Restaurants))
			row(tw, "Catering", strconv.Itoa(d.Stats.Catering))
			row(tw, "Real estate", strconv.Itoa(d.Stats.RealEstate))
			if err := tw.Flush(); err != nil {
				return err
			}

			if len(d.Events) == 0 {
				return nil
			}
			fmt.Fprintln(a.out)
			return printDashboardEvents(a.out, lo.Subset(d.Events, 0, upcomingShown), a.cfg.Listing.Location())
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	var req dto.ListViewRequest

	cmd := &cobra.Command{
		Use:   "list <kind|all>",
		Short: "List one page of a kind after search, filter and sort",
		Long:  "Kinds: events, users, admins, restaurants, catering, real-estate, listings. Use \"all\" for every listing kind.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind types.Kind
			if args[0] != "all" {
				k, err := types.ParseKind(args[0])
				if err != nil {
					return err
				}
				kind = k
			}

			view, err := req.ToViewState()
			if err != nil {
				return err
			}
			ctx, err := a.authorized(cmd.Context())
			if err != nil {
				return err
			}
			result, err := a.listings.View(ctx, kind, view)
			if err != nil {
				return err
			}

			if kind == types.KindUsers || kind == types.KindAdmins {
				err = printUsers(a.out, result.Items, a.cfg.Listing.Location())
			} else {
				err = printRecords(a.out, result.Items, a.cfg.Listing.Location())
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "\nPage %d of %d (%d records)\n", result.Page, result.TotalPages, result.TotalCount)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&req.Page, "page", 1, "page number")
	f.IntVar(&req.PageSize, "page-size", 0, "rows per page")
	f.StringVar(&req.Search, "search", "", "case-insensitive search")
	f.StringVar(&req.Status, "status", "", "active, inactive or unknown")
	f.StringVar(&req.Category, "category", "", "category filter")
	f.StringVar(&req.Date, "date", "", "today, this-week, this-month, next-month, upcoming or past")
	f.StringVar(&req.Location, "location", "", "location filter")
	f.StringVar(&req.Role, "role", "", "role filter (users)")
	f.StringVar(&req.Phase, "phase", "", "upcoming, ongoing or past (events)")
	f.StringVar(&req.Sort, "sort", "", "date-asc or date-desc")
	return cmd
}

func newViewCmd(a *app) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "view <kind> <id>",
		Short: "Show one record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := types.ParseKind(args[0])
			if err != nil {
				return err
			}
			ctx, err := a.authorized(cmd.Context())
			if err != nil {
				return err
			}
			rec, err := a.listings.Get(ctx, kind, args[1])
			if err != nil {
				return err
			}

			if raw {
				_, err := pp.Fprintln(a.out, rec.Raw)
				return err
			}

			loc := a.cfg.Listing.Location()
			tw := newTable(a.out, "FIELD", "VALUE")
			row(tw, "ID", rec.ID)
			row(tw, "Name", orNA(rec.DisplayName))
			row(tw, "Kind", rec.Kind.Label())
			row(tw, "Status", rec.Status.Label())
			row(tw, "Created", formatDate(rec.CreatedAt, loc))
			row(tw, "Date", formatDate(rec.StartDate, loc))
			row(tw, "Location", rec.DisplayLocation())
			row(tw, "Category", orNA(rec.Category))
			row(tw, "Organizer", orNA(rec.Organizer))
			row(tw, "Email", orNA(rec.Email))
			row(tw, "Phone", orNA(rec.Phone))
			if rec.Price != nil {
				row(tw, "Price", rec.Price.String())
			}
			if rec.Promoted {
				row(tw, "Promoted", "yes")
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "dump the untouched backend object")
	return cmd
}

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List listing categories with their counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := a.authorized(cmd.Context())
			if err != nil {
				return err
			}
			tw := newTable(a.out, "ID", "NAME", "SLUG", "LISTINGS", "STATUS")
			for _, c := range a.categories.List(ctx) {
				row(tw, c.ID, c.Name, c.Slug, strconv.Itoa(c.ListingsCount), c.Status.Label())
			}
			return tw.Flush()
		},
	}
}

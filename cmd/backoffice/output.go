package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/deespora/backoffice/internal/domain/record"
	"github.com/deespora/backoffice/internal/service"
)

func newTable(w io.Writer, headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return tw
}

func row(tw *tabwriter.Writer, cols ...string) {
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
}

func formatDate(t *time.Time, loc *time.Location) string {
	if t == nil {
		return "N/A"
	}
	return t.In(loc).Format(record.DisplayDateLayout)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func printRecords(w io.Writer, recs []record.Record, loc *time.Location) error {
	tw := newTable(w, "ID", "NAME", "KIND", "STATUS", "DATE", "LOCATION")
	for _, r := range recs {
		row(tw, r.ID, orNA(r.DisplayName), r.Kind.Slug(), r.Status.Label(), formatDate(r.EffectiveDate(), loc), r.DisplayLocation())
	}
	return tw.Flush()
}

func printDashboardEvents(w io.Writer, events []service.DashboardEvent, loc *time.Location) error {
	tw := newTable(w, "ID", "NAME", "PHASE", "DATE", "LOCATION")
	for _, e := range events {
		row(tw, e.ID, orNA(e.DisplayName), e.Phase.Label(), formatDate(e.StartDate, loc), e.DisplayLocation())
	}
	return tw.Flush()
}

func printUsers(w io.Writer, recs []record.Record, loc *time.Location) error {
	tw := newTable(w, "ID", "NAME", "EMAIL", "PHONE", "ROLE", "STATUS", "JOINED")
	for _, r := range recs {
		row(tw, orNA(r.ID), orNA(r.DisplayName), orNA(r.Email), orNA(r.Phone), orNA(r.Role), r.Status.Label(), formatDate(r.CreatedAt, loc))
	}
	return tw.Flush()
}

// prompt reads one trimmed line from in after writing label to out
func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func confirm(in *bufio.Reader, out io.Writer, question string) bool {
	answer, err := prompt(in, out, question+" [y/N] ")
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

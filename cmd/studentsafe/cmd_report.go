package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/client"
	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/reports"
	"github.com/spf13/cobra"
)

var (
	reportTitle       string
	reportDescription string
	reportType        string
	recentLimit       int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Submit and review incident reports",
}

var reportSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a new incident report",
	Long: `Submit a confidential incident report. The report is stored as pending
until school staff review it. If the server cannot store it, nothing is
lost: run the same command again.`,
	RunE: runReportSubmit,
}

var reportRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show your most recent reports and their status",
	RunE:  runReportRecent,
}

var reportTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List report types",
	RunE:  runReportTypes,
}

func init() {
	reportSubmitCmd.Flags().StringVar(&reportTitle, "title", "", "Short title (max 100 characters)")
	reportSubmitCmd.Flags().StringVar(&reportDescription, "description", "", "What happened (max 1000 characters)")
	reportSubmitCmd.Flags().StringVar(&reportType, "type", "", "bullying, harassment, violence or other")
	reportRecentCmd.Flags().IntVar(&recentLimit, "limit", reports.DefaultRecentLimit, "Number of reports to show")

	reportCmd.AddCommand(reportSubmitCmd)
	reportCmd.AddCommand(reportRecentCmd)
	reportCmd.AddCommand(reportTypesCmd)
}

func runReportSubmit(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	c := newClient()
	sess, err := c.Session(ctx)
	if err != nil {
		return fmt.Errorf("sign in first: %w", err)
	}

	out := cmd.OutOrStdout()
	form := reports.NewForm()
	form.SetTitle(reportTitle)
	form.SetDescription(reportDescription)
	form.SelectType(reports.Type(reportType))
	form.OnTransition(func(_, to reports.FormState) {
		if to == reports.FormSubmitting {
			fmt.Fprintln(out, "Submitting...")
		}
	})

	r, err := form.Submit(ctx, sess, c)
	if err != nil {
		var ve *reports.ValidationError
		if errors.As(err, &ve) {
			return fmt.Errorf("check --%s: %s", ve.Field, ve.Reason)
		}
		var se *reports.SubmissionError
		if errors.As(err, &se) {
			return errors.New("Failed to submit report. Please try again.")
		}
		return err
	}

	fmt.Fprintf(out, "Report submitted: %s (%s)\n", r.ID, reports.Present(r.Status).Label)
	return nil
}

func runReportRecent(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	c := newClient()
	sess, err := c.Session(ctx)
	if err != nil {
		if client.IsUnauthorized(err) {
			return errors.New("session expired, sign in again")
		}
		return fmt.Errorf("sign in first: %w", err)
	}

	feed := reports.NewFeed(c, sess.UserID, recentLimit, slog.Default())
	items := feed.Refresh(ctx)

	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintln(out, "No reports yet")
		return nil
	}
	for _, s := range items {
		fmt.Fprintf(out, "%-10s %s  %s\n", reports.Present(s.Status).Label, s.CreatedAt.Local().Format("Jan 2, 2006"), s.Title)
	}
	return nil
}

func runReportTypes(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	types, err := newClient().Types(ctx)
	if err != nil {
		return err
	}
	for _, t := range types {
		fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", t.ID, t.Label)
	}
	return nil
}

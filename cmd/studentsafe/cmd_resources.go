package main

import (
	"context"
	"fmt"
	"io"

	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/resources"
	"github.com/spf13/cobra"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "Show support resources by category",
	RunE:  runResources,
}

var emergencyCmd = &cobra.Command{
	Use:   "emergency",
	Short: "Show emergency hotlines",
	Long:  "Show emergency hotlines. This works offline.",
	RunE:  runEmergency,
}

func runResources(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := newClient().Resources(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printEmergency(out, resp.EmergencyNotice, resp.EmergencyContacts)
	for _, g := range resp.Categories {
		fmt.Fprintf(out, "\n%s\n", g.Category)
		for _, r := range g.Resources {
			fmt.Fprintf(out, "  %s  %s\n", r.Title, r.URL)
			if r.Description != "" {
				fmt.Fprintf(out, "    %s\n", r.Description)
			}
		}
	}
	return nil
}

func runEmergency(cmd *cobra.Command, args []string) error {
	printEmergency(cmd.OutOrStdout(), resources.EmergencyNotice, resources.EmergencyContacts())
	return nil
}

func printEmergency(out io.Writer, notice string, contacts []resources.EmergencyContact) {
	fmt.Fprintln(out, notice)
	for _, c := range contacts {
		fmt.Fprintf(out, "  %s: %s", c.Title, c.Phone)
		if c.DialURI != "" {
			fmt.Fprintf(out, " <%s>", c.DialURI)
		}
		fmt.Fprintln(out)
	}
}

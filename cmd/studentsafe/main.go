// Command studentsafe is a terminal client for the StudentSafe API.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/client"
	"github.com/spf13/cobra"
)

var (
	serverURL string
	token     string
	timeout   time.Duration
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "studentsafe",
	Short: "Report safety incidents to your school",
	Long: `studentsafe submits confidential incident reports and shows their
review status. Reports are visible only to you and your school's staff.

If you are in immediate danger, call 911.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "url", envOr("STUDENTSAFE_URL", "http://localhost:8080"), "API base URL (or set STUDENTSAFE_URL)")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("STUDENTSAFE_TOKEN"), "Access token (or set STUDENTSAFE_TOKEN)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Operation timeout")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(resourcesCmd)
	rootCmd.AddCommand(emergencyCmd)
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newClient() *client.Client {
	return client.New(serverURL, token)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

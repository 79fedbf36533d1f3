package main

import (
	"context"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/studentsafe/internal/dto"
	"github.com/spf13/cobra"
)

var (
	authEmail    string
	authPassword string
	authSchool   string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and print an access token",
	RunE:  runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a student account",
	RunE:  runRegister,
}

func init() {
	for _, c := range []*cobra.Command{loginCmd, registerCmd} {
		c.Flags().StringVar(&authEmail, "email", "", "Account email")
		c.Flags().StringVar(&authPassword, "password", "", "Account password")
		c.MarkFlagRequired("email")
		c.MarkFlagRequired("password")
	}
	registerCmd.Flags().StringVar(&authSchool, "school", "", "Your school")
	registerCmd.MarkFlagRequired("school")
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := newClient().Login(ctx, dto.LoginRequest{Email: authEmail, Password: authPassword})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	printTokens(cmd, resp)
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := newClient().Register(ctx, dto.RegisterRequest{
		Email:    authEmail,
		Password: authPassword,
		School:   authSchool,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	printTokens(cmd, resp)
	return nil
}

func printTokens(cmd *cobra.Command, resp *dto.AuthResponse) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Signed in as %s (%s)\n", resp.User.Email, resp.User.School)
	fmt.Fprintf(out, "export STUDENTSAFE_TOKEN=%s\n", resp.AccessToken)
	fmt.Fprintf(out, "refresh token: %s\n", resp.RefreshToken)
}

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/admitly/portal-service/internal/auth"
	"github.com/admitly/portal-service/internal/config"
)

func newTokenCmd() *cobra.Command {
	var (
		subject   string
		email     string
		confirmed bool
		secret    string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development access token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if secret == "" {
				secret = cfg.Auth.JWTSecret
			}
			if secret == "" {
				return errors.New("no signing secret: set AUTH_JWT_SECRET or --secret")
			}

			var confirmedAt *time.Time
			if confirmed {
				now := time.Now().UTC()
				confirmedAt = &now
			}

			tokens := auth.NewTokenManager(secret, cfg.Auth.Issuer, cfg.Auth.AccessTokenTTLMinutes)
			token, expiresAt, err := tokens.GenerateToken(subject, email, confirmedAt)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expiresAt.UTC().Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "identity id (uuid)")
	cmd.Flags().StringVar(&email, "email", "", "email claim")
	cmd.Flags().BoolVar(&confirmed, "confirmed", true, "mark the email as confirmed")
	cmd.Flags().StringVar(&secret, "secret", "", "signing secret (defaults to AUTH_JWT_SECRET)")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

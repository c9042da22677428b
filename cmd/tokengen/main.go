package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"tvpss-crew-backend/internal/config"
	"tvpss-crew-backend/internal/security"
)

// tokengen signs an access token with the server's JWT secret, for operators
// and service accounts that call the crew API.
func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("tokengen: %v", err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("tokengen", flag.ContinueOnError)
	configPath := fs.String("config", "config/config.dev.yaml", "Path to configuration file")
	userID := fs.Int("user-id", 0, "User ID to put in the token")
	email := fs.String("email", "", "Email claim")
	roles := fs.String("roles", "", "Comma-separated roles, e.g. 'admin'")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *userID <= 0 {
		return errors.New("-user-id must be a positive integer")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	tm := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)
	token, err := tm.GenerateAccessToken(int32(*userID), *email, splitRoles(*roles))
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	_, err = fmt.Fprintln(out, token)
	return err
}

func splitRoles(s string) []string {
	var roles []string
	for _, r := range strings.Split(s, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, r)
		}
	}
	return roles
}

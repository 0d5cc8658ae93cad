package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/unipress/internal/validation"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	// Запрашиваем username
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword(validation.PasswordHint())
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	c.io.Println()
	c.io.Println("Registering...")

	resp, err := c.sessions.Register(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("User ID: %s\n", resp.UserID)
	c.io.Printf("Role:    %s\n", resp.Role)

	// Сразу входим, чтобы не спрашивать пароль повторно
	if _, err := c.sessions.Login(ctx, username, password); err != nil {
		return fmt.Errorf("registered, but login failed: %w", err)
	}
	c.io.Println("Your session has been saved.")
	return nil
}

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	s, err := c.sessions.Login(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s\n", s.Username)
	c.io.Printf("Role:     %s\n", s.Role)
	c.io.Printf("Access token expires: %s\n", s.ExpiresAt.Format(time.RFC3339))
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if _, ok := c.sessions.Current(); !ok {
		c.io.Println("Not logged in.")
		return nil
	}

	if err := c.sessions.Logout(ctx); err != nil {
		return err
	}

	c.io.Println("✓ Logged out. Local session removed.")
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	s, ok := c.sessions.Current()
	if !ok {
		c.io.Println("Status: Not authenticated (reading anonymously)")
		if c.metadata != nil {
			if anonID, err := c.metadata.AnonymousID(ctx); err == nil {
				c.io.Printf("Anonymous ID: %s\n", anonID)
			}
		}
		c.io.Println()
		c.io.Println("Run 'unipress login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Username: %s\n", s.Username)
	c.io.Printf("User ID:  %s\n", s.UserID)
	c.io.Printf("Role:     %s\n", s.Role)
	c.io.Printf("Token expires: %s\n", s.ExpiresAt.Format(time.RFC3339))

	remaining := time.Until(s.ExpiresAt)
	if remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else if s.RefreshToken != "" {
		c.io.Println("Access token expired, it will be refreshed on the next request.")
	} else {
		c.io.Println("⚠️  Session has expired. Please login again.")
	}
	return nil
}

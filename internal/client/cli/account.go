package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/trackkeeper/internal/client/auth"
	"github.com/iudanet/trackkeeper/internal/client/sync"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password (min 8 chars): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	// Подтверждение пароля
	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}

	c.io.Println("Registering user...")
	userID, err := c.auth.Register(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("User ID: %s\n", userID)
	c.io.Println("Please run 'trackkeeper login' to start using the service.")
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

	c.io.Println("Authenticating...")
	session, err := c.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s\n", session.Username)
	if !session.ExpiresAt.IsZero() {
		c.io.Printf("Session expires: %s\n", session.ExpiresAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	c.io.Println("=== Logout ===")

	// Неотправленные операции теряются вместе с сессией
	if c.syncer != nil {
		if pending := c.syncer.Status(ctx).PendingCount; pending > 0 {
			c.io.Printf("⚠️  %d unsynchronized operation(s) discarded.\n", pending)
		}
		c.syncer.Reset(ctx)
	}
	if c.tracker != nil {
		c.tracker.ClearCache(ctx)
	}
	c.auth.Logout(ctx)

	c.io.Println("✓ Logout successful!")
	c.io.Println("Your local session and data have been deleted.")
	return nil
}

type statusView struct {
	Session *auth.Session
	Sync    *sync.Status
	Failed  int
}

func (c *Cli) runStatus(ctx context.Context) error {
	view := statusView{}

	session, err := c.auth.Restore(ctx)
	switch {
	case err == nil:
		view.Session = session
	case errors.Is(err, auth.ErrNotAuthenticated):
	default:
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	if c.syncer != nil {
		status := c.syncer.Status(ctx)
		view.Sync = &status
		view.Failed = len(c.syncer.FailedOperations(ctx))
	}

	out, err := render("status", view)
	if err != nil {
		return err
	}
	c.io.Printf("%s", out)

	if view.Session == nil {
		c.io.Println("Run 'trackkeeper login' to authenticate.")
	}
	if view.Failed > 0 {
		c.io.Println("Run 'trackkeeper failed' to inspect failed operations.")
	}
	return nil
}

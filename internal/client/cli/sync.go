package cli

import (
	"context"
	"errors"
	"fmt"
)

const (
	retryUsage   = "trackkeeper retry <id>|--all"
	discardUsage = "trackkeeper discard <id>|--all"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")

	if c.remote != nil {
		if err := c.remote.Health(ctx); err != nil {
			if c.network != nil {
				c.network.SetOnline(false)
			}
			pending := c.syncer.Status(ctx).PendingCount
			c.io.Printf("⚠️  Server unreachable: %v\n", err)
			c.io.Printf("%d operation(s) stay queued until the server is reachable.\n", pending)
			return nil
		}
		if c.network != nil {
			c.network.SetOnline(true)
		}
	}

	result, err := c.syncer.ProcessSync(ctx)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	status := c.syncer.Status(ctx)
	c.io.Println()
	c.io.Printf("Processed: %d\n", result.Processed)
	c.io.Printf("Succeeded: %d\n", result.Succeeded)
	if result.Failed > 0 {
		c.io.Printf("Failed:    %d\n", result.Failed)
	}
	if result.Exhausted > 0 {
		c.io.Printf("⚠️  %d operation(s) moved to failed. Run 'trackkeeper failed' for details.\n", result.Exhausted)
	}
	if status.PendingCount > 0 {
		c.io.Printf("Pending:   %d\n", status.PendingCount)
	} else {
		c.io.Println("✓ All operations synchronized with server")
	}
	return nil
}

func (c *Cli) runFailed(ctx context.Context) error {
	c.io.Println("=== Failed Operations ===")

	items := c.syncer.FailedOperations(ctx)
	if len(items) == 0 {
		c.io.Println("No failed operations.")
		return nil
	}

	out, err := render("failed", newFailedViews(items))
	if err != nil {
		return err
	}
	c.io.Printf("%s", out)
	c.io.Println()
	c.io.Println("Use 'trackkeeper retry <id>' or 'trackkeeper discard <id>' to resolve them.")
	return nil
}

func (c *Cli) runRetry(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: %s", ErrUsage, retryUsage)
	}

	if args[0] == "--all" {
		n, err := c.syncer.RetryAllFailed(ctx)
		if err != nil {
			return err
		}
		c.io.Printf("✓ %d operation(s) moved back to the queue\n", n)
		return nil
	}

	if err := c.syncer.RetryFailedItem(ctx, args[0]); err != nil {
		return err
	}
	c.io.Printf("✓ Operation %s moved back to the queue\n", args[0])
	return nil
}

func (c *Cli) runDiscard(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: %s", ErrUsage, discardUsage)
	}

	if args[0] == "--all" {
		n, err := c.syncer.DiscardAllFailed(ctx)
		if err != nil {
			return err
		}
		c.io.Printf("✓ %d operation(s) discarded\n", n)
		return nil
	}

	if err := c.syncer.DiscardFailedItem(ctx, args[0]); err != nil {
		return err
	}
	c.io.Printf("✓ Operation %s discarded\n", args[0])
	return nil
}

// IsUsageError сообщает, что ошибку стоит дополнить справкой
func IsUsageError(err error) bool {
	return errors.Is(err, ErrUsage)
}

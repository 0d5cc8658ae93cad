package cli

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/iudanet/unipress/internal/client/realtime"
	"github.com/iudanet/unipress/internal/client/views"
)

// RealtimePath путь websocket эндпоинта на сервере
const RealtimePath = "/api/v1/realtime"

// RealtimeURL строит адрес websocket по адресу HTTP API
func RealtimeURL(serverURL string) (string, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return "", fmt.Errorf("invalid server URL: %w", err)
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported server URL scheme %q", u.Scheme)
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + RealtimePath
	return u.String(), nil
}

// runWatch показывает обсуждение и реакции статьи в реальном времени,
// пока не отменен ctx
func (c *Cli) runWatch(ctx context.Context, articleID string) error {
	if c.transport == nil {
		return errors.New("realtime transport is not configured")
	}

	subs := realtime.NewManager(c.transport(ctx), c.logger)
	defer func() {
		if err := subs.Close(); err != nil {
			c.logger.Debug("Failed to close subscriptions", "error", err)
		}
	}()

	changed := make(chan struct{}, 1)
	deps := c.viewDeps(subs, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})

	thread := views.NewCommentThread(articleID, deps, c.repos.Comments, c.metadata)
	if err := thread.Open(ctx); err != nil {
		return fmt.Errorf("failed to open comments: %w", err)
	}
	defer thread.Close()

	bar := views.NewReactionBar(articleID, deps, c.repos.Reactions, c.metadata)
	if err := bar.Open(ctx); err != nil {
		return fmt.Errorf("failed to open reactions: %w", err)
	}
	defer bar.Close()

	c.io.Printf("Watching article %s. Press Ctrl+C to stop.\n", articleID)
	if err := c.printLive(thread, bar); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			c.io.Println("Stopped watching.")
			return nil
		case <-changed:
			if err := c.printLive(thread, bar); err != nil {
				return err
			}
		}
	}
}

func (c *Cli) printLive(thread *views.CommentThread, bar *views.ReactionBar) error {
	if err := c.render("comments", commentsTemplate, thread.Comments()); err != nil {
		return err
	}
	return c.render("reactions", reactionsTemplate, bar.Summaries())
}

package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/unipress/internal/client/views"
)

// openThread загружает обсуждение без realtime подписки
func (c *Cli) openThread(ctx context.Context, articleID string) (*views.CommentThread, error) {
	thread := views.NewCommentThread(articleID, c.viewDeps(nil, nil), c.repos.Comments, c.metadata)
	if err := thread.Open(ctx); err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}
	return thread, nil
}

func (c *Cli) runCommentsList(ctx context.Context, articleID string) error {
	thread, err := c.openThread(ctx, articleID)
	if err != nil {
		return err
	}
	defer thread.Close()

	if err := c.render("comments", commentsTemplate, thread.Comments()); err != nil {
		return err
	}
	if draft := thread.Draft(); draft != "" {
		c.io.Printf("Unsent draft: %s\n", truncate(draft, 60))
	}
	return nil
}

func (c *Cli) runCommentPost(ctx context.Context, articleID, parentID string, args []string) error {
	thread, err := c.openThread(ctx, articleID)
	if err != nil {
		return err
	}
	defer thread.Close()

	text, err := c.commentText(ctx, thread, args)
	if err != nil {
		return err
	}

	if parentID != "" {
		err = thread.Reply(ctx, parentID, text)
	} else {
		err = thread.Submit(ctx, text)
	}
	if err != nil {
		if thread.Draft() != "" {
			c.io.Println("Your text was kept as a draft. Run the command again without text to retry.")
		}
		return reported(err)
	}

	c.io.Println("✓ Comment posted")
	return c.render("comments", commentsTemplate, thread.Comments())
}

// commentText берет текст из аргументов; без аргументов спрашивает его,
// предлагая сохраненный черновик
func (c *Cli) commentText(ctx context.Context, thread *views.CommentThread, args []string) (string, error) {
	if len(args) > 0 {
		text, err := c.readText(args, "")
		if err != nil {
			return "", err
		}
		thread.SetDraft(ctx, text)
		return text, nil
	}

	prompt := "Comment: "
	draft := thread.Draft()
	if draft != "" {
		prompt = fmt.Sprintf("Comment [Enter to send draft %q]: ", truncate(draft, 40))
	}

	text, err := c.readText(nil, prompt)
	if err != nil {
		return "", err
	}
	if text == "" {
		return draft, nil
	}
	thread.SetDraft(ctx, text)
	return text, nil
}

func (c *Cli) runCommentDelete(ctx context.Context, articleID, commentID string) error {
	thread, err := c.openThread(ctx, articleID)
	if err != nil {
		return err
	}
	defer thread.Close()

	if err := thread.Delete(ctx, commentID); err != nil {
		return reported(err)
	}

	c.io.Println("✓ Comment deleted")
	return nil
}

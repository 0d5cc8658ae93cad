package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/unipress/internal/client/repository"
	"github.com/iudanet/unipress/internal/client/views"
	"github.com/iudanet/unipress/internal/models"
	"github.com/iudanet/unipress/internal/validation"
	"github.com/iudanet/unipress/pkg/api"
)

// articlePage данные шаблона списка статей
type articlePage struct {
	Status   models.ArticleStatus
	Articles []models.Article
	Page     int
	Pages    int
	Total    int
}

func (c *Cli) runArticlesList(ctx context.Context, params repository.ListArticlesParams) error {
	if params.Status != "" && !params.Status.Valid() {
		return fmt.Errorf("unknown status %q", params.Status)
	}

	feed := views.NewArticleFeed(c.viewDeps(nil, nil), c.repos.Articles, params)
	if err := feed.LoadPage(ctx, params.Page); err != nil {
		return fmt.Errorf("failed to load articles: %w", err)
	}

	page, pages, total := feed.Page()
	return c.render("articles", articleListTemplate, articlePage{
		Status:   feed.Status(),
		Articles: feed.Articles(),
		Page:     page,
		Pages:    pages,
		Total:    total,
	})
}

func (c *Cli) runArticleShow(ctx context.Context, idOrSlug string) error {
	article, err := c.repos.Articles.Get(ctx, idOrSlug)
	if err != nil {
		return fmt.Errorf("failed to get article: %w", err)
	}

	// реакции не обязательны для показа статьи
	summary, err := c.repos.Reactions.Summary(ctx, article.ID)
	if err != nil {
		c.logger.Warn("Failed to load reactions", "article_id", article.ID, "error", err)
	}

	return c.render("article", articleTemplate, struct {
		Reactions []models.ReactionSummary
		Article   models.Article
	}{
		Article:   article,
		Reactions: summary,
	})
}

// readArticle запрашивает поля статьи; пустой ввод оставляет текущее значение
func (c *Cli) readArticle(current api.ArticleRequest) (api.ArticleRequest, error) {
	req := current
	fields := []struct {
		dst    *string
		prompt string
	}{
		{&req.Title, "Title"},
		{&req.Summary, "Summary"},
		{&req.Content, "Content"},
		{&req.CoverURL, "Cover URL (optional)"},
	}

	for _, f := range fields {
		prompt := f.prompt + ": "
		if *f.dst != "" {
			prompt = fmt.Sprintf("%s [%s]: ", f.prompt, truncate(*f.dst, 30))
		}
		value, err := c.io.ReadInput(prompt)
		if err != nil {
			return req, fmt.Errorf("failed to read %s: %w", strings.ToLower(f.prompt), err)
		}
		if value != "" {
			*f.dst = value
		}
	}

	if err := validation.ValidateArticle(req.Title, req.Summary, req.Content); err != nil {
		return req, fmt.Errorf("invalid article: %w", err)
	}
	return req, nil
}

func (c *Cli) runArticleCreate(ctx context.Context) error {
	c.io.Println("=== New Article ===")
	c.io.Println()

	req, err := c.readArticle(api.ArticleRequest{})
	if err != nil {
		return err
	}

	article, err := c.repos.Articles.Create(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Draft saved!")
	c.io.Printf("ID:   %s\n", article.ID)
	c.io.Printf("Slug: %s\n", article.Slug)
	c.io.Println("Submit it for review with 'unipress articles status <id> pending'.")
	return nil
}

func (c *Cli) runArticleEdit(ctx context.Context, id string) error {
	article, err := c.repos.Articles.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get article: %w", err)
	}

	c.io.Println("=== Edit Article ===")
	c.io.Println("Press Enter to keep the current value.")
	c.io.Println()

	req, err := c.readArticle(api.ArticleRequest{
		Title:    article.Title,
		Summary:  article.Summary,
		Content:  article.Content,
		CoverURL: article.CoverURL,
	})
	if err != nil {
		return err
	}

	updated, err := c.repos.Articles.Update(ctx, article.ID, req)
	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}

	c.io.Printf("✓ Article updated (version %d)\n", updated.Version)
	return nil
}

func (c *Cli) runArticleStatus(ctx context.Context, id string, status models.ArticleStatus) error {
	if !status.Valid() {
		return fmt.Errorf("unknown status %q", status)
	}

	article, err := c.repos.Articles.ChangeStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("failed to change status: %w", err)
	}

	c.io.Printf("✓ %s is now %s\n", article.Title, article.Status)
	return nil
}

func (c *Cli) runArticleShare(ctx context.Context, id string) error {
	meta, err := c.repos.Articles.ShareMeta(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get share metadata: %w", err)
	}
	return c.render("share", shareTemplate, meta)
}

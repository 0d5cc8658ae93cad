package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	clientapi "github.com/iudanet/unipress/internal/client/api"
	"github.com/iudanet/unipress/internal/client/iocli"
	"github.com/iudanet/unipress/internal/client/realtime"
	"github.com/iudanet/unipress/internal/client/repository"
	"github.com/iudanet/unipress/internal/client/session"
	"github.com/iudanet/unipress/internal/client/storage/boltdb"
	"github.com/iudanet/unipress/internal/models"
)

// Значения глобальных флагов по умолчанию
const (
	DefaultServerURL = "http://localhost:8080"
	DefaultDBPath    = "unipress-client.db"
)

// BuildInfo информация о сборке, задается через ldflags
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// Options глобальные флаги клиента
type Options struct {
	ServerURL string
	DBPath    string
	LogLevel  string
}

// DefaultOptions значения флагов с учетом UNIPRESS_SERVER и UNIPRESS_DB
func DefaultOptions() Options {
	opts := Options{
		ServerURL: DefaultServerURL,
		DBPath:    DefaultDBPath,
		LogLevel:  "warn",
	}
	if v := os.Getenv("UNIPRESS_SERVER"); v != "" {
		opts.ServerURL = v
	}
	if v := os.Getenv("UNIPRESS_DB"); v != "" {
		opts.DBPath = v
	}
	return opts
}

// NewLogger создает текстовый логгер заданного уровня
func NewLogger(level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// Setup открывает локальное хранилище, восстанавливает сессию и собирает CLI.
// Возвращаемая функция закрывает хранилище.
func Setup(ctx context.Context, opts Options, out iocli.IO, logger *slog.Logger) (*Cli, func() error, error) {
	wsURL, err := RealtimeURL(opts.ServerURL)
	if err != nil {
		return nil, nil, err
	}

	store, err := boltdb.New(ctx, opts.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	client := clientapi.NewClient(opts.ServerURL, logger)
	sessions := session.NewManager(client, store, logger)
	if _, _, err := sessions.Restore(ctx); err != nil {
		logger.Warn("Failed to restore session", "error", err)
	}

	repos := repository.NewHTTP(client, sessions, store)
	transport := func(ctx context.Context) realtime.Transport {
		settings := realtime.DefaultWSSettings(wsURL)
		settings.Token = sessions.Token
		settings.Logger = logger
		return realtime.NewWSTransport(ctx, settings)
	}

	return New(out, sessions, repos, store, transport, logger), store.Close, nil
}

// reportedError ошибка, о которой пользователь уже получил уведомление
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return reportedError{err: err}
}

type app struct {
	io    iocli.IO
	cli   *Cli
	close func() error
	info  BuildInfo
	opts  Options
}

// Execute выполняет команду и возвращает код выхода
func Execute(ctx context.Context, info BuildInfo, out iocli.IO, args []string) int {
	a := &app{io: out, info: info, opts: DefaultOptions()}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(os.Stderr)

	err := root.ExecuteContext(ctx)
	if a.close != nil {
		if cerr := a.close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "Failed to close database: %v\n", cerr)
		}
	}
	if err == nil {
		return 0
	}

	var rep reportedError
	if !errors.As(err, &rep) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return 1
}

// NewRootCommand дерево команд без запуска; используется в тестах и для генерации документации
func NewRootCommand(info BuildInfo, out iocli.IO) *cobra.Command {
	a := &app{io: out, info: info, opts: DefaultOptions()}
	return a.rootCommand()
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.cli != nil {
		return nil
	}
	logger, err := NewLogger(a.opts.LogLevel, os.Stderr)
	if err != nil {
		return err
	}
	c, closeFn, err := Setup(cmd.Context(), a.opts, a.io, logger)
	if err != nil {
		return err
	}
	a.cli = c
	a.close = closeFn
	return nil
}

// run оборачивает метод CLI в RunE
func (a *app) run(fn func(ctx context.Context, c *Cli, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return fn(cmd.Context(), a.cli, args)
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "unipress",
		Short: "Command line client for the unipress news portal",
		Long: `unipress reads and discusses news articles from the terminal.

Comments, reactions and bookmarks are applied locally right away and
rolled back if the server rejects them.`,
		Version:           fmt.Sprintf("%s (built %s, commit %s)", a.info.Version, a.info.BuildDate, a.info.GitCommit),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.ServerURL, "server", a.opts.ServerURL, "Server URL (env UNIPRESS_SERVER)")
	flags.StringVar(&a.opts.DBPath, "db", a.opts.DBPath, "Path to local database (env UNIPRESS_DB)")
	flags.StringVar(&a.opts.LogLevel, "log-level", a.opts.LogLevel, "Log level: debug, info, warn, error")

	root.AddCommand(a.authCommands()...)
	root.AddCommand(
		a.articlesCommand(),
		a.commentsCommand(),
		a.reactionsCommand(),
		a.reactCommand(),
		a.bookmarksCommand(),
		a.adminCommand(),
		a.watchCommand(),
	)
	return root
}

func (a *app) authCommands() []*cobra.Command {
	return []*cobra.Command{
		{
			Use:   "register",
			Short: "Register a new account",
			Args:  cobra.NoArgs,
			RunE: a.run(func(ctx context.Context, c *Cli, _ []string) error {
				return c.runRegister(ctx)
			}),
		},
		{
			Use:   "login",
			Short: "Login to the server",
			Args:  cobra.NoArgs,
			RunE: a.run(func(ctx context.Context, c *Cli, _ []string) error {
				return c.runLogin(ctx)
			}),
		},
		{
			Use:   "logout",
			Short: "Logout and remove the local session",
			Args:  cobra.NoArgs,
			RunE: a.run(func(ctx context.Context, c *Cli, _ []string) error {
				return c.runLogout(ctx)
			}),
		},
		{
			Use:   "status",
			Short: "Show authentication status",
			Args:  cobra.NoArgs,
			RunE: a.run(func(ctx context.Context, c *Cli, _ []string) error {
				return c.runStatus(ctx)
			}),
		},
	}
}

func (a *app) articlesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "articles",
		Short: "Browse and edit articles",
	}

	var (
		status   string
		author   string
		page     int
		pageSize int
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List articles",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runArticlesList(ctx, repository.ListArticlesParams{
				Status:   models.ArticleStatus(status),
				AuthorID: author,
				Page:     page,
				PageSize: pageSize,
			})
		}),
	}
	list.Flags().StringVar(&status, "status", string(models.ArticlePublished), "Article status: draft, pending, published, archived, rejected")
	list.Flags().StringVar(&author, "author", "", "Only articles of this author")
	list.Flags().IntVar(&page, "page", 1, "Page number")
	list.Flags().IntVar(&pageSize, "page-size", 20, "Articles per page")

	cmd.AddCommand(
		list,
		&cobra.Command{
			Use:   "show <id-or-slug>",
			Short: "Show an article",
			Args:  cobra.ExactArgs(1),
			RunE: a.run(func(ctx context.Context, c *Cli, args []string) error {
				return c.runArticleShow(ctx, args[0])
			}),
		},
		&cobra.Command{
			Use:   "create",
			Short: "Write a new article draft",
			Args:  cobra.NoArgs,
			RunE: a.run(func(ctx context.Context, c *Cli, _ []string) error {
				return c.runArticleCreate(ctx)
			}),
		},
		&cobra.Command{
			Use:   "edit <id>",
			Short: "Edit an article",
			Args:  cobra.ExactArgs(1),
			RunE: a.run(func(ctx context.Context, c *Cli, args []string) error {
				return c.runArticleEdit(ctx, args[0])
			}),
		},
		&cobra.Command{
			Use:   "status <id> <status>",
			Short: "Change article status (submit, publish, reject, archive)",
			Args:  cobra.ExactArgs(2),
			RunE: a.run(func(ctx context.Context, c *Cli, args []string) error {
				return c.runArticleStatus(ctx, args[0], models.ArticleStatus(args[1]))
			}),
		},
		&cobra.Command{
			Use:   "share <id>",
			Short: "Show the link preview metadata",
			Args:  cobra.ExactArgs(1),
			RunE: a.run(func(ctx context.Context, c *Cli, args []string) error {
				return c.runArticleShare(ctx, args[0])
			}),
		},
	)
	return cmd
}

func (a *app) commentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comments",
		Short: "Read and write comments",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list <article-id>",
			Short: "Show the discussion of an article",
			Args:  cobra.ExactArgs(1),
			RunE: a.run(func(ctx context.Context, c *Cli, args []string) error {
				return c.runCommentsList(ctx, args[0])
			}),
		},
		&cobra.Command{
			Use:   "post <article-id> [text...]",
			Short: "Post a comment",
			Args:  cobra.MinimumNArgs(1),
			RunE: a.run(func(ctx context.Context, c *Cli, args []string) error {
				return c.runCommentPost(ctx, args[0], "", args[1:])
			}),
		},
		&cobra.Command{
			Use:   "reply <article-id> <comment-id> [text...]",
			Short: "Reply to a comment",
			Args:  cobra.MinimumNArgs(2),
			RunE: a.run(func(ctx context.Context, c *Cli, args []string) error {
				return c.runCommentPost(ctx, args[0], args[1], args[2:])
			}),
		},
		&cobra.Command{
			Use:   "delete <article-id> <comment-id>",
			Short: "Delete a comment",
			Args:  cobra.ExactArgs(2),
			RunE: a.run(func(ctx context.Context, c *Cli, args []string) error {
				return c.runCommentDelete(ctx, args[0], args[1])
			}),
		},
	)
	return cmd
}

func (a *app) reactionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reactions <article-id>",
		Short: "Show reaction counters of an article",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, c *Cli, args []string) error {
			return c.runReactions(ctx, args[0])
		}),
	}
}

func (a *app) reactCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "react <article-id> <like|love|insightful|celebrate>",
		Short: "Toggle your reaction on an article",
		Args:  cobra.ExactArgs(2),
		RunE: a.run(func(ctx context.Context, c *Cli, args []string) error {
			return c.runReact(ctx, args[0], models.ReactionKind(args[1]))
		}),
	}
}

func (a *app) bookmarksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookmarks",
		Short: "Manage your bookmarks",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List bookmarked articles",
			Args:  cobra.NoArgs,
			RunE: a.run(func(ctx context.Context, c *Cli, _ []string) error {
				return c.runBookmarksList(ctx)
			}),
		},
		&cobra.Command{
			Use:   "toggle <article-id>",
			Short: "Bookmark an article or remove the bookmark",
			Args:  cobra.ExactArgs(1),
			RunE: a.run(func(ctx context.Context, c *Cli, args []string) error {
				return c.runBookmarkToggle(ctx, args[0])
			}),
		},
	)
	return cmd
}

func (a *app) adminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Site administration",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "role <user-id> <role>",
			Short: "Change user role",
			Args:  cobra.ExactArgs(2),
			RunE: a.run(func(ctx context.Context, c *Cli, args []string) error {
				return c.runAdminRole(ctx, args[0], models.Role(args[1]))
			}),
		},
		&cobra.Command{
			Use:   "settings [key=value...]",
			Short: "Show or change site settings",
			RunE: a.run(func(ctx context.Context, c *Cli, args []string) error {
				return c.runAdminSettings(ctx, args)
			}),
		},
		&cobra.Command{
			Use:   "moderation",
			Short: "Show articles waiting for review",
			Args:  cobra.NoArgs,
			RunE: a.run(func(ctx context.Context, c *Cli, _ []string) error {
				return c.runAdminModeration(ctx)
			}),
		},
	)
	return cmd
}

func (a *app) watchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <article-id>",
		Short: "Follow comments and reactions of an article live",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, c *Cli, args []string) error {
			return c.runWatch(ctx, args[0])
		}),
	}
}

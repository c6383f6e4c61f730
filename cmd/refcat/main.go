package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jorge-barreto/refcat/internal/catalog"
	"github.com/jorge-barreto/refcat/internal/config"
	"github.com/jorge-barreto/refcat/internal/content"
	"github.com/jorge-barreto/refcat/internal/logging"
	"github.com/jorge-barreto/refcat/internal/render"
	"github.com/jorge-barreto/refcat/internal/scaffold"
	"github.com/jorge-barreto/refcat/internal/server"
	"github.com/jorge-barreto/refcat/internal/ux"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:        "refcat",
		Usage:       "Browse a catalog of language reference topics",
		Description: "Run 'refcat list' to see every topic and 'refcat show <id>' to read one.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "catalog",
				Usage:   "catalog directory (overrides the config file and the built-in catalog)",
				Sources: cli.EnvVars("REFCAT_CATALOG"),
			},
		},
		Commands: []*cli.Command{
			listCmd(),
			showCmd(),
			searchCmd(),
			categoriesCmd(),
			checkCmd(),
			initCmd(),
			serveCmd(),
		},
	}
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List topics in catalog order",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Usage: "only topics in this category (name or slug)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, cat, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			var category catalog.Category
			if raw := cmd.String("category"); raw != "" {
				if category, err = catalog.ParseCategory(raw); err != nil {
					return fmt.Errorf("%w — run 'refcat categories' to list them", err)
				}
			}

			w := cmd.Root().Writer
			fmt.Fprintln(w)
			if ux.TopicList(w, cat.List(category)) == 0 {
				ux.NoMatches(w, fmt.Sprintf("category %q", category))
				return nil
			}
			ux.Hint(w, "Run 'refcat show <id>' to read a topic.")
			return nil
		},
	}
}

func showCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print a topic",
		ArgsUsage: "<id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id := cmd.Args().First()
			if id == "" {
				return fmt.Errorf("topic id argument is required")
			}
			_, cat, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			t, err := cat.Get(id)
			if err != nil {
				return fmt.Errorf("%w — run 'refcat list' to list available topics", err)
			}
			fmt.Fprint(cmd.Root().Writer, render.Topic(t))
			return nil
		},
	}
}

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Find topics by id, title, summary or keyword",
		ArgsUsage: "<term>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			term := strings.TrimSpace(cmd.Args().First())
			if term == "" {
				return fmt.Errorf("search term argument is required")
			}
			_, cat, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			w := cmd.Root().Writer
			fmt.Fprintln(w)
			if ux.TopicList(w, cat.Search(term)) == 0 {
				ux.NoMatches(w, fmt.Sprintf("%q", term))
			}
			return nil
		},
	}
}

func categoriesCmd() *cli.Command {
	return &cli.Command{
		Name:  "categories",
		Usage: "List categories with their topic counts",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, cat, err := loadCatalog(cmd)
			if err != nil {
				return err
			}
			w := cmd.Root().Writer
			fmt.Fprintln(w)
			ux.CategoryCounts(w, cat)
			ux.Hint(w, "Run 'refcat list --category <slug>' to list a category.")
			return nil
		},
	}
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Validate a catalog directory",
		ArgsUsage: "[dir]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var (
				cat    *catalog.Catalog
				source string
				err    error
			)
			if dir := cmd.Args().First(); dir != "" {
				source = dir
				cat, err = content.LoadDir(dir)
			} else {
				source, cat, err = loadCatalog(cmd)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.Root().Writer, "%s✓%s %s: %d topics\n", ux.Green, ux.Reset, source, cat.Len())
			return nil
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a .refcat.yaml and a starter catalog directory",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(dir)
		},
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the catalog over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "listen address (default from config)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}
			source, cat, err := loadCatalog(cmd)
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.Log.Level)
			if err != nil {
				return err
			}
			defer logger.Sync()

			addr := cfg.Server.Addr
			if a := cmd.String("addr"); a != "" {
				addr = a
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("catalog loaded", zap.String("source", source), zap.Int("topics", cat.Len()))
			srv := server.New(cat, logger, server.Options{
				AllowedOrigins: cfg.Server.AllowedOrigins,
				ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
			})
			return srv.ListenAndServe(ctx, addr)
		},
	}
}

func loadConfig() (*config.Config, string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, "", err
	}
	cfg, root, err := config.LoadFrom(dir)
	if err != nil {
		return nil, "", fmt.Errorf("loading config: %w", err)
	}
	return cfg, root, nil
}

// loadCatalog builds the catalog from --catalog, then the config file, then
// the built-in content. It also returns a description of the source.
func loadCatalog(cmd *cli.Command) (string, *catalog.Catalog, error) {
	if dir := cmd.String("catalog"); dir != "" {
		cat, err := content.LoadDir(dir)
		if err != nil {
			return "", nil, fmt.Errorf("loading catalog: %w", err)
		}
		return dir, cat, nil
	}

	cfg, root, err := loadConfig()
	if err != nil {
		return "", nil, err
	}
	if dir := cfg.CatalogDir(root); dir != "" {
		cat, err := content.LoadDir(dir)
		if err != nil {
			return "", nil, fmt.Errorf("loading catalog: %w", err)
		}
		return dir, cat, nil
	}

	cat, err := content.Default()
	if err != nil {
		return "", nil, fmt.Errorf("loading built-in catalog: %w", err)
	}
	return "built-in", cat, nil
}

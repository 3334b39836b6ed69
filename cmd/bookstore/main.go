package main

import (
	"fmt"
	"io"
	"os"

	"bookstore/internal/catalog"
	"bookstore/internal/config"
	"bookstore/internal/events"
	"bookstore/internal/platform/logger"
	"bookstore/internal/user"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

type app struct {
	books    *catalog.Service
	accounts *user.Service
}

func newApp(cfg *config.Config, log zerolog.Logger) (*app, error) {
	pub := events.NewLogPublisher(log)

	books, err := catalog.NewService(pub, log, catalog.Config{SearchCacheSize: cfg.SearchCacheSize})
	if err != nil {
		return nil, err
	}

	if cfg.SeedFile != "" {
		if err := seedCatalog(books, cfg.SeedFile); err != nil {
			return nil, err
		}
		log.Info().Str("seed_file", cfg.SeedFile).Int("books", books.Len()).Msg("catalog seeded")
	}

	return &app{
		books:    books,
		accounts: user.NewService(books, pub, log),
	}, nil
}

func seedCatalog(books *catalog.Service, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	seed, err := catalog.LoadSeed(f)
	if err != nil {
		return err
	}
	_, err = books.Seed(seed)
	return err
}

func printBooks(w io.Writer, books []catalog.Book) {
	if len(books) == 0 {
		fmt.Fprintln(w, "no books")
		return
	}
	for _, b := range books {
		fmt.Fprintln(w, b.String())
	}
}

func newCLI() *cli.App {
	var a *app

	return &cli.App{
		Name:  "bookstore",
		Usage: "in-memory book catalog and account registry",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "seed",
				Usage: "YAML catalog fixture (overrides BOOKSTORE_SEED_FILE)",
			},
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if c.IsSet("seed") {
				cfg.SeedFile = c.String("seed")
			}
			log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
			a, err = newApp(cfg, log)
			return err
		},
		Commands: []*cli.Command{
			{
				Name:  "catalog",
				Usage: "inspect the seeded catalog",
				Subcommands: []*cli.Command{
					{
						Name:  "list",
						Usage: "print every book",
						Action: func(c *cli.Context) error {
							printBooks(c.App.Writer, a.books.Books())
							return nil
						},
					},
					{
						Name:      "search",
						Usage:     "print books whose title contains KEYWORD",
						ArgsUsage: "KEYWORD",
						Action: func(c *cli.Context) error {
							printBooks(c.App.Writer, a.books.SearchBook(c.Args().First()))
							return nil
						},
					},
				},
			},
			{
				Name:  "demo",
				Usage: "run a scripted register/purchase/review session",
				Action: func(c *cli.Context) error {
					return runDemo(c.App.Writer, a.books, a.accounts)
				},
			},
		},
	}
}

func main() {
	if err := newCLI().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

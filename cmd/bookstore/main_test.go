package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bookstore/internal/catalog"
	"bookstore/internal/config"
	"bookstore/internal/user"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemo(t *testing.T) {
	books, err := catalog.NewService(nil, zerolog.Nop(), catalog.Config{})
	require.NoError(t, err)
	accounts := user.NewService(books, nil, zerolog.Nop())

	var out bytes.Buffer
	require.NoError(t, runDemo(&out, books, accounts))

	want := []string{
		"register JohnDoe: true",
		"register JohnDoe again: false",
		"login with wrong password: false",
		"login: true",
		"review before purchase: false",
		`purchase "Unknown" by Unknown (Unknown) $0.00: false`,
		`purchase "1984" by George Orwell (Dystopian) $9.99: true`,
		"review after purchase: true",
		"update email to invalidemail: false",
		"rename to JDoe: true",
		`JDoe owns 1 book(s); reviews for "1984": ["Great book!"]`,
	}
	assert.Equal(t, want, strings.Split(strings.TrimSpace(out.String()), "\n"))

	_, found := accounts.Lookup("JDoe")
	assert.True(t, found)
}

func TestNewApp_Seed(t *testing.T) {
	t.Run("fixture", func(t *testing.T) {
		cfg := &config.Config{SearchCacheSize: 4, SeedFile: filepath.Join("..", "..", "testdata", "books.yaml")}

		a, err := newApp(cfg, zerolog.Nop())
		require.NoError(t, err)
		assert.Equal(t, 5, a.books.Len())
		assert.Len(t, a.books.SearchBook("Darkness"), 1)
	})

	t.Run("no seed", func(t *testing.T) {
		a, err := newApp(&config.Config{}, zerolog.Nop())
		require.NoError(t, err)
		assert.Equal(t, 0, a.books.Len())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := newApp(&config.Config{SeedFile: filepath.Join(t.TempDir(), "nope.yaml")}, zerolog.Nop())
		assert.ErrorContains(t, err, "open seed file")
	})

	t.Run("bad fixture", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("books:\n  - price: 3\n"), 0o644))

		_, err := newApp(&config.Config{SeedFile: path}, zerolog.Nop())
		assert.ErrorContains(t, err, "seed entry 0")
	})
}

func TestCLI_CatalogSearch(t *testing.T) {
	t.Setenv("BOOKSTORE_LOG_LEVEL", "error")
	seed := filepath.Join("..", "..", "testdata", "books.yaml")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "search hit", args: []string{"catalog", "search", "1984"}, want: `"1984" by George Orwell (Dystopian) $9.99` + "\n"},
		{name: "search miss", args: []string{"catalog", "search", "NonExistentBook"}, want: "no books\n"},
		{name: "list", args: []string{"catalog", "list"}, want: `"A Wizard of Earthsea" by Ursula K. Le Guin (Fantasy) $8.99` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			app := newCLI()
			app.Writer = &out

			args := append([]string{"bookstore", "--seed", seed}, tt.args...)
			require.NoError(t, app.Run(args))
			assert.True(t, strings.HasSuffix(out.String(), tt.want), out.String())
		})
	}
}

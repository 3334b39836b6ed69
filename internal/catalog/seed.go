package catalog

import (
	"errors"
	"fmt"
	"io"

	"bookstore/internal/platform/validate"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Books []seedEntry `yaml:"books"`
}

type seedEntry struct {
	Title  string  `yaml:"title" validate:"required"`
	Author string  `yaml:"author"`
	Genre  string  `yaml:"genre"`
	Price  float64 `yaml:"price" validate:"gte=0"`
}

// LoadSeed decodes a YAML catalog fixture of the form
//
//	books:
//	  - title: "1984"
//	    author: George Orwell
//	    genre: Dystopian
//	    price: 9.99
func LoadSeed(r io.Reader) ([]Book, error) {
	var f seedFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return []Book{}, nil
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	books := make([]Book, 0, len(f.Books))
	for i, e := range f.Books {
		if err := validate.Join(validate.Struct(e)); err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i, err)
		}
		b, err := NewBook(e.Title, e.Author, e.Genre, e.Price)
		if err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i, err)
		}
		books = append(books, b)
	}
	return books, nil
}

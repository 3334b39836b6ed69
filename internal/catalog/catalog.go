package catalog

import (
	"errors"
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

var (
	// ErrInvalidArgument marks programming misuse, such as passing an absent
	// book. It is never returned for ordinary business outcomes.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrNilBook      = fmt.Errorf("%w: book cannot be empty", ErrInvalidArgument)
	ErrInvalidPrice = errors.New("price must be a finite, non-negative amount")

	// ErrNegativePrice is returned for a hand-built Book whose PriceCents is
	// below zero. It matches both ErrInvalidArgument and ErrInvalidPrice.
	ErrNegativePrice = fmt.Errorf("%w: %w", ErrInvalidArgument, ErrInvalidPrice)
)

// Book is a catalog entry. Two books are the same entity when all four fields
// are equal, so Book is used directly as a map key. The zero Book stands for
// an absent book.
type Book struct {
	Title      string `json:"title"`
	Author     string `json:"author"`
	Genre      string `json:"genre"`
	PriceCents int64  `json:"price_cents"`
}

// NewBook builds a Book, rounding price to whole cents. Prices whose cent
// amount does not fit in an int64 are rejected.
func NewBook(title, author, genre string, price float64) (Book, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return Book{}, ErrInvalidPrice
	}
	cents := math.Round(price * 100)
	if cents >= math.MaxInt64 {
		return Book{}, ErrInvalidPrice
	}
	return Book{
		Title:      title,
		Author:     author,
		Genre:      genre,
		PriceCents: int64(cents),
	}, nil
}

// Validate reports whether b may be stored or traded: it must not be the
// zero Book and its price must not be negative.
func (b Book) Validate() error {
	if b.IsZero() {
		return ErrNilBook
	}
	if b.PriceCents < 0 {
		return ErrNegativePrice
	}
	return nil
}

func (b Book) Price() float64 {
	return float64(b.PriceCents) / 100
}

func (b Book) IsZero() bool {
	return b == Book{}
}

func (b Book) String() string {
	return fmt.Sprintf("%q by %s (%s) $%s", b.Title, b.Author, b.Genre, humanize.FormatFloat("#,###.##", b.Price()))
}

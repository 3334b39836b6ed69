package testutil

import (
	"bookstore/internal/catalog"
)

// TestBook is the book most tests add to a fresh catalog.
var TestBook = MustBook("1984", "George Orwell", "Dystopian", 9.99)

// NewBook is a second, distinct book.
var NewBook = MustBook("New Book", "New Author", "Genre", 19.99)

// UnknownBook is never added to any catalog.
var UnknownBook = MustBook("Unknown", "Unknown", "Unknown", 0.0)

const (
	TestUsername = "JohnDoe"
	TestPassword = "password"
	TestEmail    = "johndoe@example.com"
)

// MustBook builds a book or panics; for fixtures only.
func MustBook(title, author, genre string, price float64) catalog.Book {
	b, err := catalog.NewBook(title, author, genre, price)
	if err != nil {
		panic(err)
	}
	return b
}

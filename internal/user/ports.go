package user

import (
	"bookstore/internal/catalog"
)

// Catalog is the view of the book catalog that purchases are checked against.
type Catalog interface {
	Contains(b catalog.Book) bool
}

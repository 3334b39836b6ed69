package user

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"bookstore/internal/catalog"
)

// ErrInvalidArgument is shared with the catalog package so callers can test
// for misuse with a single errors.Is.
var ErrInvalidArgument = catalog.ErrInvalidArgument

var (
	ErrNilUser       = fmt.Errorf("%w: user cannot be nil", ErrInvalidArgument)
	ErrEmptyUsername = fmt.Errorf("%w: username cannot be empty", ErrInvalidArgument)
	ErrEmptyReview   = fmt.Errorf("%w: review cannot be empty", ErrInvalidArgument)
)

// User is an account holder. A User becomes known to a Service only after
// RegisterUser succeeds; its fields change only through the Service. The
// zero User is usable and has an empty username.
type User struct {
	mu        sync.RWMutex
	username  string
	password  string
	email     string
	purchased map[catalog.Book]struct{}
	reviews   map[catalog.Book][]string
}

func NewUser(username, password, email string) *User {
	return &User{
		username:  username,
		password:  password,
		email:     email,
		purchased: make(map[catalog.Book]struct{}),
		reviews:   make(map[catalog.Book][]string),
	}
}

func (u *User) Username() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.username
}

func (u *User) Email() string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.email
}

func (u *User) HasPurchased(b catalog.Book) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	_, ok := u.purchased[b]
	return ok
}

// PurchasedBooks returns the purchased set ordered by title, author, genre
// and price.
func (u *User) PurchasedBooks() []catalog.Book {
	u.mu.RLock()
	out := make([]catalog.Book, 0, len(u.purchased))
	for b := range u.purchased {
		out = append(out, b)
	}
	u.mu.RUnlock()

	slices.SortFunc(out, func(a, b catalog.Book) int {
		return cmp.Or(
			cmp.Compare(a.Title, b.Title),
			cmp.Compare(a.Author, b.Author),
			cmp.Compare(a.Genre, b.Genre),
			cmp.Compare(a.PriceCents, b.PriceCents),
		)
	})
	return out
}

// Reviews returns the review texts recorded for b, oldest first.
func (u *User) Reviews(b catalog.Book) []string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return slices.Clone(u.reviews[b])
}

func (u *User) checkPassword(password string) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.password == password
}

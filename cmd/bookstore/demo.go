package main

import (
	"fmt"
	"io"

	"bookstore/internal/catalog"
	"bookstore/internal/user"
)

// runDemo walks one customer through the account lifecycle against the
// given catalog, printing each outcome. The first catalog book is the one
// purchased; an empty catalog gets "1984" added first.
func runDemo(w io.Writer, books *catalog.Service, accounts *user.Service) error {
	all := books.Books()
	if len(all) == 0 {
		b, err := catalog.NewBook("1984", "George Orwell", "Dystopian", 9.99)
		if err != nil {
			return err
		}
		if _, err := books.AddBook(b); err != nil {
			return err
		}
		all = []catalog.Book{b}
	}
	book := all[0]
	missing, err := catalog.NewBook("Unknown", "Unknown", "Unknown", 0)
	if err != nil {
		return err
	}

	john := user.NewUser("JohnDoe", "password", "johndoe@example.com")

	ok, err := accounts.RegisterUser(john)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "register JohnDoe: %t\n", ok)

	ok, err = accounts.RegisterUser(user.NewUser("JohnDoe", "other", "other@example.com"))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "register JohnDoe again: %t\n", ok)

	u, err := accounts.LoginUser("JohnDoe", "wrongpassword")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "login with wrong password: %t\n", u != nil)

	u, err = accounts.LoginUser("JohnDoe", "password")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "login: %t\n", u != nil)

	ok, err = accounts.AddBookReview(john, book, "Great book!")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "review before purchase: %t\n", ok)

	ok, err = accounts.PurchaseBook(john, missing)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "purchase %s: %t\n", missing, ok)

	ok, err = accounts.PurchaseBook(john, book)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "purchase %s: %t\n", book, ok)

	ok, err = accounts.AddBookReview(john, book, "Great book!")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "review after purchase: %t\n", ok)

	ok, err = accounts.UpdateUserProfile(john, "JohnDoe", "password", "invalidemail")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "update email to invalidemail: %t\n", ok)

	ok, err = accounts.UpdateUserProfile(john, "JDoe", "newpassword", "jdoe@example.com")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "rename to JDoe: %t\n", ok)

	fmt.Fprintf(w, "%s owns %d book(s); reviews for %q: %q\n",
		john.Username(), len(john.PurchasedBooks()), book.Title, john.Reviews(book))
	return nil
}

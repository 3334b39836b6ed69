package user

import (
	"sync"

	"bookstore/internal/catalog"
	"bookstore/internal/events"
	"bookstore/internal/platform/validate"

	"github.com/rs/zerolog"
)

type profileUpdate struct {
	Username string `validate:"required"`
	Email    string `validate:"required,email_shape"`
}

// Service is the account registry, keyed by username. Every operation is
// serialised on a single mutex; the registry lock is always taken before a
// user's own lock.
type Service struct {
	mu     sync.Mutex
	users  map[string]*User
	books  Catalog
	events events.Publisher
	log    zerolog.Logger
}

func NewService(books Catalog, pub events.Publisher, log zerolog.Logger) *Service {
	if pub == nil {
		pub = events.Nop{}
	}
	return &Service{
		users:  make(map[string]*User),
		books:  books,
		events: pub,
		log:    log.With().Str("component", "accounts").Logger(),
	}
}

// RegisterUser adds u to the registry. It reports false for an empty or
// already registered username.
func (s *Service) RegisterUser(u *User) (bool, error) {
	if u == nil {
		return false, ErrNilUser
	}
	s.mu.Lock()
	username := u.Username()
	if username == "" {
		s.mu.Unlock()
		s.log.Debug().Msg("register rejected: empty username")
		return false, nil
	}
	if _, ok := s.users[username]; ok {
		s.mu.Unlock()
		s.log.Debug().Str("username", username).Msg("register rejected: username taken")
		return false, nil
	}
	s.users[username] = u
	s.mu.Unlock()

	s.log.Info().Str("username", username).Msg("user registered")
	s.publish(events.UserRegistered, map[string]any{"username": username})
	return true, nil
}

// LoginUser returns the registered user whose username and password match
// exactly, or nil when either does not.
func (s *Service) LoginUser(username, password string) (*User, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}

	s.mu.Lock()
	u, ok := s.users[username]
	s.mu.Unlock()

	if !ok || !u.checkPassword(password) {
		s.log.Debug().Str("username", username).Msg("login failed")
		return nil, nil
	}
	return u, nil
}

// UpdateUserProfile replaces the username, password and email of u. It
// reports false when newUsername is empty or held by a different registered
// user, or when newEmail is not shaped like local@domain.tld. Either all
// three fields change or none do.
func (s *Service) UpdateUserProfile(u *User, newUsername, newPassword, newEmail string) (bool, error) {
	if u == nil {
		return false, ErrNilUser
	}
	if errs := validate.Struct(profileUpdate{Username: newUsername, Email: newEmail}); len(errs) > 0 {
		s.log.Debug().Err(validate.Join(errs)).Msg("profile update rejected")
		return false, nil
	}

	s.mu.Lock()
	if holder, ok := s.users[newUsername]; ok && holder != u {
		s.mu.Unlock()
		s.log.Debug().Str("username", newUsername).Msg("profile update rejected: username taken")
		return false, nil
	}

	u.mu.Lock()
	oldUsername := u.username
	registered := s.users[oldUsername] == u
	u.username = newUsername
	u.password = newPassword
	u.email = newEmail
	u.mu.Unlock()

	if registered && oldUsername != newUsername {
		delete(s.users, oldUsername)
		s.users[newUsername] = u
	}
	s.mu.Unlock()

	s.log.Info().Str("old_username", oldUsername).Str("username", newUsername).Msg("profile updated")
	s.publish(events.ProfileUpdated, map[string]any{"old_username": oldUsername, "username": newUsername})
	return true, nil
}

// PurchaseBook records b against u. It reports false when b is not in the
// catalog at call time.
func (s *Service) PurchaseBook(u *User, b catalog.Book) (bool, error) {
	if u == nil {
		return false, ErrNilUser
	}
	if err := b.Validate(); err != nil {
		return false, err
	}

	s.mu.Lock()
	if !s.books.Contains(b) {
		s.mu.Unlock()
		s.log.Debug().Str("title", b.Title).Msg("purchase rejected: book not in catalog")
		return false, nil
	}
	u.mu.Lock()
	if u.purchased == nil {
		u.purchased = make(map[catalog.Book]struct{})
	}
	u.purchased[b] = struct{}{}
	username := u.username
	u.mu.Unlock()
	s.mu.Unlock()

	s.log.Info().Str("username", username).Str("title", b.Title).Msg("book purchased")
	s.publish(events.BookPurchased, map[string]any{"username": username, "book": b})
	return true, nil
}

// AddBookReview appends text to the reviews u has written for b. It reports
// false when u has not purchased b. An empty text is treated as a missing
// argument and returns ErrEmptyReview.
func (s *Service) AddBookReview(u *User, b catalog.Book, text string) (bool, error) {
	if u == nil {
		return false, ErrNilUser
	}
	if err := b.Validate(); err != nil {
		return false, err
	}
	if text == "" {
		return false, ErrEmptyReview
	}

	s.mu.Lock()
	u.mu.Lock()
	username := u.username
	if _, ok := u.purchased[b]; !ok {
		u.mu.Unlock()
		s.mu.Unlock()
		s.log.Debug().Str("username", username).Str("title", b.Title).Msg("review rejected: book not purchased")
		return false, nil
	}
	if u.reviews == nil {
		u.reviews = make(map[catalog.Book][]string)
	}
	u.reviews[b] = append(u.reviews[b], text)
	u.mu.Unlock()
	s.mu.Unlock()

	s.log.Info().Str("username", username).Str("title", b.Title).Msg("review added")
	s.publish(events.ReviewAdded, map[string]any{"username": username, "book": b})
	return true, nil
}

func (s *Service) Lookup(username string) (*User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	return u, ok
}

func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

func (s *Service) publish(eventType string, payload any) {
	if err := s.events.Publish(events.New(eventType, payload)); err != nil {
		s.log.Warn().Err(err).Str("type", eventType).Msg("publish event failed")
	}
}

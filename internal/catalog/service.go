package catalog

import (
	"container/list"
	"fmt"
	"slices"
	"strings"
	"sync"

	"bookstore/internal/events"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
)

type Config struct {
	// SearchCacheSize is the number of distinct keywords whose results are
	// memoised. Zero disables the cache.
	SearchCacheSize int
}

// Service owns the set of known books. It is safe for concurrent use.
type Service struct {
	mu    sync.RWMutex
	order *list.List
	index map[Book]*list.Element

	cache  *lru.Cache[string, []Book]
	events events.Publisher
	log    zerolog.Logger
}

func NewService(pub events.Publisher, log zerolog.Logger, cfg Config) (*Service, error) {
	if pub == nil {
		pub = events.Nop{}
	}
	s := &Service{
		order:  list.New(),
		index:  make(map[Book]*list.Element),
		events: pub,
		log:    log.With().Str("component", "catalog").Logger(),
	}
	if cfg.SearchCacheSize > 0 {
		cache, err := lru.New[string, []Book](cfg.SearchCacheSize)
		if err != nil {
			return nil, fmt.Errorf("search cache: %w", err)
		}
		s.cache = cache
	}
	return s, nil
}

// AddBook inserts b unless an equal book is already present. A zero or
// negative-price book is rejected with an error wrapping ErrInvalidArgument.
func (s *Service) AddBook(b Book) (bool, error) {
	if err := b.Validate(); err != nil {
		return false, err
	}

	s.mu.Lock()
	if _, ok := s.index[b]; ok {
		s.mu.Unlock()
		s.log.Debug().Str("title", b.Title).Msg("book already in catalog")
		return false, nil
	}
	s.index[b] = s.order.PushBack(b)
	s.purgeCache()
	s.mu.Unlock()

	s.log.Info().Str("title", b.Title).Str("author", b.Author).Msg("book added")
	s.publish(events.BookAdded, b)
	return true, nil
}

// RemoveBook deletes b. It reports false when no equal book is present.
func (s *Service) RemoveBook(b Book) (bool, error) {
	if err := b.Validate(); err != nil {
		return false, err
	}

	s.mu.Lock()
	el, ok := s.index[b]
	if !ok {
		s.mu.Unlock()
		s.log.Debug().Str("title", b.Title).Msg("book not in catalog")
		return false, nil
	}
	s.order.Remove(el)
	delete(s.index, b)
	s.purgeCache()
	s.mu.Unlock()

	s.log.Info().Str("title", b.Title).Str("author", b.Author).Msg("book removed")
	s.publish(events.BookRemoved, b)
	return true, nil
}

// SearchBook returns every book whose title contains keyword, in insertion
// order. Matching is case-sensitive; an empty keyword matches every title.
// The result is never nil.
func (s *Service) SearchBook(keyword string) []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cache != nil {
		if hit, ok := s.cache.Get(keyword); ok {
			return slices.Clone(hit)
		}
	}

	out := make([]Book, 0)
	for el := s.order.Front(); el != nil; el = el.Next() {
		b := el.Value.(Book)
		if strings.Contains(b.Title, keyword) {
			out = append(out, b)
		}
	}

	if s.cache != nil {
		// Added under the read lock so a concurrent mutation cannot purge
		// before a stale result lands.
		s.cache.Add(keyword, out)
		return slices.Clone(out)
	}
	return out
}

func (s *Service) Contains(b Book) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[b]
	return ok
}

func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.index)
}

// Books returns a snapshot of the catalog in insertion order.
func (s *Service) Books() []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Book, 0, len(s.index))
	for el := s.order.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(Book))
	}
	return out
}

// Seed adds every book and returns how many were new.
func (s *Service) Seed(books []Book) (int, error) {
	added := 0
	for _, b := range books {
		ok, err := s.AddBook(b)
		if err != nil {
			return added, err
		}
		if ok {
			added++
		}
	}
	return added, nil
}

// purgeCache must be called with mu held for writing.
func (s *Service) purgeCache() {
	if s.cache != nil {
		s.cache.Purge()
	}
}

func (s *Service) publish(eventType string, b Book) {
	if err := s.events.Publish(events.New(eventType, b)); err != nil {
		s.log.Warn().Err(err).Str("type", eventType).Msg("publish event failed")
	}
}

package cart

import "sync"

// Store keeps one cart per authenticated user. Carts are never
// persisted; a restart simply starts everyone empty again.
type Store struct {
	mu    sync.Mutex
	carts map[int64]*Cart
}

// NewStore returns an empty cart store.
func NewStore() *Store {
	return &Store{carts: make(map[int64]*Cart)}
}

// With runs fn against the user's cart under the store lock, creating
// the cart on first access. Cart itself is a plain reducer; the store
// serializes concurrent requests of the same user.
func (s *Store) With(userID int64, fn func(*Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[userID]
	if !ok {
		c = New()
		s.carts[userID] = c
	}
	fn(c)
}

// Drop discards the user's cart entirely.
func (s *Store) Drop(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

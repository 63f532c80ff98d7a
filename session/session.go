package session

import (
	"sync"
	"time"

	"github.com/yeremiapane/restaurant-order-panel/cart"
	"github.com/yeremiapane/restaurant-order-panel/models"
)

// Session is the in-memory state of one browser: its cart ledger and the
// product currently open for customization. Sessions never share state;
// each browser composes its own order.
type Session struct {
	ID   string
	Cart *cart.Store

	mu           sync.Mutex
	draftProduct *models.Product
	draft        *cart.Personalization
	lastSeen     time.Time
}

func newSession(id string) *Session {
	return &Session{
		ID:       id,
		Cart:     cart.NewStore(),
		lastSeen: time.Now(),
	}
}

// OpenProduct starts a fresh personalization for a product, discarding
// whatever draft was in progress.
func (s *Session) OpenProduct(product models.Product) *cart.Personalization {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draftProduct = &product
	s.draft = cart.NewPersonalization(&product)
	return s.draft
}

// Draft returns the product open for customization and its
// personalization, or false when nothing is open.
func (s *Session) Draft() (*models.Product, *cart.Personalization, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return nil, nil, false
	}
	return s.draftProduct, s.draft, true
}

// CloseDraft discards the in-progress personalization (confirm and
// cancel both end here).
func (s *Session) CloseDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draftProduct = nil
	s.draft = nil
}

func (s *Session) touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

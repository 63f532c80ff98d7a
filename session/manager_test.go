package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/restaurant-order-panel/models"
)

func TestSessionsAreIndependent(t *testing.T) {
	m := NewManager(time.Hour)
	defer m.Stop()

	a := m.Create()
	b := m.Create()
	assert.NotEqual(t, a.ID, b.ID)

	product := &models.Product{ID: 1, Name: "Lomo", Price: 20}
	p := a.OpenProduct(*product)
	a.Cart.AddItem(product, p)

	assert.Equal(t, 1, a.Cart.ItemCount())
	assert.Equal(t, 0, b.Cart.ItemCount(), "one session's cart never leaks into another")
}

func TestGetOrCreateResolvesKnownID(t *testing.T) {
	m := NewManager(time.Hour)
	defer m.Stop()

	s := m.Create()
	assert.Same(t, s, m.GetOrCreate(s.ID))

	fresh := m.GetOrCreate("unknown-id")
	assert.NotSame(t, s, fresh)
}

func TestSweepDropsIdleSessions(t *testing.T) {
	m := NewManager(10 * time.Millisecond)
	defer m.Stop()

	s := m.Create()
	assert.Equal(t, 1, m.Count())

	m.sweep(time.Now().Add(time.Minute))
	assert.Equal(t, 0, m.Count())

	_, ok := m.Get(s.ID)
	assert.False(t, ok)
}

func TestDraftLifecycle(t *testing.T) {
	m := NewManager(time.Hour)
	defer m.Stop()
	s := m.Create()

	_, _, ok := s.Draft()
	assert.False(t, ok)

	product := models.Product{ID: 2, Name: "Pizza", Price: 30}
	p := s.OpenProduct(product)
	assert.Equal(t, 1, p.Quantity)

	gotProduct, gotDraft, ok := s.Draft()
	assert.True(t, ok)
	assert.Equal(t, uint(2), gotProduct.ID)
	assert.Same(t, p, gotDraft)

	s.CloseDraft()
	_, _, ok = s.Draft()
	assert.False(t, ok)
}

package cart

import (
	"sync"

	"github.com/yeremiapane/restaurant-order-panel/models"
)

// Line is one committed entry of the order in progress. UnitPrice is
// frozen when the line is created; later catalog price changes never
// touch existing lines.
type Line struct {
	Key             uint            `json:"id"`
	ProductID       uint            `json:"producto_id"`
	Name            string          `json:"nombre"`
	UnitPrice       float64         `json:"precio"`
	Quantity        int             `json:"cantidad"`
	Image           *string         `json:"imagen,omitempty"`
	Personalization Personalization `json:"personalizacion"`
}

// Subtotal is UnitPrice * Quantity, derived on every call.
func (l Line) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Store is the cart ledger for one customer session. Each session owns
// its store; there is no shared process-wide cart state.
type Store struct {
	mu    sync.Mutex
	lines []Line
}

func NewStore() *Store {
	return &Store{}
}

// AddItem folds a confirmed personalization into the ledger: if a line
// with the same identity key exists its quantity grows, otherwise a new
// line is appended with the price resolved now.
func (s *Store) AddItem(product *models.Product, p *Personalization) Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := LineKey(product, p)
	for i := range s.lines {
		if s.lines[i].Key == key {
			s.lines[i].Quantity += p.Quantity
			return s.lines[i]
		}
	}

	line := Line{
		Key:             key,
		ProductID:       product.ID,
		Name:            product.Name,
		UnitPrice:       p.UnitPrice(product),
		Quantity:        p.Quantity,
		Image:           product.Image,
		Personalization: p.clone(),
	}
	s.lines = append(s.lines, line)
	return line
}

// UpdateQuantity sets a line's quantity; zero or less removes the line
// instead of keeping an empty entry.
func (s *Store) UpdateQuantity(key uint, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(key)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].Key == key {
			s.lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes a line; absent keys are a no-op.
func (s *Store) RemoveItem(key uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.lines[:0]
	for _, l := range s.lines {
		if l.Key != key {
			kept = append(kept, l)
		}
	}
	s.lines = kept
}

// Clear empties the ledger (after a confirmed submission or an explicit
// reset).
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Lines returns a copy of the ledger in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total is recomputed from the ledger on every call; it can never drift
// from the lines it is derived from.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

// ItemCount sums quantities across all lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

// Draft materializes the ledger into the backend's order-create shape.
// Only included ingredients travel with each item.
func (s *Store) Draft(customer, notes string) models.OrderDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := models.OrderDraft{
		Customer: customer,
		Notes:    notes,
		StatusID: models.StatusPendingID,
		Items:    models.OrderDraftItems{Create: []models.OrderDraftItem{}},
	}

	for _, l := range s.lines {
		item := models.OrderDraftItem{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal(),
			Ingredients: models.OrderDraftIngredients{
				Create: []models.OrderDraftIngredient{},
			},
		}
		if l.Personalization.Size != nil {
			id := l.Personalization.Size.ID
			item.SizeID = &id
		}
		if l.Personalization.Option != nil {
			id := l.Personalization.Option.ID
			item.OptionID = &id
		}
		for _, ing := range l.Personalization.Ingredients {
			if ing.Included {
				item.Ingredients.Create = append(item.Ingredients.Create,
					models.OrderDraftIngredient{IngredientID: ing.ID})
			}
		}
		draft.Total += item.Subtotal
		draft.Items.Create = append(draft.Items.Create, item)
	}

	return draft
}

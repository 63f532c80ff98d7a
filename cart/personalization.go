package cart

import "github.com/yeremiapane/restaurant-order-panel/models"

// SizeChoice is the size picked for one order line, with the price that
// overrides the product's base price.
type SizeChoice struct {
	ID    uint    `json:"id"`
	Name  string  `json:"nombre"`
	Price float64 `json:"precio"`
}

type OptionChoice struct {
	ID   uint   `json:"id"`
	Name string `json:"nombre"`
}

type IngredientChoice struct {
	ID       uint   `json:"id"`
	Name     string `json:"nombre"`
	Optional bool   `json:"opcional"`
	Included bool   `json:"incluido"`
}

// Personalization is the in-progress customization of one product: it is
// created fresh when a product is opened, mutated by the selection
// endpoints, and folded into a cart line on confirm.
type Personalization struct {
	Quantity    int                `json:"cantidad"`
	Size        *SizeChoice        `json:"tamano,omitempty"`
	Option      *OptionChoice      `json:"opcion,omitempty"`
	Ingredients []IngredientChoice `json:"ingredientes,omitempty"`
}

// NewPersonalization seeds the defaults for a product: quantity 1, the
// first available size (base price when the product has none), no option,
// and every ingredient included or not according to its default flag.
func NewPersonalization(product *models.Product) *Personalization {
	p := &Personalization{Quantity: 1}

	if len(product.AvailableSizes) > 0 {
		first := product.AvailableSizes[0]
		p.Size = &SizeChoice{
			ID:    first.SizeID,
			Name:  first.Size.Name,
			Price: first.Price,
		}
	}

	for _, ing := range product.Ingredients {
		p.Ingredients = append(p.Ingredients, IngredientChoice{
			ID:       ing.IngredientID,
			Name:     ing.Ingredient.Name,
			Optional: ing.Optional,
			Included: ing.Default,
		})
	}

	return p
}

// SelectSize picks one of the product's available sizes. Unknown ids are
// ignored so a stale UI cannot corrupt the selection.
func (p *Personalization) SelectSize(product *models.Product, sizeID uint) {
	for _, ps := range product.AvailableSizes {
		if ps.SizeID == sizeID {
			p.Size = &SizeChoice{ID: ps.SizeID, Name: ps.Size.Name, Price: ps.Price}
			return
		}
	}
}

// SelectOption picks one of the product's options, or clears it when
// optionID is 0.
func (p *Personalization) SelectOption(product *models.Product, optionID uint) {
	if optionID == 0 {
		p.Option = nil
		return
	}
	for _, po := range product.Options {
		if po.OptionID == optionID {
			p.Option = &OptionChoice{ID: po.OptionID, Name: po.Option.Name}
			return
		}
	}
}

// ToggleIngredient flips the included flag of one ingredient.
func (p *Personalization) ToggleIngredient(ingredientID uint) {
	for i := range p.Ingredients {
		if p.Ingredients[i].ID == ingredientID {
			p.Ingredients[i].Included = !p.Ingredients[i].Included
			return
		}
	}
}

// SetQuantity clamps to a minimum of 1; removal happens through the
// ledger, never by zeroing the draft.
func (p *Personalization) SetQuantity(n int) {
	if n < 1 {
		n = 1
	}
	p.Quantity = n
}

// UnitPrice resolves the frozen price for a line built from this
// personalization: the selected size's price when a size is chosen,
// otherwise the product base price.
func (p *Personalization) UnitPrice(product *models.Product) float64 {
	if p.Size != nil {
		return p.Size.Price
	}
	return product.Price
}

// clone takes a snapshot so later edits to the draft never leak into a
// committed line.
func (p *Personalization) clone() Personalization {
	cp := Personalization{
		Quantity: p.Quantity,
	}
	if p.Size != nil {
		s := *p.Size
		cp.Size = &s
	}
	if p.Option != nil {
		o := *p.Option
		cp.Option = &o
	}
	if len(p.Ingredients) > 0 {
		cp.Ingredients = make([]IngredientChoice, len(p.Ingredients))
		copy(cp.Ingredients, p.Ingredients)
	}
	return cp
}

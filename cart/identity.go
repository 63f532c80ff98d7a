package cart

import "github.com/yeremiapane/restaurant-order-panel/models"

// LineKey derives the identity of a (product, personalization) pair so
// that identical customizations merge into one cart line:
//
//	productID * 1_000_000
//	+ sizeID * 1000    when a size is selected
//	+ optionID * 100   when an option is selected
//	+ the smallest id among ingredients that are optional AND included
//
// Only the minimum ingredient id is folded in, so two different included
// subsets that share their smallest id produce the same key and merge
// silently. That is long-standing behavior the rest of the system (and the
// backend's dedup expectations) is built around; do not change it without
// product sign-off.
func LineKey(product *models.Product, p *Personalization) uint {
	key := product.ID * 1_000_000

	if p.Size != nil {
		key += p.Size.ID * 1000
	}
	if p.Option != nil {
		key += p.Option.ID * 100
	}

	var minID uint
	for _, ing := range p.Ingredients {
		if !ing.Optional || !ing.Included {
			continue
		}
		if minID == 0 || ing.ID < minID {
			minID = ing.ID
		}
	}
	key += minID

	return key
}

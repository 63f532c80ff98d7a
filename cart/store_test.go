package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/restaurant-order-panel/models"
)

func plainProduct(id uint, price float64) *models.Product {
	return &models.Product{ID: id, Name: "Test Product", Price: price}
}

func sizedProduct(id uint) *models.Product {
	return &models.Product{
		ID:    id,
		Name:  "Sized Product",
		Price: 10,
		AvailableSizes: []models.ProductSize{
			{SizeID: 2, Price: 15, Size: models.Size{ID: 2, Name: "Grande"}},
			{SizeID: 3, Price: 18, Size: models.Size{ID: 3, Name: "Familiar"}},
		},
	}
}

func TestAddPlainProduct(t *testing.T) {
	store := NewStore()
	product := plainProduct(1, 12.5)

	p := NewPersonalization(product)
	store.AddItem(product, p)

	lines := store.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, 12.5, lines[0].UnitPrice)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestAddMergesIdenticalCustomization(t *testing.T) {
	store := NewStore()
	product := sizedProduct(3)

	p1 := NewPersonalization(product)
	p1.SetQuantity(2)
	store.AddItem(product, p1)

	p2 := NewPersonalization(product)
	p2.SetQuantity(3)
	store.AddItem(product, p2)

	lines := store.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestDifferentSizesStayDistinct(t *testing.T) {
	store := NewStore()
	product := sizedProduct(3)

	p1 := NewPersonalization(product) // first size (id 2)
	store.AddItem(product, p1)

	p2 := NewPersonalization(product)
	p2.SelectSize(product, 3)
	store.AddItem(product, p2)

	assert.Len(t, store.Lines(), 2)
}

func TestUpdateQuantityToZeroRemovesLine(t *testing.T) {
	store := NewStore()
	product := plainProduct(7, 4)

	line := store.AddItem(product, NewPersonalization(product))
	store.UpdateQuantity(line.Key, 0)

	assert.Empty(t, store.Lines())
	assert.Equal(t, 0.0, store.Total())
}

func TestTotalMatchesLedgerAfterAnySequence(t *testing.T) {
	store := NewStore()
	a := plainProduct(1, 3)
	b := plainProduct(2, 7)

	pa := NewPersonalization(a)
	pa.SetQuantity(4)
	la := store.AddItem(a, pa)

	pb := NewPersonalization(b)
	pb.SetQuantity(2)
	lb := store.AddItem(b, pb)

	store.UpdateQuantity(la.Key, 1)
	store.RemoveItem(lb.Key)

	pb2 := NewPersonalization(b)
	store.AddItem(b, pb2)

	var want float64
	for _, l := range store.Lines() {
		want += l.UnitPrice * float64(l.Quantity)
	}
	assert.Equal(t, want, store.Total())
	assert.Equal(t, 2, store.ItemCount())
}

func TestPlainProductScenario(t *testing.T) {
	store := NewStore()
	product := plainProduct(5, 10)

	p := NewPersonalization(product)
	p.SetQuantity(2)
	line := store.AddItem(product, p)

	assert.Equal(t, uint(5_000_000), line.Key)
	assert.Equal(t, 20.0, line.Subtotal())
	assert.Equal(t, 2, store.ItemCount())

	store.RemoveItem(5_000_000)
	assert.Empty(t, store.Lines())
	assert.Equal(t, 0.0, store.Total())
	assert.Equal(t, 0, store.ItemCount())
}

func TestSizedProductScenario(t *testing.T) {
	store := NewStore()
	product := sizedProduct(3)

	line := store.AddItem(product, NewPersonalization(product))

	assert.Equal(t, uint(3_002_000), line.Key)
	assert.Equal(t, 15.0, line.UnitPrice, "size price overrides base price")
}

func TestClearEmptiesLedger(t *testing.T) {
	store := NewStore()
	a := plainProduct(1, 3)
	b := plainProduct(2, 7)
	store.AddItem(a, NewPersonalization(a))
	store.AddItem(b, NewPersonalization(b))

	store.Clear()

	assert.Equal(t, 0.0, store.Total())
	assert.Equal(t, 0, store.ItemCount())
	assert.Empty(t, store.Lines())
}

func TestUnitPriceFrozenAtInsertion(t *testing.T) {
	store := NewStore()
	product := plainProduct(9, 10)

	line := store.AddItem(product, NewPersonalization(product))

	// Catalog refresh bumps the price; the committed line keeps its own.
	product.Price = 99
	assert.Equal(t, 10.0, store.Lines()[0].UnitPrice)
	assert.Equal(t, line.UnitPrice, store.Lines()[0].UnitPrice)
}

func TestDraftShape(t *testing.T) {
	store := NewStore()
	product := &models.Product{
		ID:    3,
		Name:  "Hamburguesa",
		Price: 10,
		AvailableSizes: []models.ProductSize{
			{SizeID: 2, Price: 15, Size: models.Size{ID: 2, Name: "Grande"}},
		},
		Ingredients: []models.ProductIngredient{
			{IngredientID: 4, Optional: true, Default: true, Ingredient: models.Ingredient{ID: 4, Name: "Queso"}},
			{IngredientID: 6, Optional: true, Default: false, Ingredient: models.Ingredient{ID: 6, Name: "Tocino"}},
		},
	}

	p := NewPersonalization(product)
	p.SetQuantity(2)
	store.AddItem(product, p)

	draft := store.Draft("Ana", "sin sal")

	assert.Equal(t, "Ana", draft.Customer)
	assert.Equal(t, models.StatusPendingID, draft.StatusID)
	assert.Equal(t, 30.0, draft.Total)
	assert.Len(t, draft.Items.Create, 1)

	item := draft.Items.Create[0]
	assert.Equal(t, uint(3), item.ProductID)
	assert.Equal(t, 15.0, item.UnitPrice)
	assert.Equal(t, 30.0, item.Subtotal)
	if assert.NotNil(t, item.SizeID) {
		assert.Equal(t, uint(2), *item.SizeID)
	}
	assert.Nil(t, item.OptionID)
	// Only the included ingredient travels.
	assert.Len(t, item.Ingredients.Create, 1)
	assert.Equal(t, uint(4), item.Ingredients.Create[0].IngredientID)
}

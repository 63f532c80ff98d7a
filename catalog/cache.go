package catalog

import (
	"context"
	"sync"

	"github.com/yeremiapane/restaurant-order-panel/models"
)

// Loader is the slice of the backend client the cache needs.
type Loader interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
}

// Cache is a pass-through holder for the catalog. Every successful load
// replaces the cached collection wholesale; there is no TTL and no
// partial merge — staleness is resolved only by loading again. A failed
// load keeps the last successfully loaded data and records the error so
// the presentation layer can show it.
type Cache struct {
	loader Loader

	mu         sync.RWMutex
	categories []models.Category
	products   []models.Product
	lastErr    error
}

func NewCache(loader Loader) *Cache {
	return &Cache{loader: loader}
}

func (c *Cache) LoadCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := c.loader.ListCategories(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.lastErr = err
		return c.categories, err
	}
	c.categories = categories
	c.lastErr = nil
	return c.categories, nil
}

func (c *Cache) LoadProducts(ctx context.Context) ([]models.Product, error) {
	products, err := c.loader.ListProducts(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.lastErr = err
		return c.products, err
	}
	c.products = products
	c.lastErr = nil
	return c.products, nil
}

// LoadProductsByCategory refetches the full product list and keeps only
// the products whose category carries the given name. The filter runs
// here, not on the backend.
func (c *Cache) LoadProductsByCategory(ctx context.Context, categoryName string) ([]models.Product, error) {
	all, err := c.loader.ListProducts(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.lastErr = err
		return filterByCategory(c.products, categoryName), err
	}

	c.products = all
	c.lastErr = nil
	return filterByCategory(all, categoryName), nil
}

func filterByCategory(products []models.Product, categoryName string) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Category.Name == categoryName {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Categories returns the last successfully loaded categories.
func (c *Cache) Categories() []models.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Products returns the last successfully loaded products.
func (c *Cache) Products() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Product finds one cached product by id.
func (c *Cache) Product(id uint) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Err reports the error of the most recent load, nil after a success.
func (c *Cache) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

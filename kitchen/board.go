package kitchen

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/yeremiapane/restaurant-order-panel/models"
	"github.com/yeremiapane/restaurant-order-panel/utils"
)

// OrderSource is the slice of the backend client the board needs.
type OrderSource interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID, statusID uint) (models.Order, error)
}

// Broadcaster receives the board snapshot after every successful refresh.
type Broadcaster interface {
	BroadcastBoardUpdate(orders []models.Order)
	BroadcastOrderUpdate(order models.Order)
}

// Board polls the backend for the full order list on a fixed interval.
// At most one fetch is in flight: a tick that fires while a refresh is
// outstanding is dropped, not queued. Failed refreshes keep the last
// snapshot and record the error.
type Board struct {
	source    OrderSource
	hub       Broadcaster
	Interval  time.Duration
	stopChan  chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once

	mu          sync.Mutex
	refreshing  bool
	orders      []models.Order
	lastErr     error
	lastRefresh time.Time
}

func NewBoard(source OrderSource, hub Broadcaster) *Board {
	return &Board{
		source:   source,
		hub:      hub,
		Interval: 10 * time.Second,
		stopChan: make(chan struct{}),
	}
}

// Start launches the polling loop. The first refresh happens right away
// so the board is never empty longer than one round-trip.
func (b *Board) Start() {
	b.startOnce.Do(func() {
		go func() {
			b.Refresh(context.Background())

			ticker := time.NewTicker(b.Interval)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					b.Refresh(context.Background())
				case <-b.stopChan:
					return
				}
			}
		}()
	})
}

func (b *Board) Stop() {
	b.stopOnce.Do(func() {
		close(b.stopChan)
	})
}

// Refresh refetches the order list wholesale. Returns false when the
// call was skipped because another refresh was still running.
func (b *Board) Refresh(ctx context.Context) bool {
	b.mu.Lock()
	if b.refreshing {
		b.mu.Unlock()
		return false
	}
	b.refreshing = true
	b.mu.Unlock()

	orders, err := b.source.ListOrders(ctx)

	b.mu.Lock()
	b.refreshing = false
	if err != nil {
		b.lastErr = err
		b.mu.Unlock()
		utils.ErrorLogger.Printf("Error refreshing kitchen board: %v", err)
		return true
	}
	b.orders = orders
	b.lastErr = nil
	b.lastRefresh = time.Now()
	b.mu.Unlock()

	if b.hub != nil {
		b.hub.BroadcastBoardUpdate(orders)
	}
	return true
}

// Snapshot returns the last fetched orders, the time of the last
// successful refresh and the retained error, if any.
func (b *Board) Snapshot() ([]models.Order, time.Time, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]models.Order, len(b.orders))
	copy(out, b.orders)
	return out, b.lastRefresh, b.lastErr
}

// OrdersByStatus filters the snapshot by status name (the board tabs:
// PENDIENTE, COCINADO, FALTA PAGAR, PAGADO). Matching is case-insensitive.
func (b *Board) OrdersByStatus(name string) []models.Order {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []models.Order
	for _, o := range b.orders {
		if o.Status != nil && strings.EqualFold(o.Status.Name, name) {
			out = append(out, o)
		}
	}
	return out
}

// UpdateStatus moves one order to a new status on the backend, then
// forces a refresh so the board reflects the change.
func (b *Board) UpdateStatus(ctx context.Context, orderID, statusID uint) (models.Order, error) {
	order, err := b.source.UpdateOrderStatus(ctx, orderID, statusID)
	if err != nil {
		return models.Order{}, err
	}

	if b.hub != nil {
		b.hub.BroadcastOrderUpdate(order)
	}
	b.Refresh(ctx)
	return order, nil
}

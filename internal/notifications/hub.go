package notifications

import (
	"sync"

	"campuseats/internal/core/ports"
)

// Hub fans order events out to the live feed subscribers of this process.
// Subscribers get a wake-up signal, not the event itself: the SSE handlers
// re-run their feed query on each signal, so a subscriber that misses
// intermediate events still renders the latest committed state.
type Hub struct {
	mu sync.Mutex

	pending   map[*Subscription]struct{}
	customers map[string]map[*Subscription]struct{}
	couriers  map[string]map[*Subscription]struct{}
}

// NewHub creates an empty notification hub.
func NewHub() *Hub {
	return &Hub{
		pending:   make(map[*Subscription]struct{}),
		customers: make(map[string]map[*Subscription]struct{}),
		couriers:  make(map[string]map[*Subscription]struct{}),
	}
}

// SubscribePending subscribes to changes of the available-orders feed.
// Every order event touches that feed, so every event wakes these
// subscribers.
func (h *Hub) SubscribePending() *Subscription {
	sub := newSubscription()

	h.mu.Lock()
	h.pending[sub] = struct{}{}
	h.mu.Unlock()

	sub.cancel = func() {
		h.mu.Lock()
		delete(h.pending, sub)
		h.mu.Unlock()
	}

	return sub
}

// SubscribeCustomer subscribes to changes of one customer's order feed.
func (h *Hub) SubscribeCustomer(customerID string) *Subscription {
	sub := newSubscription()

	h.mu.Lock()
	if h.customers[customerID] == nil {
		h.customers[customerID] = make(map[*Subscription]struct{})
	}
	h.customers[customerID][sub] = struct{}{}
	h.mu.Unlock()

	sub.cancel = func() {
		h.mu.Lock()
		delete(h.customers[customerID], sub)
		if len(h.customers[customerID]) == 0 {
			delete(h.customers, customerID)
		}
		h.mu.Unlock()
	}

	return sub
}

// SubscribeCourier subscribes to changes of one courier's delivery feed.
func (h *Hub) SubscribeCourier(courierID string) *Subscription {
	sub := newSubscription()

	h.mu.Lock()
	if h.couriers[courierID] == nil {
		h.couriers[courierID] = make(map[*Subscription]struct{})
	}
	h.couriers[courierID][sub] = struct{}{}
	h.mu.Unlock()

	sub.cancel = func() {
		h.mu.Lock()
		delete(h.couriers[courierID], sub)
		if len(h.couriers[courierID]) == 0 {
			delete(h.couriers, courierID)
		}
		h.mu.Unlock()
	}

	return sub
}

// Notify routes an order event to the affected feeds: all pending-feed
// subscribers, the order's customer, and the order's courier when bound.
func (h *Hub) Notify(event ports.OrderChangedEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.pending {
		sub.wake()
	}

	for sub := range h.customers[event.CustomerID] {
		sub.wake()
	}

	if event.CourierID != "" {
		for sub := range h.couriers[event.CourierID] {
			sub.wake()
		}
	}
}

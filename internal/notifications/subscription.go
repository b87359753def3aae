package notifications

import "sync"

// Subscription is one feed subscriber's handle. Its channel carries wake-up
// signals with a buffer of one, so back-to-back events coalesce into a single
// pending signal instead of queuing.
type Subscription struct {
	ch     chan struct{}
	cancel func()
	once   sync.Once
}

func newSubscription() *Subscription {
	return &Subscription{
		ch: make(chan struct{}, 1),
	}
}

// C returns the wake-up channel. A receive means the subscribed feed may have
// changed and should be re-queried.
func (s *Subscription) C() <-chan struct{} {
	return s.ch
}

// Cancel removes the subscription from the hub. Safe to call multiple times.
func (s *Subscription) Cancel() {
	s.once.Do(s.cancel)
}

// wake delivers a signal without blocking. If one is already pending the new
// signal is dropped, which is fine: the subscriber will re-query anyway.
func (s *Subscription) wake() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

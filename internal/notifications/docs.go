// Package notifications implements the in-process fan-out behind the live
// feeds. Command handlers publish order events to Redis after commit; the
// Redis subscriber feeds them into this hub, which wakes the SSE handlers
// subscribed to the affected feeds. Signals are coalescing wake-ups rather
// than event payloads, so slow clients fall behind gracefully and recover on
// their next query.
package notifications

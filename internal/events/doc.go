// Package events provides an in-process topic-based publish/subscribe bus.
//
// Producers publish task-list snapshots to a named topic; every open
// subscription on that topic receives every snapshot. Delivery within a
// single subscription preserves publish order. Subscriptions carry a
// bounded buffer: a subscriber that falls behind loses its oldest
// undelivered snapshots rather than blocking publishers. Because each
// payload is a complete snapshot, a dropped intermediate delivery carries
// no information the next one doesn't.
package events

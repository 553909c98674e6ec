package redisx

import "time"

const (
	// Per-user durable cart slot: cart:{user_id} -> JSON array of cart items.
	KeyCart = "cart:%s"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	// A cart left untouched for 30 days is abandoned.
	TTLCart  = 30 * 24 * time.Hour
	TTLDedup = 48 * time.Hour
)

package model

import "time"

// Snapshot identifies one generation of synthetic data. The same seed always
// reproduces the same dataset; the ID is a human-pasteable handle for a
// generation within a session.
type Snapshot struct {
	ID          string    `json:"id"`
	Seed        uint64    `json:"seed"`
	GeneratedAt time.Time `json:"generatedAt"`
}

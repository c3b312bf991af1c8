package model

import "time"

// Move records a single executed displacement in full notation, e.g. from
// "Re1" to "Re3". Records are immutable once written. Timestamp is advisory
// metadata only; the order of a log, not the clock, defines chronology.
type Move struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Timestamp time.Time `json:"timestamp"`
}

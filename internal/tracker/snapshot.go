package tracker

import "encoding/json"

// Snapshot is the unit of persistence: the full durable state of one tracker.
// Progress is intentionally absent, it is always recomputed from the ledger.
type Snapshot struct {
	Ledger   Ledger `json:"completed"`
	Points   int    `json:"points"`
	Streak   int    `json:"streak,omitempty"`
	LastDate string `json:"lastDate,omitempty"`
}

func encodeSnapshot(s Snapshot) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeSnapshot parses a stored record. Any syntactic problem yields
// (zero snapshot, false); the caller falls back to defaults rather than
// surfacing an error.
func decodeSnapshot(raw string) (Snapshot, bool) {
	var s Snapshot
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return Snapshot{}, false
	}
	if s.Ledger == nil {
		s.Ledger = Ledger{}
	}
	return s, true
}

// Package memory implements the namespaced long-term memory store for user
// profile and instruction records.
package memory

import (
	"context"
	"encoding/json"
	"time"
)

// Namespace scopes memory records to a category and user.
type Namespace struct {
	Kind   string // "profile" or "instructions"
	UserID string
}

// Namespace kinds.
const (
	KindProfile      = "profile"
	KindInstructions = "instructions"
)

// InstructionsKey is the fixed key under which the single instructions
// record lives; updates overwrite it rather than merging.
const InstructionsKey = "user_instructions"

// Record is one stored memory value.
type Record struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Decode unmarshals the record value into v.
func (r *Record) Decode(v any) error {
	return json.Unmarshal(r.Value, v)
}

// Store is the namespaced key-value contract for long-term memory. Callers
// must treat an empty Search result or nil Get result as "no value yet";
// record ordering within a namespace is not guaranteed beyond being stable
// for a given store.
type Store interface {
	// Search returns all records in the namespace.
	Search(ctx context.Context, ns Namespace) ([]Record, error)
	// Get returns the record under key, or nil when absent.
	Get(ctx context.Context, ns Namespace, key string) (*Record, error)
	// Put stores value under key, overwriting any previous record.
	Put(ctx context.Context, ns Namespace, key string, value any) error
}

// Profile is the structured long-term memory about a user. Several profile
// records may coexist per user; each extracted fragment is stored under its
// own record id.
type Profile struct {
	Name        string   `json:"name,omitempty"`
	Location    string   `json:"location,omitempty"`
	Job         string   `json:"job,omitempty"`
	Connections []string `json:"connections,omitempty"`
	Interests   []string `json:"interests,omitempty"`
}

// Instructions is the single free-text note-creation preference record.
type Instructions struct {
	Memory string `json:"memory"`
}

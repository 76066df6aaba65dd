// Package types defines the domain model shared by all raddesk stores.
package types

// Record carries the identity every stored entity needs. Domain types embed
// it the same way they would embed a base document in a document store.
type Record struct {
	ID string `json:"id" yaml:"id"`
}

// UUID returns the entity's unique identifier.
func (r *Record) UUID() string { return r.ID }

// SetUUID assigns the entity's unique identifier.
func (r *Record) SetUUID(id string) { r.ID = id }

// Entity is the contract a domain type must satisfy to live in a store.
// Implementations use pointer receivers; stores always hold pointer values.
type Entity interface {
	// UUID returns the stable unique identifier within a collection.
	UUID() string

	// SetUUID assigns the identifier. Called exactly once, on Add.
	SetUUID(id string)

	// SearchText returns the fixed set of text fields a substring search
	// runs against.
	SearchText() []string

	// Validate reports whether the entity is well-formed enough to store.
	Validate() error
}

// Update is a tagged-field update for entity type T. Each entity declares
// its own update struct with optional pointer fields, so the set of mutable
// fields is enforced at compile time instead of accepting an untyped bag
// of overrides.
type Update[T Entity] interface {
	// Apply merges the set fields into the target in place.
	Apply(target T)
}

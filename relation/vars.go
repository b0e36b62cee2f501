// Package relation implements the linear-relation data model that the
// Schnorr Sigma protocol core is built on: typed scalar/group-element
// variables, sparse linear combinations, and the statement label that
// binds a relation's shape into a Fiat-Shamir transcript.
package relation

// ScalarVar is an opaque handle to a scalar variable allocated in a
// LinearRelation. It is a dense index into the witness vector, wrapped in
// its own type so that scalar and group indices cannot be confused with
// each other or with plain ints.
type ScalarVar struct {
	idx int
}

// Index returns the variable's position in the witness vector.
func (v ScalarVar) Index() int {
	return v.idx
}

// GroupVar is an opaque handle to a group-element variable allocated in a
// LinearRelation.
type GroupVar struct {
	idx int
}

// Index returns the variable's position in the relation's element table.
func (v GroupVar) Index() int {
	return v.idx
}

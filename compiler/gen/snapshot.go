package gen

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/packfold/msitab"
)

// Snapshot is a compact, deterministic digest of a compiled graph. Two
// graphs with the same snapshot generate byte-identical artifacts, so
// the watch helper can skip regeneration when a schema edit does not
// change the compiled shape.
type Snapshot struct {
	Group    string           `msgpack:"group"`
	Union    bool             `msgpack:"union"`
	Entities []EntitySnapshot `msgpack:"entities"`
}

// EntitySnapshot is the digest of one compiled entity.
type EntitySnapshot struct {
	Name              string          `msgpack:"name"`
	Columns           []msitab.Column `msgpack:"columns"`
	PrimaryKeyIndices []int           `msgpack:"primary_key_indices"`
	HasIdentifier     bool            `msgpack:"has_identifier"`
	HasGenerator      bool            `msgpack:"has_generator"`
}

// TakeSnapshot digests the compiled graph. Entities keep declaration
// order, so equal schemas digest to equal bytes.
func TakeSnapshot(g *Graph) *Snapshot {
	s := &Snapshot{
		Group:    g.Group,
		Union:    g.HasUnion(),
		Entities: make([]EntitySnapshot, 0, len(g.Nodes)),
	}
	for _, t := range g.Nodes {
		s.Entities = append(s.Entities, EntitySnapshot{
			Name:              t.Name,
			Columns:           t.Columns(),
			PrimaryKeyIndices: t.PrimaryKeyIndices(),
			HasIdentifier:     t.PrimaryIdentifier != nil,
			HasGenerator:      t.HasGenerator(),
		})
	}
	return s
}

// Encode serializes the snapshot.
func (s *Snapshot) Encode() ([]byte, error) {
	return msgpack.Marshal(s)
}

// DecodeSnapshot deserializes a snapshot previously produced by Encode.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Equal reports whether both snapshots digest the same compiled shape.
func (s *Snapshot) Equal(other *Snapshot) bool {
	if other == nil {
		return false
	}
	a, err := s.Encode()
	if err != nil {
		return false
	}
	b, err := other.Encode()
	if err != nil {
		return false
	}
	return bytes.Equal(a, b)
}

// Package enum maps protocol constants to and from their wire representation.
//
// A subtype is a named integer type whose values are the constants' ordinals, for example
//
//	type DeliveryMode int16
//
//	const (
//		DeliveryModePoll DeliveryMode = 1
//		DeliveryModePing DeliveryMode = 2
//	)
//
// Each subtype owns exactly one Set, built once at package initialisation. The Set resolves
// a constant from either its ordinal or its canonical wire string, and renders the canonical
// string back when a value is serialized. Sets are never modified after New returns, so every
// lookup is safe for concurrent use.
package enum

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Integer is the set of underlying types an extended enum may use for its ordinal.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32
}

// Entry declares one constant of a Set.
type Entry[T Integer] struct {
	// Value is the constant. Its integer value is the ordinal.
	Value T
	// Wire is the canonical string used on the wire, matched case-sensitively.
	Wire string
	// Name is a human-readable name for diagnostics. It is never compared or serialized.
	Name string
}

// Set is the closed, immutable table of constants for one subtype.
type Set[T Integer] struct {
	kind      string
	entries   []Entry[T]
	byOrdinal map[int]int
	byWire    map[string]int
}

// New builds the table for a subtype. It panics when two entries share an ordinal or a wire
// string, since a set is only ever declared statically.
func New[T Integer](kind string, entries ...Entry[T]) *Set[T] {
	s := &Set[T]{
		kind:      kind,
		entries:   make([]Entry[T], 0, len(entries)),
		byOrdinal: make(map[int]int, len(entries)),
		byWire:    make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		ordinal := int(e.Value)
		if _, dup := s.byOrdinal[ordinal]; dup {
			panic(fmt.Sprintf("[enum.New] %s: duplicate ordinal %d", kind, ordinal))
		}
		if _, dup := s.byWire[e.Wire]; dup {
			panic(fmt.Sprintf("[enum.New] %s: duplicate wire value %q", kind, e.Wire))
		}
		if e.Name == "" {
			e.Name = e.Wire
		}
		s.byOrdinal[ordinal] = len(s.entries)
		s.byWire[e.Wire] = len(s.entries)
		s.entries = append(s.entries, e)
	}
	return s
}

// Kind returns the subtype name the set was declared with.
func (s *Set[T]) Kind() string {
	return s.kind
}

// FromOrdinal returns the constant whose ordinal matches.
func (s *Set[T]) FromOrdinal(ordinal int) (T, error) {
	if i, ok := s.byOrdinal[ordinal]; ok {
		return s.entries[i].Value, nil
	}
	var zero T
	return zero, &NotFoundError{Kind: s.kind, Value: strconv.Itoa(ordinal), ByOrdinal: true}
}

// FromString returns the constant whose canonical wire string equals wire exactly.
func (s *Set[T]) FromString(wire string) (T, error) {
	if i, ok := s.byWire[wire]; ok {
		return s.entries[i].Value, nil
	}
	var zero T
	return zero, &NotFoundError{Kind: s.kind, Value: wire}
}

// Contains reports whether v is a declared constant.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.byOrdinal[int(v)]
	return ok
}

// Wire returns the canonical wire string of v, or "" when v is not declared.
func (s *Set[T]) Wire(v T) string {
	if i, ok := s.byOrdinal[int(v)]; ok {
		return s.entries[i].Wire
	}
	return ""
}

// Name returns the diagnostic name of v.
func (s *Set[T]) Name(v T) string {
	if i, ok := s.byOrdinal[int(v)]; ok {
		return s.entries[i].Name
	}
	return fmt.Sprintf("%s(%d)", s.kind, int(v))
}

// Values returns the constants in declaration order.
func (s *Set[T]) Values() []T {
	values := make([]T, len(s.entries))
	for i, e := range s.entries {
		values[i] = e.Value
	}
	return values
}

// Entries returns a copy of the declared entries in declaration order.
func (s *Set[T]) Entries() []Entry[T] {
	entries := make([]Entry[T], len(s.entries))
	copy(entries, s.entries)
	return entries
}

// ParseList resolves every wire string, failing on the first unknown one.
func (s *Set[T]) ParseList(wires []string) ([]T, error) {
	if wires == nil {
		return nil, nil
	}
	values := make([]T, 0, len(wires))
	for _, w := range wires {
		v, err := s.FromString(w)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// WireList renders values as canonical wire strings. Undeclared values are skipped.
func (s *Set[T]) WireList(values []T) []string {
	if values == nil {
		return nil
	}
	wires := make([]string, 0, len(values))
	for _, v := range values {
		if s.Contains(v) {
			wires = append(wires, s.Wire(v))
		}
	}
	return wires
}

// ToBits packs values into a bit set where bit n stands for the constant with ordinal n.
// Values outside 0..63 and undeclared values are ignored.
func (s *Set[T]) ToBits(values []T) uint64 {
	var bits uint64
	for _, v := range values {
		ordinal := int(v)
		if ordinal < 0 || ordinal > 63 || !s.Contains(v) {
			continue
		}
		bits |= 1 << uint(ordinal)
	}
	return bits
}

// FromBits unpacks a bit set produced by ToBits, in declaration order.
func (s *Set[T]) FromBits(bits uint64) []T {
	values := make([]T, 0)
	for _, e := range s.entries {
		ordinal := int(e.Value)
		if ordinal < 0 || ordinal > 63 {
			continue
		}
		if bits&(1<<uint(ordinal)) != 0 {
			values = append(values, e.Value)
		}
	}
	return values
}

// MarshalJSON renders v as its canonical wire string.
func (s *Set[T]) MarshalJSON(v T) ([]byte, error) {
	i, ok := s.byOrdinal[int(v)]
	if !ok {
		return nil, &NotFoundError{Kind: s.kind, Value: strconv.Itoa(int(v)), ByOrdinal: true}
	}
	return json.Marshal(s.entries[i].Wire)
}

// UnmarshalJSON resolves a JSON string (canonical wire value) or a JSON number (ordinal)
// into dst. A JSON null leaves dst untouched.
func (s *Set[T]) UnmarshalJSON(data []byte, dst *T) error {
	data = bytes.TrimSpace(data)
	if isNull(data) {
		return nil
	}

	var (
		v   T
		err error
	)
	if data[0] == '"' {
		var wire string
		if err := json.Unmarshal(data, &wire); err != nil {
			return fmt.Errorf("[enum] %s: %w", s.kind, err)
		}
		v, err = s.FromString(wire)
	} else {
		ordinal, convErr := strconv.Atoi(string(data))
		if convErr != nil {
			return fmt.Errorf("[enum] %s: expected a string or an ordinal, got %s", s.kind, data)
		}
		v, err = s.FromOrdinal(ordinal)
	}
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func isNull(data []byte) bool {
	return len(data) == 0 || bytes.Equal(data, []byte("null"))
}

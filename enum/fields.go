package enum

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// Member is satisfied by every subtype: an integer type that can reach its own Set.
type Member[T Integer] interface {
	Integer
	Enum() *Set[T]
}

func setOf[T Member[T]]() *Set[T] {
	var zero T
	return zero.Enum()
}

// Optional holds an advisory enum field. An absent, null or unrecognised wire value leaves
// it unset instead of failing the surrounding document; the unrecognised text is kept
// for diagnostics.
//
// Use with the `omitzero` JSON option so that an unset value is not emitted.
type Optional[T Member[T]] struct {
	value T
	set   bool
	raw   string
}

// Some returns a set Optional holding v.
func Some[T Member[T]](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Get returns the value and whether it is set.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether a declared constant was assigned or decoded.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// IsZero reports whether o is unset. encoding/json consults it for `omitzero`.
func (o Optional[T]) IsZero() bool {
	return !o.set
}

// OrElse returns the value when set and def otherwise.
func (o Optional[T]) OrElse(def T) T {
	if o.set {
		return o.value
	}
	return def
}

// Raw returns the wire text that could not be mapped during decoding, if any.
func (o Optional[T]) Raw() string {
	return o.raw
}

func (o Optional[T]) String() string {
	if !o.set {
		return ""
	}
	return setOf[T]().Wire(o.value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return setOf[T]().MarshalJSON(o.value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	*o = Optional[T]{}
	data = bytes.TrimSpace(data)
	if isNull(data) {
		return nil
	}
	var v T
	if err := setOf[T]().UnmarshalJSON(data, &v); err != nil {
		if errors.Is(err, ErrNotFound) {
			o.raw = rawText(data)
			return nil
		}
		return err
	}
	o.value, o.set = v, true
	return nil
}

// List is an advisory array of constants. Unrecognised entries are dropped while decoding.
type List[T Member[T]] []T

// Contains reports whether v is in the list.
func (l List[T]) Contains(v T) bool {
	for _, x := range l {
		if x == v {
			return true
		}
	}
	return false
}

// Strings renders the list as canonical wire strings.
func (l List[T]) Strings() []string {
	return setOf[T]().WireList(l)
}

func (l *List[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if isNull(data) {
		*l = nil
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	set := setOf[T]()
	values := make(List[T], 0, len(raw))
	for _, r := range raw {
		if isNull(bytes.TrimSpace(r)) {
			continue
		}
		var v T
		if err := set.UnmarshalJSON(r, &v); err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return err
		}
		values = append(values, v)
	}
	*l = values
	return nil
}

// Ordinal carries a constant that a legacy field encodes as its numeric ordinal.
// Decoding accepts the ordinal or the wire string; encoding always emits the ordinal.
type Ordinal[T Member[T]] struct {
	Value T
}

func (o Ordinal[T]) MarshalJSON() ([]byte, error) {
	if !setOf[T]().Contains(o.Value) {
		return nil, &NotFoundError{Kind: setOf[T]().Kind(), Value: strconv.Itoa(int(o.Value)), ByOrdinal: true}
	}
	return []byte(strconv.Itoa(int(o.Value))), nil
}

func (o *Ordinal[T]) UnmarshalJSON(data []byte) error {
	return setOf[T]().UnmarshalJSON(data, &o.Value)
}

// OrdinalList is an advisory legacy array encoded as numeric ordinals. Unrecognised
// entries are dropped while decoding; encoding an undeclared value fails.
type OrdinalList[T Member[T]] []T

func (l OrdinalList[T]) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("null"), nil
	}
	set := setOf[T]()
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range l {
		if !set.Contains(v) {
			return nil, &NotFoundError{Kind: set.Kind(), Value: strconv.Itoa(int(v)), ByOrdinal: true}
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Itoa(int(v)))
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func (l *OrdinalList[T]) UnmarshalJSON(data []byte) error {
	var values List[T]
	if err := values.UnmarshalJSON(data); err != nil {
		return err
	}
	*l = OrdinalList[T](values)
	return nil
}

func rawText(data []byte) string {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s
	}
	return string(data)
}

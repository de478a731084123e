package actionlog

import (
	"log/slog"
	"maps"
	"slices"
	"strings"
)

// A Value is one metadata value: either a scalar string or a mapping from
// string keys to further Values. Values are immutable once constructed, so
// they may be shared between handler copies without locking.
type Value struct {
	scalar string
	dict   map[string]Value
}

// StringValue returns a scalar Value holding s.
func StringValue(s string) Value { return Value{scalar: s} }

// GroupValue returns a mapping Value holding a copy of m.
func GroupValue(m map[string]Value) Value {
	d := make(map[string]Value, len(m))
	maps.Copy(d, m)
	return Value{dict: d}
}

// IsGroup reports whether v is a mapping.
func (v Value) IsGroup() bool { return v.dict != nil }

// String renders v for the wire: scalars verbatim, mappings as a bracketed
// key-sorted list like "[id: 42, zone: eu]".
func (v Value) String() string {
	if v.dict == nil {
		return v.scalar
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, k := range slices.Sorted(maps.Keys(v.dict)) {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v.dict[k].String())
	}
	b.WriteByte(']')
	return b.String()
}

// Metadata is the set of persistent parameters a handler renders into every
// log command line.
type Metadata map[string]Value

// Clone returns a copy of m sharing no top level storage with it. The Values
// themselves are immutable and need no deep copy.
func (m Metadata) Clone() Metadata {
	c := make(Metadata, len(m))
	maps.Copy(c, m)
	return c
}

// valueFromSlog converts a resolved slog value. Groups become mappings,
// anything else becomes its slog string form.
func valueFromSlog(v slog.Value) Value {
	v = v.Resolve()
	if v.Kind() != slog.KindGroup {
		return StringValue(v.String())
	}
	attrs := v.Group()
	d := make(map[string]Value, len(attrs))
	mergeAttrs(d, attrs)
	return Value{dict: d}
}

// mergeAttrs converts attrs into d following the slog handler conventions: a
// zero attr and an empty group are dropped, a group with an empty key merges
// its attrs into the enclosing mapping.
func mergeAttrs(d map[string]Value, attrs []slog.Attr) {
	for _, a := range attrs {
		if a.Equal(slog.Attr{}) {
			continue
		}
		v := a.Value.Resolve()
		if v.Kind() == slog.KindGroup {
			attrs := v.Group()
			if len(attrs) == 0 {
				continue
			} else if a.Key == "" {
				mergeAttrs(d, attrs)
				continue
			}
		}
		d[a.Key] = valueFromSlog(v)
	}
}

package eav

import (
	"fmt"
	"reflect"

	"github.com/miteshsathvara1994/eavquent/pkg/types"
)

// Set writes value to the named property on the host instance.
// Single-valued properties update in place or create the one row;
// multivalue properties replace the whole value set, queuing the
// superseded rows for deletion at the next Save. Assigning a collection
// to a single-valued property is rejected with ErrNotMultivalue; a single
// scalar assigned to a multivalue property is coerced into a one-element
// sequence. Returns ErrPropertyNotFound when the entity type defines no
// property with that name.
func (o *Overlay) Set(key string, value any) error {
	if err := o.boot(); err != nil {
		return err
	}

	p, ok := o.props[key]
	if !ok {
		return fmt.Errorf("set %q: %w", key, types.ErrPropertyNotFound)
	}
	if p.Multivalue {
		return o.assignMany(p, value)
	}
	return o.assignOne(p, value)
}

// assignOne writes a single-valued property. An already-loaded row is
// mutated in place and rewritten at Save; otherwise one new row is
// created and becomes visible to reads immediately.
func (o *Overlay) assignOne(p *types.Property, value any) error {
	if isCollection(value) {
		return fmt.Errorf("set %q: %w", p.Name, types.ErrNotMultivalue)
	}

	if vals := o.values[p.PropertyID]; len(vals) > 0 {
		v := vals[0]
		v.Content = value
		v.AttachProperty(p)
		o.markDirty(v)
		return nil
	}

	o.newValue(p, value)
	return nil
}

// assignMany replaces the whole value set of a multivalue property.
// The currently loaded rows are queued for deletion and evicted from the
// in-memory set before any new value is constructed, so a mid-operation
// reader never sees old and new values together. Rows created since boot
// have nothing stored to delete and are simply discarded.
func (o *Overlay) assignMany(p *types.Property, value any) error {
	seq := coerceSequence(value)

	for _, v := range o.values[p.PropertyID] {
		if containsValue(o.fresh, v) {
			o.discard(v)
			continue
		}
		o.queue.push(v)
	}
	o.values[p.PropertyID] = nil

	for _, elem := range seq {
		o.newValue(p, elem)
	}
	return nil
}

// coerceSequence turns the caller's value into an ordered sequence of
// scalars: slices and arrays yield their elements, nil yields an empty
// sequence, and anything else is wrapped as a one-element sequence.
// Strings and byte slices count as scalars.
func coerceSequence(value any) []any {
	if value == nil {
		return []any{}
	}
	if s, ok := value.([]any); ok {
		out := make([]any, len(s))
		copy(out, s)
		return out
	}
	if !isCollection(value) {
		return []any{value}
	}
	rv := reflect.ValueOf(value)
	out := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out = append(out, rv.Index(i).Interface())
	}
	return out
}

// isCollection reports whether value is a slice or array, with []byte
// treated as an opaque scalar payload.
func isCollection(value any) bool {
	if _, ok := value.([]byte); ok {
		return false
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

package eav

import (
	"fmt"

	"github.com/miteshsathvara1994/eavquent/pkg/types"
)

// Get returns the current value of the named property on the host
// instance: a single scalar for single-valued properties (nil when no
// value exists yet), or an ordered slice of scalars for multivalue
// properties (empty when none exist). Reads serve entirely from the state
// loaded at boot plus unflushed in-memory writes; no storage round-trip.
// Returns ErrPropertyNotFound when the entity type defines no property
// with that name.
func (o *Overlay) Get(key string) (any, error) {
	if err := o.boot(); err != nil {
		return nil, err
	}

	p, ok := o.props[key]
	if !ok {
		return nil, fmt.Errorf("get %q: %w", key, types.ErrPropertyNotFound)
	}

	vals := o.values[p.PropertyID]
	if p.Multivalue {
		out := make([]any, 0, len(vals))
		for _, v := range vals {
			out = append(out, v.Content)
		}
		return out, nil
	}
	if len(vals) == 0 {
		return nil, nil
	}
	return vals[0].Content, nil
}

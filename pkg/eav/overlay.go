package eav

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/miteshsathvara1994/eavquent/pkg/types"
)

// Host is the entity an Overlay wraps. Any schema-defined entity type can
// participate by exposing its identity, its backing table, its loaded
// native relations, and its native attribute access.
type Host interface {
	// EntityType returns the polymorphic type tag, e.g. "item".
	EntityType() string

	// EntityID returns the instance identifier.
	EntityID() string

	// Table returns the name of the entity's backing table.
	Table() string

	// Relation reports whether a native relation with the given name has
	// been loaded on this instance, and returns its value.
	Relation(name string) (any, bool)

	// Fillable returns the native attribute names open to mass assignment.
	Fillable() []string

	// Native reads a native attribute by column name.
	Native(name string) (any, bool)

	// Assign writes a fillable native attribute by name.
	Assign(name string, value any) error
}

// Overlay composes a host entity with the dynamic attribute machinery.
// One overlay owns exactly one property set, one value set, and one
// deletion queue; it is not shared across instances or goroutines.
type Overlay struct {
	host  Host
	store Store

	// booted guards the lazy one-shot load of definitions, values, and
	// columns. Re-entrant calls after boot are map lookups only.
	booted  bool
	props   map[string]*types.Property // Definitions by name.
	byID    map[string]*types.Property // Definitions by property ID.
	order   []string                   // Definition names in load order.
	columns map[string]bool            // Physical columns of the host table.
	values  map[string][]*types.Value  // Value rows by property ID, load order.

	// fresh holds values created since boot that have no stored row yet;
	// dirty holds stored rows mutated in place. Both drain on Save.
	fresh []*types.Value
	dirty []*types.Value

	queue deletionQueue
}

// New wraps host with a dynamic attribute overlay backed by store.
// Nothing is loaded until the first attribute access.
func New(host Host, store Store) *Overlay {
	return &Overlay{host: host, store: store}
}

// boot loads the property definitions for the host's entity type, the
// value rows for the host instance, and the physical columns of the
// backing table. It runs exactly once per overlay; later calls are no-ops.
func (o *Overlay) boot() error {
	if o.booted {
		return nil
	}

	props, err := o.store.PropertiesFor(o.host.EntityType())
	if err != nil {
		return fmt.Errorf("loading properties for %s: %w", o.host.EntityType(), err)
	}
	columns, err := o.store.ListColumns(o.host.Table())
	if err != nil {
		return fmt.Errorf("listing columns of %s: %w", o.host.Table(), err)
	}
	vals, err := o.store.ValuesFor(o.host.EntityType(), o.host.EntityID())
	if err != nil {
		return fmt.Errorf("loading values for %s %s: %w", o.host.EntityType(), o.host.EntityID(), err)
	}

	o.props = make(map[string]*types.Property, len(props))
	o.byID = make(map[string]*types.Property, len(props))
	o.order = make([]string, 0, len(props))
	for _, p := range props {
		o.props[p.Name] = p
		o.byID[p.PropertyID] = p
		o.order = append(o.order, p.Name)
	}

	o.columns = columns

	o.values = make(map[string][]*types.Value)
	for _, v := range vals {
		// Back-reference from the already-loaded index, never a re-query.
		if p, ok := o.byID[v.PropertyID]; ok {
			v.AttachProperty(p)
		}
		o.values[v.PropertyID] = append(o.values[v.PropertyID], v)
	}

	o.booted = true
	return nil
}

// PropertyNames returns the names of every property defined for the
// host's entity type, in load order, regardless of whether this instance
// has values for them.
func (o *Overlay) PropertyNames() ([]string, error) {
	if err := o.boot(); err != nil {
		return nil, err
	}
	out := make([]string, len(o.order))
	copy(out, o.order)
	return out, nil
}

// AssignableNames returns the host's fillable native attributes merged
// with the entity type's property names.
func (o *Overlay) AssignableNames() ([]string, error) {
	names, err := o.PropertyNames()
	if err != nil {
		return nil, err
	}
	return append(o.host.Fillable(), names...), nil
}

// Attr reads an attribute by key, native or dynamic. Precedence follows
// the resolution rule: loaded relation, then physical native attribute,
// then dynamic property. Returns ErrUnknownAttribute when the key matches
// none of them.
func (o *Overlay) Attr(key string) (any, error) {
	if err := o.boot(); err != nil {
		return nil, err
	}
	if rel, ok := o.host.Relation(key); ok && rel != nil {
		return rel, nil
	}
	if v, ok := o.host.Native(key); ok {
		return v, nil
	}
	if _, ok := o.props[key]; ok {
		return o.Get(key)
	}
	return nil, fmt.Errorf("attribute %q: %w", key, types.ErrUnknownAttribute)
}

// SetAttr writes an attribute by key. Dynamic keys route through Set;
// everything else falls through to the host's native assignment.
func (o *Overlay) SetAttr(key string, value any) error {
	dynamic, err := o.IsProperty(key)
	if err != nil {
		return err
	}
	if dynamic {
		return o.Set(key, value)
	}
	if err := o.host.Assign(key, value); err != nil {
		return fmt.Errorf("attribute %q: %w", key, err)
	}
	return nil
}

// Fill mass-assigns the given attributes, treating dynamic property names
// as assignable alongside the host's fillable set. Keys are applied in
// sorted order. Returns ErrNotAssignable for any key outside the merged
// assignable set.
func (o *Overlay) Fill(attrs map[string]any) error {
	if err := o.boot(); err != nil {
		return err
	}

	fillable := make(map[string]bool)
	for _, name := range o.host.Fillable() {
		fillable[name] = true
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		dynamic, err := o.IsProperty(key)
		if err != nil {
			return err
		}
		switch {
		case dynamic:
			if err := o.Set(key, attrs[key]); err != nil {
				return err
			}
		case fillable[key]:
			if err := o.host.Assign(key, attrs[key]); err != nil {
				return fmt.Errorf("attribute %q: %w", key, err)
			}
		default:
			return fmt.Errorf("attribute %q: %w", key, types.ErrNotAssignable)
		}
	}
	return nil
}

// Save flushes in-memory mutations to the store: inserts for values
// created since boot, updates for stored rows mutated in place, then the
// queued physical deletes. Creates and updates always land before the
// deletes. A failed delete leaves the queue intact so a retried Save
// completes the flush; bulk delete by ID makes the retry idempotent.
func (o *Overlay) Save() error {
	if !o.booted {
		// Rows can be queued for deletion before any attribute access
		// boots the overlay; those still have to reach the store.
		_, err := o.FlushDeletionQueue()
		return err
	}

	if len(o.fresh) > 0 {
		if err := o.store.InsertValues(o.fresh); err != nil {
			return fmt.Errorf("inserting values: %w", err)
		}
		o.fresh = nil
	}
	if len(o.dirty) > 0 {
		if err := o.store.UpdateValues(o.dirty); err != nil {
			return fmt.Errorf("updating values: %w", err)
		}
		o.dirty = nil
	}

	if _, err := o.FlushDeletionQueue(); err != nil {
		return err
	}
	return nil
}

// newValue constructs a value row for the property on the host instance,
// appends it to the in-memory value set so it is visible to reads before
// any flush, and records it for insertion at Save.
func (o *Overlay) newValue(p *types.Property, content any) *types.Value {
	v := &types.Value{
		ValueID:    newUUID(),
		PropertyID: p.PropertyID,
		EntityType: o.host.EntityType(),
		EntityID:   o.host.EntityID(),
		Content:    content,
	}
	v.AttachProperty(p)
	o.values[p.PropertyID] = append(o.values[p.PropertyID], v)
	o.fresh = append(o.fresh, v)
	return v
}

// markDirty records a stored row whose payload changed in place.
// Fresh rows are already pending insertion and carry their payload along.
func (o *Overlay) markDirty(v *types.Value) {
	if containsValue(o.fresh, v) || containsValue(o.dirty, v) {
		return
	}
	o.dirty = append(o.dirty, v)
}

// discard drops a never-stored value from the pending books.
func (o *Overlay) discard(v *types.Value) {
	o.fresh = removeValue(o.fresh, v)
	o.dirty = removeValue(o.dirty, v)
}

func containsValue(s []*types.Value, v *types.Value) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

func removeValue(s []*types.Value, v *types.Value) []*types.Value {
	for i, e := range s {
		if e == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// newUUID generates a UUID v7 string.
func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}

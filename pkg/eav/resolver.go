package eav

import "github.com/miteshsathvara1994/eavquent/pkg/types"

// IsProperty reports whether key resolves to a dynamic property on the
// host. A key is dynamic only if it is neither the name of a loaded
// native relation currently holding a value, nor the name of a physical
// column on the backing table; dynamic attributes never shadow
// schema-declared state. The first call per overlay triggers the one-shot
// load of definitions, values, and columns.
func (o *Overlay) IsProperty(key string) (bool, error) {
	if err := o.boot(); err != nil {
		return false, err
	}
	if rel, ok := o.host.Relation(key); ok && rel != nil {
		return false, nil
	}
	if o.columns[key] {
		return false, nil
	}
	_, ok := o.props[key]
	return ok, nil
}

// Definition returns the property definition with the given name from the
// loaded, name-keyed index, or false if the entity type does not define it.
func (o *Overlay) Definition(name string) (*types.Property, bool) {
	if err := o.boot(); err != nil {
		return nil, false
	}
	p, ok := o.props[name]
	return p, ok
}

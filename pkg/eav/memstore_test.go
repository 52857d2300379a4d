package eav

import (
	"errors"
	"fmt"

	"github.com/miteshsathvara1994/eavquent/pkg/types"
)

// memStore is an in-memory Store for engine tests. Rows are cloned on
// load and on write so that in-memory mutation of overlay state never
// leaks into "storage" before a flush, mirroring a real database.
type memStore struct {
	props   map[string][]*types.Property
	columns map[string]map[string]bool
	rows    map[string]*types.Value
	rowIDs  []string

	// ops records write calls in order; loads records read calls.
	ops   []string
	loads map[string]int

	failDelete error
	failInsert error
}

func newMemStore() *memStore {
	return &memStore{
		props:   make(map[string][]*types.Property),
		columns: make(map[string]map[string]bool),
		rows:    make(map[string]*types.Value),
		loads:   make(map[string]int),
	}
}

func (s *memStore) defineProperty(entityType, name string, multivalue bool) *types.Property {
	p := &types.Property{
		PropertyID: fmt.Sprintf("prop-%s-%s", entityType, name),
		EntityType: entityType,
		Name:       name,
		Multivalue: multivalue,
	}
	s.props[entityType] = append(s.props[entityType], p)
	return p
}

func (s *memStore) defineColumns(table string, names ...string) {
	cols := make(map[string]bool, len(names))
	for _, n := range names {
		cols[n] = true
	}
	s.columns[table] = cols
}

// seedValue stores a committed row directly, bypassing the overlay.
func (s *memStore) seedValue(id string, p *types.Property, entityType, entityID string, content any) {
	s.rows[id] = &types.Value{
		ValueID:    id,
		PropertyID: p.PropertyID,
		EntityType: entityType,
		EntityID:   entityID,
		Content:    content,
	}
	s.rowIDs = append(s.rowIDs, id)
}

func (s *memStore) storedContents(propertyID string) []any {
	var out []any
	for _, id := range s.rowIDs {
		if v, ok := s.rows[id]; ok && v.PropertyID == propertyID {
			out = append(out, v.Content)
		}
	}
	return out
}

func clone(v *types.Value) *types.Value {
	c := *v
	c.AttachProperty(nil)
	return &c
}

func (s *memStore) PropertiesFor(entityType string) ([]*types.Property, error) {
	s.loads["properties"]++
	return s.props[entityType], nil
}

func (s *memStore) ValuesFor(entityType, entityID string) ([]*types.Value, error) {
	s.loads["values"]++
	var out []*types.Value
	for _, id := range s.rowIDs {
		v, ok := s.rows[id]
		if ok && v.EntityType == entityType && v.EntityID == entityID {
			out = append(out, clone(v))
		}
	}
	return out, nil
}

func (s *memStore) ListColumns(table string) (map[string]bool, error) {
	s.loads["columns"]++
	cols, ok := s.columns[table]
	if !ok {
		return nil, errors.New("no such table: " + table)
	}
	return cols, nil
}

func (s *memStore) InsertValues(values []*types.Value) error {
	if s.failInsert != nil {
		return s.failInsert
	}
	for _, v := range values {
		s.ops = append(s.ops, "insert "+v.ValueID)
		s.rows[v.ValueID] = clone(v)
		s.rowIDs = append(s.rowIDs, v.ValueID)
	}
	return nil
}

func (s *memStore) UpdateValues(values []*types.Value) error {
	for _, v := range values {
		s.ops = append(s.ops, "update "+v.ValueID)
		if _, ok := s.rows[v.ValueID]; !ok {
			return errors.New("update of missing row " + v.ValueID)
		}
		s.rows[v.ValueID] = clone(v)
	}
	return nil
}

func (s *memStore) DeleteValuesByID(ids []string) (int, error) {
	if s.failDelete != nil {
		return 0, s.failDelete
	}
	count := 0
	for _, id := range ids {
		s.ops = append(s.ops, "delete "+id)
		if _, ok := s.rows[id]; ok {
			delete(s.rows, id)
			count++
		}
	}
	remaining := s.rowIDs[:0]
	for _, id := range s.rowIDs {
		if _, ok := s.rows[id]; ok {
			remaining = append(remaining, id)
		}
	}
	s.rowIDs = remaining
	return count, nil
}

var _ Store = (*memStore)(nil)

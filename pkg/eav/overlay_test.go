package eav

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miteshsathvara1994/eavquent/pkg/types"
)

func TestAttrPrecedence(t *testing.T) {
	store := testStore()
	store.defineProperty(types.ItemEntityType, "sku", false)
	store.defineProperty(types.ItemEntityType, "variants", true)

	item := testItem("item-1")
	item.SetRelation("variants", []string{"S", "M"})
	o := New(item, store)
	require.NoError(t, o.Set("sku", "A1"))

	// Loaded relation wins over everything.
	got, err := o.Attr("variants")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "M"}, got)

	// Native column next.
	got, err = o.Attr("name")
	require.NoError(t, err)
	assert.Equal(t, "Shirt", got)

	// Dynamic property last.
	got, err = o.Attr("sku")
	require.NoError(t, err)
	assert.Equal(t, "A1", got)

	_, err = o.Attr("nonexistent")
	assert.ErrorIs(t, err, types.ErrUnknownAttribute)
}

func TestSetAttrRoutes(t *testing.T) {
	store := testStore()
	store.defineProperty(types.ItemEntityType, "sku", false)
	item := testItem("item-1")
	o := New(item, store)

	require.NoError(t, o.SetAttr("sku", "A1"))
	require.NoError(t, o.SetAttr("name", "Jacket"))
	assert.Equal(t, "Jacket", item.Name)

	err := o.SetAttr("item_id", "other")
	assert.ErrorIs(t, err, types.ErrNotAssignable, "non-fillable native attributes stay protected")
}

func TestFillMergesPropertyNames(t *testing.T) {
	store := testStore()
	store.defineProperty(types.ItemEntityType, "sku", false)
	store.defineProperty(types.ItemEntityType, "colors", true)
	item := testItem("item-1")
	o := New(item, store)

	err := o.Fill(map[string]any{
		"name":   "Jacket",
		"sku":    "A1",
		"colors": []any{"red", "blue"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Jacket", item.Name)
	sku, err := o.Get("sku")
	require.NoError(t, err)
	assert.Equal(t, "A1", sku)
	colors, err := o.Get("colors")
	require.NoError(t, err)
	assert.Equal(t, []any{"red", "blue"}, colors)
}

func TestFillRejectsUnknownKeys(t *testing.T) {
	store := testStore()
	o := New(testItem("item-1"), store)

	err := o.Fill(map[string]any{"nonexistent": 1})
	assert.ErrorIs(t, err, types.ErrNotAssignable)
}

func TestAssignableNames(t *testing.T) {
	store := testStore()
	store.defineProperty(types.ItemEntityType, "sku", false)
	store.defineProperty(types.ItemEntityType, "colors", true)
	o := New(testItem("item-1"), store)

	names, err := o.AssignableNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "sku", "colors"}, names)
}

func TestSaveWritesBeforeDeletes(t *testing.T) {
	store := testStore()
	p := store.defineProperty(types.ItemEntityType, "colors", true)
	store.seedValue("val-1", p, types.ItemEntityType, "item-1", "red")
	o := New(testItem("item-1"), store)

	require.NoError(t, o.Set("colors", []any{"green"}))
	require.NoError(t, o.Save())

	require.NotEmpty(t, store.ops)
	lastInsert, firstDelete := -1, len(store.ops)
	for i, op := range store.ops {
		if strings.HasPrefix(op, "insert ") {
			lastInsert = i
		}
		if strings.HasPrefix(op, "delete ") && i < firstDelete {
			firstDelete = i
		}
	}
	assert.Less(t, lastInsert, firstDelete, "creates must land before physical deletes")
}

func TestSaveWithoutBootIsNoOp(t *testing.T) {
	store := testStore()
	o := New(testItem("item-1"), store)

	require.NoError(t, o.Save())
	assert.Empty(t, store.ops)
	assert.Zero(t, store.loads["properties"])
}

func TestSaveFlushesQueueWithoutBoot(t *testing.T) {
	store := testStore()
	p := store.defineProperty(types.ItemEntityType, "sku", false)
	store.seedValue("val-1", p, types.ItemEntityType, "item-1", "A1")
	o := New(testItem("item-1"), store)

	// Queue a row before any attribute access has booted the overlay.
	o.QueueForDeletion(&types.Value{ValueID: "val-1"})
	require.NoError(t, o.Save())
	assert.Equal(t, []string{"delete val-1"}, store.ops)
	assert.Zero(t, store.loads["properties"])
}

func TestSaveIsIdempotentWhenClean(t *testing.T) {
	store := testStore()
	store.defineProperty(types.ItemEntityType, "sku", false)
	o := New(testItem("item-1"), store)

	require.NoError(t, o.Set("sku", "A1"))
	require.NoError(t, o.Save())
	opsAfterFirst := len(store.ops)

	require.NoError(t, o.Save())
	assert.Equal(t, opsAfterFirst, len(store.ops), "a clean save should touch storage zero times")
}

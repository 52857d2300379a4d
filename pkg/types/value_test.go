package types

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestValueAttachProperty(t *testing.T) {
	p := &Property{PropertyID: "prop-1", EntityType: "item", Name: "sku"}
	v := &Value{ValueID: "val-1", PropertyID: "prop-1", EntityType: "item", EntityID: "item-1", Content: "A1"}

	if v.Property() != nil {
		t.Fatalf("Property() = %v before attach, want nil", v.Property())
	}
	v.AttachProperty(p)
	if v.Property() != p {
		t.Errorf("Property() = %v after attach, want %v", v.Property(), p)
	}
}

func TestValueSerializationExcludesBackReference(t *testing.T) {
	p := &Property{PropertyID: "prop-1", EntityType: "item", Name: "sku"}
	v := &Value{ValueID: "val-1", PropertyID: "prop-1", EntityType: "item", EntityID: "item-1", Content: "A1"}
	v.AttachProperty(p)

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), `"sku"`) {
		t.Errorf("serialized value %s includes the property definition", data)
	}
	if !strings.Contains(string(data), `"prop-1"`) {
		t.Errorf("serialized value %s is missing the property_id reference", data)
	}
}

func TestItemNativeAndAssign(t *testing.T) {
	item := &Item{ItemID: "item-1", Name: "Shirt"}

	if v, ok := item.Native("name"); !ok || v != "Shirt" {
		t.Errorf("Native(name) = %v, %v, want Shirt, true", v, ok)
	}
	if _, ok := item.Native("colors"); ok {
		t.Error("Native(colors) reported a column that does not exist")
	}

	if err := item.Assign("name", "Jacket"); err != nil {
		t.Fatalf("Assign(name) error = %v", err)
	}
	if item.Name != "Jacket" {
		t.Errorf("Name = %q after assign, want Jacket", item.Name)
	}
	if err := item.Assign("name", 42); err != ErrInvalidData {
		t.Errorf("Assign(name, 42) error = %v, want ErrInvalidData", err)
	}
	if err := item.Assign("item_id", "other"); err != ErrNotAssignable {
		t.Errorf("Assign(item_id) error = %v, want ErrNotAssignable", err)
	}
}

func TestItemRelation(t *testing.T) {
	item := &Item{ItemID: "item-1"}
	if _, ok := item.Relation("variants"); ok {
		t.Error("Relation(variants) reported loaded before SetRelation")
	}
	item.SetRelation("variants", []string{"S", "M"})
	v, ok := item.Relation("variants")
	if !ok {
		t.Fatal("Relation(variants) not loaded after SetRelation")
	}
	if got := v.([]string); len(got) != 2 {
		t.Errorf("Relation(variants) = %v, want 2 elements", got)
	}
}

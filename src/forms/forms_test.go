package forms

import (
	"net/url"
	"reflect"
	"testing"
)

func TestMapSingleValues(t *testing.T) {
	got := Map(url.Values{
		"material": {"steel-4140"},
		"length":   {"3000"},
	})
	want := map[string]any{
		"material": "steel-4140",
		"length":   "3000",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Map = %#v, want %#v", got, want)
	}
}

func TestMapRepeatedFieldsKeepOrder(t *testing.T) {
	got := Map(url.Values{
		"location": {"A-01", "B-17", "C-03"},
	})
	list, ok := got["location"].([]string)
	if !ok {
		t.Fatalf("repeated field should coalesce into []string, got %T", got["location"])
	}
	if !reflect.DeepEqual(list, []string{"A-01", "B-17", "C-03"}) {
		t.Errorf("value order not preserved: %v", list)
	}
}

func TestMapEmpty(t *testing.T) {
	if got := Map(url.Values{}); len(got) != 0 {
		t.Errorf("empty form should map to empty mapping, got %v", got)
	}
	if got := Map(url.Values{"empty": {}}); len(got) != 0 {
		t.Errorf("field with no values should be dropped, got %v", got)
	}
}

func TestMapCopiesValues(t *testing.T) {
	vals := url.Values{"bin": {"A", "B"}}
	got := Map(vals)
	vals["bin"][0] = "mutated"
	if got["bin"].([]string)[0] != "A" {
		t.Error("Map must copy repeated values")
	}
}

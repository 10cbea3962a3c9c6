package recordmap

import (
	"errors"
	"testing"
)

var testDictionary = Dictionary{
	{Name: "date", Column: "date"},
	{Name: "building", Column: "building"},
	{Name: "roomNumber", Column: "room_number"},
	{Name: "eastCampus", Column: "east_campus"},
}

func TestMapOrderAndSkipping(t *testing.T) {
	columns, values, err := testDictionary.Map(map[string]interface{}{
		"roomNumber": "B12",
		"date":       "2025-01-01",
		"ignored":    "x",
	})
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if len(columns) != 2 || columns[0] != "date" || columns[1] != "room_number" {
		t.Fatalf("expected dictionary order [date room_number], got %v", columns)
	}
	if values[0] != "2025-01-01" || values[1] != "B12" {
		t.Fatalf("unexpected values %v", values)
	}
}

func TestMapEmptyStringBecomesNull(t *testing.T) {
	columns, values, err := testDictionary.Map(map[string]interface{}{
		"date":     "2025-01-01",
		"building": "",
	})
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if len(columns) != 2 || columns[1] != "building" {
		t.Fatalf("expected building column, got %v", columns)
	}
	if values[1] != nil {
		t.Fatalf("expected nil for empty string, got %v", values[1])
	}
}

func TestMapBooleansPassThrough(t *testing.T) {
	_, values, err := testDictionary.Map(map[string]interface{}{
		"eastCampus": true,
	})
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if v, ok := values[0].(bool); !ok || !v {
		t.Fatalf("expected typed boolean, got %T %v", values[0], values[0])
	}
}

func TestMapEmptyRecord(t *testing.T) {
	_, _, err := testDictionary.Map(map[string]interface{}{"unknownField": "x"})
	if !errors.Is(err, ErrEmptyRecord) {
		t.Fatalf("expected ErrEmptyRecord, got %v", err)
	}

	_, _, err = testDictionary.Map(map[string]interface{}{})
	if !errors.Is(err, ErrEmptyRecord) {
		t.Fatalf("expected ErrEmptyRecord for empty input, got %v", err)
	}
}

func TestReplaceMapCoversEveryColumn(t *testing.T) {
	set, err := testDictionary.ReplaceMap(map[string]interface{}{
		"building":   "Solomon House",
		"roomNumber": "",
		"unknown":    "x",
	})
	if err != nil {
		t.Fatalf("ReplaceMap: %v", err)
	}
	if len(set) != len(testDictionary) {
		t.Fatalf("expected every dictionary column, got %v", set)
	}
	if set["building"] != "Solomon House" {
		t.Fatalf("unexpected building value %v", set["building"])
	}
	if v := set["room_number"]; v != nil {
		t.Fatalf("expected nil room_number, got %v", v)
	}
	if v, ok := set["date"]; !ok || v != nil {
		t.Fatalf("expected omitted date to be nil, got %v", v)
	}
	if v, ok := set["east_campus"]; !ok || v != nil {
		t.Fatalf("expected omitted east_campus to be nil, got %v", v)
	}
}

func TestReplaceMapEmptyRecord(t *testing.T) {
	if _, err := testDictionary.ReplaceMap(map[string]interface{}{"nope": 1}); !errors.Is(err, ErrEmptyRecord) {
		t.Fatalf("expected ErrEmptyRecord, got %v", err)
	}
}

func TestPlaceholders(t *testing.T) {
	got := Placeholders(3)
	want := []string{"$1", "$2", "$3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if len(Placeholders(0)) != 0 {
		t.Fatal("expected empty slice for zero")
	}
}

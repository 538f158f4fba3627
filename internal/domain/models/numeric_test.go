package models

import (
	"encoding/json"
	"testing"
)

func TestFlexFloatUnmarshal(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  FlexFloat
	}{
		{name: "plain number", input: `245.5`, want: 245.5},
		{name: "quoted number", input: `"245.50"`, want: 245.5},
		{name: "quoted integer", input: `"80"`, want: 80},
		{name: "thousands separators", input: `"1,250.75"`, want: 1250.75},
		{name: "null", input: `null`, want: 0},
		{name: "empty string", input: `""`, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got FlexFloat
			if err := json.Unmarshal([]byte(tc.input), &got); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFlexFloatUnmarshalRejectsGarbage(t *testing.T) {
	var got FlexFloat
	if err := json.Unmarshal([]byte(`"not a number"`), &got); err == nil {
		t.Fatal("expected error for non-numeric string")
	}
}

func TestFlexFloatMarshalEmitsNumber(t *testing.T) {
	out, err := json.Marshal(FlexFloat(245.5))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "245.5" {
		t.Fatalf("got %s, want 245.5", out)
	}
}

func TestFlexIntUnmarshal(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  FlexInt
	}{
		{name: "plain number", input: `3`, want: 3},
		{name: "quoted number", input: `"12"`, want: 12},
		{name: "quoted float truncates", input: `"2.0"`, want: 2},
		{name: "null", input: `null`, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got FlexInt
			if err := json.Unmarshal([]byte(tc.input), &got); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestInventoryItemWeightFromString(t *testing.T) {
	payload := []byte(`{"id":"x","animal_id":"A-1","animal_type":"sheep","breed":"Katahdin","current_weight":"245.50"}`)

	var item InventoryItem
	if err := json.Unmarshal(payload, &item); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if item.CurrentWeight != 245.5 {
		t.Fatalf("current_weight = %v, want 245.5", item.CurrentWeight)
	}
}

package pricing

import (
	"encoding/json"
	"testing"
)

func TestNormalize_ArrayOfObjects(t *testing.T) {
	raw := json.RawMessage(`[{"name":"Small","price":50},{"name":"Large","price":90}]`)

	got := Normalize(raw)
	if len(got) != 2 {
		t.Fatalf("expected 2 variations, got %d", len(got))
	}
	if got[0].Name != "Small" || got[0].Price == nil || *got[0].Price != 50 {
		t.Errorf("unexpected first entry: %+v", got[0])
	}
	if got[1].ID != "Large" {
		t.Errorf("id should fall back to name, got %q", got[1].ID)
	}
}

func TestNormalize_FlatMap(t *testing.T) {
	raw := json.RawMessage(`{"Small":50,"Large":90}`)

	got := Normalize(raw)
	if len(got) != 2 {
		t.Fatalf("expected 2 variations, got %d", len(got))
	}
	// map keys are walked in sorted order for determinism
	if got[0].Name != "Large" || got[1].Name != "Small" {
		t.Errorf("unexpected order: %q, %q", got[0].Name, got[1].Name)
	}
	if got[1].Price == nil || *got[1].Price != 50 {
		t.Errorf("unexpected Small price: %+v", got[1])
	}
}

func TestNormalize_NestedMap(t *testing.T) {
	raw := json.RawMessage(`{"Egg":{"variations":[{"weight":"500g","price":300},{"weight":"1kg","price":550}]},"Eggless":{"variations":[{"weight":"500g","price":330}]}}`)

	got := Normalize(raw)
	if len(got) != 2 {
		t.Fatalf("expected 2 variations, got %d", len(got))
	}
	egg := got[0]
	if egg.Name != "Egg" || !egg.HasNested() {
		t.Fatalf("unexpected entry: %+v", egg)
	}
	if len(egg.Nested) != 2 || egg.Nested[1].Weight != "1kg" || egg.Nested[1].Price != 550 {
		t.Errorf("unexpected nested options: %+v", egg.Nested)
	}
}

func TestNormalize_WeightOptions(t *testing.T) {
	raw := json.RawMessage(`[{"weight_grams":500,"price":250},{"weight_grams":1000,"price":450}]`)

	got := Normalize(raw)
	if len(got) != 2 {
		t.Fatalf("expected 2 variations, got %d", len(got))
	}
	if got[0].ID != "500" || got[0].WeightGrams != 500 {
		t.Errorf("id should come from weight_grams: %+v", got[0])
	}
	if got[0].Name != "500g" || got[1].Name != "1kg" {
		t.Errorf("weight entries should carry formatted labels: %q, %q", got[0].Name, got[1].Name)
	}
}

func TestNormalize_IDPrecedence(t *testing.T) {
	raw := json.RawMessage(`[
		{"id":"v-1","name":"Named","weight_grams":500,"price":10},
		{"weight_grams":750,"price":20},
		{"name":"OnlyName","price":30},
		{"price":40}
	]`)

	got := Normalize(raw)
	if len(got) != 4 {
		t.Fatalf("expected 4 variations, got %d", len(got))
	}
	want := []string{"v-1", "750", "OnlyName", "Option 4"}
	for i, w := range want {
		if got[i].ID != w {
			t.Errorf("entry %d: id = %q, want %q", i, got[i].ID, w)
		}
	}
}

func TestNormalize_MalformedInput(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{"empty", ``, 0},
		{"null", `null`, 0},
		{"scalar", `42`, 0},
		{"string", `"oops"`, 0},
		{"unusable map value", `{"Weird":[1,2,3]}`, 1},
		{"nested entries missing fields", `{"Egg":{"variations":[{"weight":"500g"},{"price":10},{"weight":"1kg","price":550}]}}`, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(json.RawMessage(tc.raw))
			if len(got) != tc.want {
				t.Fatalf("expected %d entries, got %d (%+v)", tc.want, len(got), got)
			}
		})
	}
}

func TestNormalize_MalformedNestedKeepsUsableOptions(t *testing.T) {
	raw := json.RawMessage(`{"Egg":{"variations":[{"weight":"500g"},{"weight":"1kg","price":550}]}}`)

	got := Normalize(raw)
	if len(got) != 1 || len(got[0].Nested) != 1 {
		t.Fatalf("expected a single usable nested option, got %+v", got)
	}
	if got[0].Nested[0].Weight != "1kg" {
		t.Errorf("kept the wrong option: %+v", got[0].Nested[0])
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	raw := json.RawMessage(`{"Vanilla":55,"Chocolate":60,"Butterscotch":65}`)

	first := Normalize(raw)
	second := Normalize(raw)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID || first[i].Name != second[i].Name {
			t.Fatalf("entry %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

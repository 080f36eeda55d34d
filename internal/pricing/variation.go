package pricing

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// WeightOption is a nested weight choice under a named variation,
// e.g. {"weight": "500g", "price": 300}.
type WeightOption struct {
	Weight string  `json:"weight"`
	Price  float64 `json:"price"`
}

// Variation is the single internal shape every raw catalog format is
// normalized into before any pricing logic runs.
type Variation struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Price       *float64       `json:"price,omitempty"`
	WeightGrams int            `json:"weight_grams,omitempty"`
	Nested      []WeightOption `json:"variations,omitempty"`
}

// HasNested reports whether the variation's price depends on a nested weight
// choice. Once nested options exist the variation's own price is never used.
func (v Variation) HasNested() bool {
	return len(v.Nested) > 0
}

// Normalize accepts the raw variation payload of a product in any of the
// shapes the admin-editable catalog has been observed to hold:
//
//	[{"name":"Small","price":50}, ...]
//	{"Small": 50, "Large": 90}
//	{"Egg": {"variations":[{"weight":"500g","price":300}]}, ...}
//	[{"weight_grams":500,"price":250}, ...]
//
// Unrecognized shapes degrade gracefully: entries are skipped or given a
// synthesized label, never an error. Map input is walked in sorted key order
// so the result is deterministic.
func Normalize(raw json.RawMessage) []Variation {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var list []map[string]interface{}
	if err := json.Unmarshal(raw, &list); err == nil {
		return normalizeList(list)
	}

	var obj map[string]interface{}
	if err := json.Unmarshal(raw, &obj); err == nil {
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		list = make([]map[string]interface{}, 0, len(obj))
		for _, k := range keys {
			switch val := obj[k].(type) {
			case float64:
				// {"Small": 50} -> {name: Small, price: 50}
				list = append(list, map[string]interface{}{"name": k, "price": val})
			case map[string]interface{}:
				entry := map[string]interface{}{"name": k}
				for kk, vv := range val {
					if kk != "name" {
						entry[kk] = vv
					}
				}
				list = append(list, entry)
			default:
				// unusable value, keep the label so the option still renders
				list = append(list, map[string]interface{}{"name": k})
			}
		}
		return normalizeList(list)
	}

	return nil
}

func normalizeList(list []map[string]interface{}) []Variation {
	out := make([]Variation, 0, len(list))
	for idx, item := range list {
		if item == nil {
			continue
		}

		v := Variation{Name: entryName(item, idx)}

		if p, ok := numberField(item, "price"); ok {
			price := p
			v.Price = &price
		}
		if g, ok := numberField(item, "weight_grams"); ok && g > 0 {
			v.WeightGrams = int(g)
			if v.Name == fmt.Sprintf("Option %d", idx+1) {
				v.Name = FormatWeightGrams(v.WeightGrams)
			}
		}
		v.Nested = nestedOptions(item)
		v.ID = entryID(item, v, idx)

		out = append(out, v)
	}
	return out
}

// entryID derives a stable, non-colliding key: explicit id, else weight in
// grams, else name, else positional index — in that precedence order.
func entryID(item map[string]interface{}, v Variation, idx int) string {
	if id, ok := item["id"]; ok {
		switch t := id.(type) {
		case string:
			if t != "" {
				return t
			}
		case float64:
			return strconv.FormatFloat(t, 'f', -1, 64)
		}
	}
	if v.WeightGrams > 0 {
		return strconv.Itoa(v.WeightGrams)
	}
	if v.Name != "" {
		return v.Name
	}
	return strconv.Itoa(idx)
}

func entryName(item map[string]interface{}, idx int) string {
	for _, key := range []string{"name", "type", "label", "title"} {
		if s, ok := item[key].(string); ok && s != "" {
			return s
		}
	}
	return fmt.Sprintf("Option %d", idx+1)
}

func numberField(item map[string]interface{}, key string) (float64, bool) {
	switch t := item[key].(type) {
	case float64:
		return t, true
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func nestedOptions(item map[string]interface{}) []WeightOption {
	rawNested, ok := item["variations"].([]interface{})
	if !ok {
		return nil
	}

	out := make([]WeightOption, 0, len(rawNested))
	for _, rn := range rawNested {
		m, ok := rn.(map[string]interface{})
		if !ok {
			continue
		}
		w, _ := m["weight"].(string)
		p, okPrice := numberField(m, "price")
		if w == "" || !okPrice {
			continue
		}
		out = append(out, WeightOption{Weight: w, Price: p})
	}
	return out
}

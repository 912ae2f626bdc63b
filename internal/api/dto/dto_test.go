package dto

import (
	"encoding/json"
	"testing"
)

func TestPriceInputAcceptsStringsAndNumbers(t *testing.T) {
	cases := map[string]PriceInput{
		`{"price":"$5/mo"}`: "$5/mo",
		`{"price":9.99}`:    "9.99",
		`{"price":120}`:     "120",
		`{"price":null}`:    "",
	}
	for body, want := range cases {
		var req ServiceRequest
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatalf("%s: %v", body, err)
		}
		if req.Price != want {
			t.Errorf("%s: got %q, want %q", body, req.Price, want)
		}
	}

	var req ServiceRequest
	if err := json.Unmarshal([]byte(`{"price":true}`), &req); err == nil {
		t.Fatalf("expected error for boolean price")
	}
}

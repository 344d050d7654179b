package models

import (
	"encoding/json"
	"testing"
)

func TestMoneyMulExact(t *testing.T) {
	price, err := NewMoneyFromString("19.99")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	total := price.Mul(3)
	if total.String() != "59.97" {
		t.Fatalf("want 59.97, got %s", total.String())
	}
	// the classic float trap: 0.1 * 3
	tenth, err := NewMoneyFromString("0.10")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := tenth.Mul(3).String(); got != "0.30" {
		t.Fatalf("want 0.30, got %s", got)
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	price, err := NewMoneyFromString("5.5")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	raw, err := json.Marshal(price)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"5.50"` {
		t.Fatalf("want \"5.50\", got %s", raw)
	}

	var fromString Money
	if err := json.Unmarshal([]byte(`"12.34"`), &fromString); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if fromString.String() != "12.34" {
		t.Fatalf("want 12.34, got %s", fromString.String())
	}

	var fromNumber Money
	if err := json.Unmarshal([]byte(`12.3`), &fromNumber); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if fromNumber.String() != "12.30" {
		t.Fatalf("want 12.30, got %s", fromNumber.String())
	}
}

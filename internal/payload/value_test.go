package payload

import (
	"encoding/json"
	"testing"
)

func TestAsInt(t *testing.T) {
	if n, ok := AsInt(json.Number("2")); !ok || n != 2 {
		t.Fatalf("expected 2, got %d ok=%v", n, ok)
	}
	if _, ok := AsInt(json.Number("2.0")); ok {
		t.Fatal("float literal must not pass as integer")
	}
	if _, ok := AsInt(true); ok {
		t.Fatal("bool must not pass as integer")
	}
	if _, ok := AsInt("2"); ok {
		t.Fatal("string must not pass as integer")
	}
}

func TestAsNumber(t *testing.T) {
	if f, ok := AsNumber(json.Number("1.50")); !ok || f != 1.5 {
		t.Fatalf("expected 1.5, got %f ok=%v", f, ok)
	}
	if f, ok := AsNumber(json.Number("3")); !ok || f != 3 {
		t.Fatalf("integers are numbers too, got %f ok=%v", f, ok)
	}
	if _, ok := AsNumber(true); ok {
		t.Fatal("bool must not pass as number")
	}
	if _, ok := AsNumber("1.5"); ok {
		t.Fatal("string must not pass as number")
	}
}

func TestAsString(t *testing.T) {
	if s, ok := AsString("card"); !ok || s != "card" {
		t.Fatalf("expected card, got %q ok=%v", s, ok)
	}
	if _, ok := AsString(json.Number("1")); ok {
		t.Fatal("number must not pass as string")
	}
}

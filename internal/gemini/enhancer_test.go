package gemini

import (
	"context"
	"testing"
)

func TestEnhanceFallsBackWithoutCredential(t *testing.T) {
	for _, key := range []string{"", "undefined", `""`} {
		e := NewEnhancer(key, "")
		got := e.Enhance(context.Background(), "Eternal Diamond Band", "Rings")
		if got != FallbackDescription {
			t.Fatalf("key %q: got %q, want fallback", key, got)
		}
	}
}

func TestNewEnhancerDefaultsModel(t *testing.T) {
	e := NewEnhancer("k", "")
	if e.Model != "gemini-3-flash-preview" {
		t.Fatalf("default model = %q", e.Model)
	}
}

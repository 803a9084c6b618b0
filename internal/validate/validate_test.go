package validate

import "testing"

func TestQtyClamp(t *testing.T) {
	cases := []struct{ in, want int }{
		{-3, 1}, {0, 1}, {1, 1}, {7, 7}, {50, 50}, {999, 50},
	}
	for _, c := range cases {
		if got := Qty(c.in); got != c.want {
			t.Fatalf("Qty(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestEmail(t *testing.T) {
	if _, ok := Email("priya@example.com"); !ok {
		t.Fatal("plain address should pass")
	}
	for _, bad := range []string{"", "not-an-email", "a@b", "  "} {
		if _, ok := Email(bad); ok {
			t.Fatalf("%q should fail", bad)
		}
	}
}

func TestDueDate(t *testing.T) {
	if _, ok := DueDate("2026-12-01"); !ok {
		t.Fatal("ISO date should pass")
	}
	for _, bad := range []string{"01-12-2026", "2026/12/01", "tomorrow"} {
		if _, ok := DueDate(bad); ok {
			t.Fatalf("%q should fail", bad)
		}
	}
}

func TestDataURI(t *testing.T) {
	if _, ok := DataURI("data:image/png;base64,AAAA"); !ok {
		t.Fatal("image data uri should pass")
	}
	if _, ok := DataURI("javascript:alert(1)"); ok {
		t.Fatal("non-image payload should fail")
	}
}

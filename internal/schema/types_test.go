package schema

import "testing"

func TestQuoteIdent(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"city", `"city"`},
		{`we"ird`, `"we""ird"`},
		{"", `""`},
	}
	for _, tt := range tests {
		if got := QuoteIdent(tt.in); got != tt.want {
			t.Errorf("QuoteIdent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTableCols(t *testing.T) {
	cols := Reservations.Cols("res")
	if len(cols) != len(Reservations.Columns) {
		t.Fatalf("expected %d columns, got %d", len(Reservations.Columns), len(cols))
	}
	if cols[0] != `"res"."id"` {
		t.Fatalf("unexpected first column %q", cols[0])
	}
	if got := Properties.As("p"); got != `"properties" "p"` {
		t.Fatalf("unexpected table reference %q", got)
	}
}

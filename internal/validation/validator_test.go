package validation

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Email string   `json:"email" validate:"required,email"`
	Score *float64 `json:"score,omitempty" validate:"omitempty,gte=0,lte=5"`
	Plain int      `validate:"gte=1"`
}

func TestStructValid(t *testing.T) {
	score := 0.0
	if err := Struct(sample{Email: "a@b.co", Score: &score, Plain: 1}); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestStructNamesFieldsByJSONKey(t *testing.T) {
	score := 7.0
	err := Struct(sample{Email: "nope", Score: &score})

	var ve Errors
	if !errors.As(err, &ve) {
		t.Fatalf("expected Errors, got %T: %v", err, err)
	}
	if len(ve) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(ve), ve)
	}

	fields := map[string]string{}
	for _, fe := range ve {
		fields[fe.Field] = fe.Tag
	}
	if fields["email"] != "email" {
		t.Errorf("expected email tag failure on email, got %v", fields)
	}
	if fields["score"] != "lte" {
		t.Errorf("expected lte failure on score, got %v", fields)
	}
	if fields["Plain"] != "gte" {
		t.Errorf("expected gte failure on Plain (no json tag), got %v", fields)
	}
	if !strings.Contains(err.Error(), "score must be less than or equal to 5") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestStructNilPointerSkipped(t *testing.T) {
	if err := Struct(sample{Email: "a@b.co", Plain: 2}); err != nil {
		t.Fatalf("nil optional field should be skipped, got %v", err)
	}
}

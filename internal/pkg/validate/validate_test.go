package validate

import (
	"reflect"
	"testing"

	"elextrio-site/internal/domain"
	"elextrio-site/internal/domain/contact"
)

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Struct(contact.Submission{Name: "A", Email: "b@c.com"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "message is required" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	got := v.Fields(contact.Submission{})
	want := []string{"name", "email", "message"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected fields: %v", got)
	}

	if err := v.Struct(contact.Submission{Name: "A", Email: "b@c.com", Message: "hi"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

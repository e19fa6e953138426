package domain

import (
	"testing"
	"time"
)

func validDraft() RecordDraft {
	return RecordDraft{
		Date: time.Date(2023, time.June, 12, 0, 0, 0, 0, time.UTC),
		Hour: 8,
		Note: []string{"worked on reports"},
	}
}

func fieldMessage(errs []FieldError, field string) string {
	for _, fe := range errs {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

func TestValidateRecordAcceptsValidDraft(t *testing.T) {
	if errs := ValidateRecord(validDraft(), RoleEmployee); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateRecordMissingDate(t *testing.T) {
	draft := validDraft()
	draft.Date = time.Time{}

	errs := ValidateRecord(draft, RoleEmployee)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if got := fieldMessage(errs, "date"); got != "Date required." {
		t.Fatalf("date message = %q", got)
	}
}

func TestValidateRecordMissingNote(t *testing.T) {
	draft := validDraft()
	draft.Note = nil

	errs := ValidateRecord(draft, RoleEmployee)
	if got := fieldMessage(errs, "note"); got != "Note required." {
		t.Fatalf("note message = %q", got)
	}
}

func TestValidateRecordHourZeroIsRequired(t *testing.T) {
	draft := validDraft()
	draft.Hour = 0

	errs := ValidateRecord(draft, RoleEmployee)
	if got := fieldMessage(errs, "hour"); got != "Hour required." {
		t.Fatalf("hour message = %q, want required", got)
	}
}

func TestValidateRecordHourOutOfRange(t *testing.T) {
	for _, hour := range []int{-1, 25, 30} {
		draft := validDraft()
		draft.Hour = hour

		errs := ValidateRecord(draft, RoleEmployee)
		if len(errs) != 1 {
			t.Fatalf("hour=%d: expected 1 error, got %v", hour, errs)
		}
		if got := fieldMessage(errs, "hour"); got != "Hour should be between 1 and 24." {
			t.Fatalf("hour=%d: message = %q", hour, got)
		}
	}
}

func TestValidateRecordHourBoundaries(t *testing.T) {
	for _, hour := range []int{1, 24} {
		draft := validDraft()
		draft.Hour = hour
		if errs := ValidateRecord(draft, RoleEmployee); len(errs) != 0 {
			t.Fatalf("hour=%d: expected no errors, got %v", hour, errs)
		}
	}
}

func TestValidateRecordAdminMustNameUser(t *testing.T) {
	draft := validDraft()

	errs := ValidateRecord(draft, RoleAdmin)
	if got := fieldMessage(errs, "user"); got != "User required." {
		t.Fatalf("user message = %q", got)
	}

	draft.UserID = "user_7"
	if errs := ValidateRecord(draft, RoleAdmin); len(errs) != 0 {
		t.Fatalf("expected no errors with user set, got %v", errs)
	}
}

func TestValidateRecordNonAdminSkipsUserRule(t *testing.T) {
	for _, role := range []Role{RoleManager, RoleEmployee} {
		if errs := ValidateRecord(validDraft(), role); len(errs) != 0 {
			t.Fatalf("role=%s: expected no errors, got %v", role, errs)
		}
	}
}

func TestValidateRecordCollectsAllViolations(t *testing.T) {
	errs := ValidateRecord(RecordDraft{}, RoleAdmin)
	if len(errs) != 4 {
		t.Fatalf("expected 4 errors (date, note, hour, user), got %v", errs)
	}
}

func TestValidationErrorJoinsMessages(t *testing.T) {
	err := &ValidationError{Fields: ValidateRecord(RecordDraft{}, RoleEmployee)}
	want := "Date required. Note required. Hour required."
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestValidationErrorFieldFor(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{{Field: "hour", Message: "Hour required."}}}
	if err.FieldFor("hour") != "Hour required." {
		t.Fatalf("FieldFor(hour) = %q", err.FieldFor("hour"))
	}
	if err.FieldFor("date") != "" {
		t.Fatalf("FieldFor(date) should be empty")
	}
}

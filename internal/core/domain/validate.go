package domain

import (
	"strings"
	"time"
)

// RecordDraft is the candidate payload checked before any record mutation.
// A zero Date, zero Hour, or empty Note means the field was not supplied.
type RecordDraft struct {
	Date   time.Time
	Hour   int
	Note   []string
	UserID string
}

// FieldError is a single violated field rule.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries every violated field at once. The structured list
// is the source of truth; Error() collapses it for display only.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, " ")
}

// FieldFor returns the message for a field, or "" when the field passed.
func (e *ValidationError) FieldFor(field string) string {
	for _, fe := range e.Fields {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// ValidateRecord checks a record draft against the field rules. It is pure,
// and runs identically on the create and update paths.
//
// Rules:
//   - date, note and hour are required.
//   - hour must be within [1, 24].
//   - admins must name the owning user explicitly; for everyone else the
//     owner is implied to be the actor and must not be validated here.
//
// Whether an admin-supplied user id resolves to a real user is checked by the
// service, which appends the same "User required." error on lookup failure.
func ValidateRecord(draft RecordDraft, actorRole Role) []FieldError {
	var errs []FieldError

	if draft.Date.IsZero() {
		errs = append(errs, FieldError{Field: "date", Message: "Date required."})
	}
	if len(draft.Note) == 0 {
		errs = append(errs, FieldError{Field: "note", Message: "Note required."})
	}
	switch {
	case draft.Hour == 0:
		errs = append(errs, FieldError{Field: "hour", Message: "Hour required."})
	case draft.Hour < 1 || draft.Hour > 24:
		errs = append(errs, FieldError{Field: "hour", Message: "Hour should be between 1 and 24."})
	}
	if actorRole == RoleAdmin && draft.UserID == "" {
		errs = append(errs, FieldError{Field: "user", Message: "User required."})
	}

	return errs
}

// UserRequiredError is the validation failure for an admin-supplied user
// reference that does not resolve to a concrete identity.
func UserRequiredError() *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: "user", Message: "User required."}}}
}

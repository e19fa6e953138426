package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/clockwise/timetracker/internal/core/domain"
)

func TestSetPreferredHours(t *testing.T) {
	users := newStubUserRepo(&domain.User{ID: "mgr_1", Role: domain.RoleManager, PreferredWorkingHours: 8})
	svc := NewUserService(users, zerolog.Nop())

	if err := svc.SetPreferredHours(context.Background(), managerActor, 6); err != nil {
		t.Fatalf("SetPreferredHours: %v", err)
	}
	u, _ := users.FindByID(context.Background(), "mgr_1")
	if u.PreferredWorkingHours != 6 {
		t.Fatalf("threshold = %d, want 6", u.PreferredWorkingHours)
	}
}

func TestSetPreferredHoursEmployeeForbidden(t *testing.T) {
	users := newStubUserRepo(&domain.User{ID: "emp_1", Role: domain.RoleEmployee})
	svc := NewUserService(users, zerolog.Nop())

	err := svc.SetPreferredHours(context.Background(), employeeActor, 6)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestSetPreferredHoursRange(t *testing.T) {
	users := newStubUserRepo(&domain.User{ID: "mgr_1", Role: domain.RoleManager})
	svc := NewUserService(users, zerolog.Nop())

	for _, hours := range []int{0, -1, 25} {
		err := svc.SetPreferredHours(context.Background(), managerActor, hours)
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("hours=%d: expected ValidationError, got %v", hours, err)
		}
		if ve.FieldFor("preferred_working_hours") != "Hour should be between 1 and 24." {
			t.Fatalf("hours=%d: unexpected violations %+v", hours, ve.Fields)
		}
	}

	for _, hours := range []int{1, 24} {
		if err := svc.SetPreferredHours(context.Background(), managerActor, hours); err != nil {
			t.Fatalf("hours=%d: %v", hours, err)
		}
	}
}

func TestSearchUsersAdminOnly(t *testing.T) {
	users := newStubUserRepo(
		&domain.User{ID: "emp_1", FirstName: "Eve", LastName: "Adams", Role: domain.RoleEmployee},
		&domain.User{ID: "emp_2", FirstName: "Bob", LastName: "Brown", Role: domain.RoleEmployee},
	)
	svc := NewUserService(users, zerolog.Nop())

	if _, err := svc.SearchUsers(context.Background(), managerActor, "eve"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("manager search: expected ErrForbidden, got %v", err)
	}

	found, err := svc.SearchUsers(context.Background(), adminActor, "eve")
	if err != nil {
		t.Fatalf("admin search: %v", err)
	}
	if len(found) != 1 || found[0].FullName != "Eve Adams" {
		t.Fatalf("search result = %+v", found)
	}
}

package domain

import (
	"errors"
	"testing"
)

func TestRoleRankOrdering(t *testing.T) {
	if !(RoleAdmin.Rank() < RoleManager.Rank() && RoleManager.Rank() < RoleEmployee.Rank()) {
		t.Fatalf("rank ordering broken: admin=%d manager=%d employee=%d",
			RoleAdmin.Rank(), RoleManager.Rank(), RoleEmployee.Rank())
	}
}

func TestRoleAtLeast(t *testing.T) {
	cases := []struct {
		role      Role
		threshold Role
		want      bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleManager, true},
		{RoleAdmin, RoleEmployee, true},
		{RoleManager, RoleAdmin, false},
		{RoleManager, RoleManager, true},
		{RoleManager, RoleEmployee, true},
		{RoleEmployee, RoleAdmin, false},
		{RoleEmployee, RoleManager, false},
		{RoleEmployee, RoleEmployee, true},
	}
	for _, tc := range cases {
		if got := tc.role.AtLeast(tc.threshold); got != tc.want {
			t.Errorf("%s.AtLeast(%s) = %v, want %v", tc.role, tc.threshold, got, tc.want)
		}
	}
}

func TestParseRoleRoundTrip(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleManager, RoleEmployee} {
		parsed, err := ParseRole(r.String())
		if err != nil {
			t.Fatalf("ParseRole(%q): %v", r.String(), err)
		}
		if parsed != r {
			t.Fatalf("ParseRole(%q) = %v, want %v", r.String(), parsed, r)
		}
	}
}

func TestParseRoleRejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "Admin", "superuser", "ADMIN"} {
		if _, err := ParseRole(s); !errors.Is(err, ErrUnknownRole) {
			t.Errorf("ParseRole(%q) err = %v, want ErrUnknownRole", s, err)
		}
	}
}

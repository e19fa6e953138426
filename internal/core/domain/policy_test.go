package domain

import "testing"

func TestVisibleOwner(t *testing.T) {
	admin := Actor{ID: "admin_1", Role: RoleAdmin}
	manager := Actor{ID: "mgr_1", Role: RoleManager}
	employee := Actor{ID: "emp_1", Role: RoleEmployee}

	if got := admin.VisibleOwner(""); got != "" {
		t.Fatalf("admin unfiltered scope = %q, want unrestricted", got)
	}
	if got := admin.VisibleOwner("emp_1"); got != "emp_1" {
		t.Fatalf("admin filtered scope = %q, want emp_1", got)
	}
	// Below Admin the filter is ignored, never widened.
	if got := manager.VisibleOwner("emp_1"); got != "mgr_1" {
		t.Fatalf("manager scope = %q, want self", got)
	}
	if got := employee.VisibleOwner(""); got != "emp_1" {
		t.Fatalf("employee scope = %q, want self", got)
	}
}

func TestCanSeeAll(t *testing.T) {
	if !(Actor{Role: RoleAdmin}).CanSeeAll() {
		t.Fatalf("admin should see all")
	}
	if (Actor{Role: RoleManager}).CanSeeAll() {
		t.Fatalf("manager must not see all")
	}
	if (Actor{Role: RoleEmployee}).CanSeeAll() {
		t.Fatalf("employee must not see all")
	}
}

func TestMayAccess(t *testing.T) {
	ops := []Operation{OpList, OpRead, OpCreate, OpUpdate, OpDelete, OpExport}

	admin := Actor{ID: "admin_1", Role: RoleAdmin}
	manager := Actor{ID: "mgr_1", Role: RoleManager}

	for _, op := range ops {
		if !admin.MayAccess(op, "someone_else") {
			t.Fatalf("admin denied op %d on foreign record", op)
		}
		if !manager.MayAccess(op, "mgr_1") {
			t.Fatalf("manager denied op %d on own record", op)
		}
		if manager.MayAccess(op, "emp_1") {
			t.Fatalf("manager allowed op %d on foreign record", op)
		}
	}
}

func TestMaySetOwner(t *testing.T) {
	admin := Actor{ID: "admin_1", Role: RoleAdmin}
	employee := Actor{ID: "emp_1", Role: RoleEmployee}

	if !admin.MaySetOwner("anyone") {
		t.Fatalf("admin may target any owner")
	}
	if !employee.MaySetOwner("") {
		t.Fatalf("empty owner means self and is always allowed")
	}
	if !employee.MaySetOwner("emp_1") {
		t.Fatalf("naming oneself explicitly is allowed")
	}
	if employee.MaySetOwner("emp_2") {
		t.Fatalf("employee must not target another owner")
	}
}

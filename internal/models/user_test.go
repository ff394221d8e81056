package models

import "testing"

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleManager, RoleTrader, RoleAnalyst, RoleViewer} {
		if !r.Valid() {
			t.Errorf("expected role %q to be valid", r)
		}
	}

	for _, r := range []Role{"", "superuser", "Admin"} {
		if r.Valid() {
			t.Errorf("expected role %q to be invalid", r)
		}
	}
}

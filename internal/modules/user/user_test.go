package user

import "testing"

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"Public", "Inventory clerk", "Salesperson", "Manager", "Owner"} {
		role, err := ParseRole(valid)
		if err != nil {
			t.Fatalf("ParseRole(%q) returned error: %v", valid, err)
		}
		if string(role) != valid {
			t.Fatalf("ParseRole(%q) = %q", valid, role)
		}
	}

	for _, invalid := range []string{"", "owner", "Admin", "inventory clerk"} {
		if _, err := ParseRole(invalid); err == nil {
			t.Fatalf("ParseRole(%q) should fail", invalid)
		}
	}
}

func TestRoleSearchCapabilities(t *testing.T) {
	cases := []struct {
		role     Role
		byVIN    bool
		byStatus bool
	}{
		{RolePublic, false, false},
		{RoleInventoryClerk, true, false},
		{RoleSalesperson, true, false},
		{RoleManager, true, true},
		{RoleOwner, true, true},
	}
	for _, tc := range cases {
		if got := tc.role.CanFilterByVIN(); got != tc.byVIN {
			t.Errorf("%s CanFilterByVIN = %v, want %v", tc.role, got, tc.byVIN)
		}
		if got := tc.role.CanFilterByStatus(); got != tc.byStatus {
			t.Errorf("%s CanFilterByStatus = %v, want %v", tc.role, got, tc.byStatus)
		}
	}
}

package parts

import "testing"

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to PartStatus
		want     bool
	}{
		{StatusOrdered, StatusReceived, true},
		{StatusOrdered, StatusInstalled, true},
		{StatusReceived, StatusInstalled, true},

		{StatusOrdered, StatusOrdered, false},
		{StatusReceived, StatusOrdered, false},
		{StatusReceived, StatusReceived, false},
		{StatusInstalled, StatusOrdered, false},
		{StatusInstalled, StatusReceived, false},
		{StatusInstalled, StatusInstalled, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"Ordered", "Received", "Installed"} {
		status, err := ParseStatus(valid)
		if err != nil {
			t.Fatalf("ParseStatus(%q) returned error: %v", valid, err)
		}
		if string(status) != valid {
			t.Fatalf("ParseStatus(%q) = %q", valid, status)
		}
	}

	for _, invalid := range []string{"", "ordered", "Shipped", "Cancelled"} {
		if _, err := ParseStatus(invalid); err == nil {
			t.Fatalf("ParseStatus(%q) should fail", invalid)
		}
	}
}

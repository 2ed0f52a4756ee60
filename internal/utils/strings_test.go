package utils

import "testing"

func TestNormalizeStopName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"City Center", "City Center"},
		{"  City   Center ", "City Center"},
		{"\tHarbor\n", "Harbor"},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := NormalizeStopName(tc.in); got != tc.want {
			t.Fatalf("NormalizeStopName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEmailsEqual(t *testing.T) {
	if !EmailsEqual("Ali@Example.com ", "ali@example.com") {
		t.Fatalf("case/space variants should compare equal")
	}
	if EmailsEqual("ali@example.com", "veli@example.com") {
		t.Fatalf("distinct addresses compared equal")
	}
}

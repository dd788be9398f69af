package security

import "testing"

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"alice@example.com",
		"a.b+tag@sub.example.org",
	}
	invalid := []string{
		"",
		"not-an-email",
		"@example.com",
		"alice@",
		"alice example@example.com",
	}

	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Fatalf("expected %q to be a valid email", e)
		}
	}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Fatalf("expected %q to be an invalid email", e)
		}
	}
}

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "Str0ng!Pass", want: true},
		{in: "Aa1!aaaa", want: true},
		{in: "short1!A", want: true},
		{in: "Sh0rt!", want: false},       // too short
		{in: "alllower1!", want: false},   // no uppercase
		{in: "ALLUPPER1!", want: false},   // no lowercase
		{in: "NoDigits!!", want: false},   // no digit
		{in: "NoSpecial11", want: false},  // no special character
		{in: "", want: false},
	}

	for _, tt := range tests {
		if got := IsStrongPassword(tt.in); got != tt.want {
			t.Fatalf("IsStrongPassword(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

package validators

import "testing"

func TestCheckEmail(t *testing.T) {
	testCases := []struct {
		Name     string
		Email    string
		Expected bool
	}{
		{Name: "Valid email", Email: "amb@example.com", Expected: true},
		{Name: "Valid email with subdomain", Email: "amb@mail.example.com", Expected: true},
		{Name: "Valid email with plus", Email: "amb+tag@example.com", Expected: true},
		{Name: "Empty string", Email: "", Expected: false},
		{Name: "Spaces only", Email: "   ", Expected: false},
		{Name: "No at sign", Email: "example.com", Expected: false},
		{Name: "No domain", Email: "amb@", Expected: false},
		{Name: "Display name form", Email: "Amb One <amb@example.com>", Expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if got := CheckEmail(tc.Email); got != tc.Expected {
				t.Errorf("CheckEmail(%q) = %v, want %v", tc.Email, got, tc.Expected)
			}
		})
	}
}

func TestCheckOtp(t *testing.T) {
	testCases := []struct {
		Name     string
		Code     string
		Expected bool
	}{
		{Name: "Valid code", Code: "123456", Expected: true},
		{Name: "Leading zeros", Code: "000042", Expected: true},
		{Name: "Empty string", Code: "", Expected: false},
		{Name: "Too short", Code: "12345", Expected: false},
		{Name: "Too long", Code: "1234567", Expected: false},
		{Name: "Letters inside", Code: "12a456", Expected: false},
		{Name: "Spaces inside", Code: "123 56", Expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if got := CheckOtp(tc.Code); got != tc.Expected {
				t.Errorf("CheckOtp(%q) = %v, want %v", tc.Code, got, tc.Expected)
			}
		})
	}
}

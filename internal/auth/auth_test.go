package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestStaticVerify(t *testing.T) {
	authenticator, err := NewStaticFromPassword("analyst", "hunter2")
	if err != nil {
		t.Fatalf("NewStaticFromPassword() error = %v", err)
	}

	tests := []struct {
		name     string
		creds    Credentials
		expected bool
	}{
		{"Correct credentials", Credentials{"analyst", "hunter2"}, true},
		{"Wrong password", Credentials{"analyst", "hunter3"}, false},
		{"Wrong username", Credentials{"admin", "hunter2"}, false},
		{"Swapped fields", Credentials{"hunter2", "analyst"}, false},
		{"Empty credentials", Credentials{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := authenticator.Verify(tt.creds); result != tt.expected {
				t.Errorf("Verify(%q, %q) = %v, expected %v",
					tt.creds.Username, tt.creds.Password, result, tt.expected)
			}
		})
	}
}

func TestStaticVerifyWithPrecomputedHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to generate hash: %v", err)
	}

	authenticator := NewStatic("analyst", string(hash))
	if !authenticator.Verify(Credentials{"analyst", "s3cret"}) {
		t.Error("expected precomputed hash to verify")
	}
	if authenticator.Verify(Credentials{"analyst", "wrong"}) {
		t.Error("expected wrong password to fail")
	}
}

func TestStaticVerifyUnconfigured(t *testing.T) {
	if (&Static{}).Verify(Credentials{"", ""}) {
		t.Error("unconfigured authenticator must reject everything")
	}
}

func TestDenied(t *testing.T) {
	if (Denied{}).Verify(Credentials{"analyst", "hunter2"}) {
		t.Error("Denied must reject all credentials")
	}
}

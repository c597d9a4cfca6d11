package users_test

import (
	"testing"

	"github.com/simfrisk/SleepJournal/users"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := users.HashPassword("Validpass1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "Validpass1", hash)

	require.True(t, users.CheckPasswordHash("Validpass1", hash))
	require.False(t, users.CheckPasswordHash("wrongpass", hash))
}

func TestHashRejectsEmptyPassword(t *testing.T) {
	_, err := users.HashPassword("")
	require.Error(t, err)
}

func TestHashesAreSalted(t *testing.T) {
	first, err := users.HashPassword("Validpass1")
	require.NoError(t, err)
	second, err := users.HashPassword("Validpass1")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Validpass1", false},
		{"too short", "Va1", true},
		{"no uppercase", "validpass1", true},
		{"no lowercase", "VALIDPASS1", true},
		{"no number", "Validpass", true},
		{"empty", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := users.ValidatePasswordStrength(tc.password)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	require.NoError(t, users.ValidateEmail("a@b.com"))
	require.NoError(t, users.ValidateEmail("john.doe+tag@example.co.uk"))

	for _, email := range []string{"", "plainaddress", "a@b", "a b@c.com", "@example.com"} {
		require.Error(t, users.ValidateEmail(email), "email %q", email)
	}
}

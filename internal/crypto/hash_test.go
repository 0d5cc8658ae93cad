package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	// в тестах хватает минимальной стоимости
	PasswordCost = bcrypt.MinCost
}

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		errMsg   string
		wantErr  bool
	}{
		{
			name:     "successful hash",
			password: "correct horse battery",
		},
		{
			name:     "unicode password",
			password: "пароль12345678",
		},
		{
			name:     "empty password",
			password: "",
			wantErr:  true,
			errMsg:   "password cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hash)
			require.NoError(t, VerifyPassword(tt.password, hash))
		})
	}
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("password123")
	require.NoError(t, err)
	second, err := HashPassword("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)

	tests := []struct {
		wantIs   error
		name     string
		password string
		hash     string
		wantErr  bool
	}{
		{name: "match", password: "password123", hash: hash},
		{name: "mismatch", password: "password124", hash: hash, wantErr: true, wantIs: ErrInvalidPassword},
		{name: "empty password", password: "", hash: hash, wantErr: true},
		{name: "empty hash", password: "password123", hash: "", wantErr: true},
		{name: "garbage hash", password: "password123", hash: "not-a-bcrypt-hash", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyPassword(tt.password, tt.hash)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}

func TestHashToken(t *testing.T) {
	first, err := HashToken("refresh-token")
	require.NoError(t, err)
	second, err := HashToken("refresh-token")
	require.NoError(t, err)

	assert.Equal(t, first, second, "hash must be deterministic")
	assert.Len(t, first, 64)

	other, err := HashToken("another-token")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)

	_, err = HashToken("")
	assert.Error(t, err)
}

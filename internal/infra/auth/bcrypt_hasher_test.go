package auth

import (
	"strings"
	"testing"

	"github.com/aimericdrk/ai-fall-guard/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "password123"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("password124", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_IsSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		wantCost int
	}{
		{name: "configured", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}, wantCost: 5},
		{name: "missing auth section", cfg: &config.Config{}, wantCost: bcrypt.DefaultCost},
		{name: "nil config", cfg: nil, wantCost: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := NewBcryptHasher(tt.cfg).Hash("secret")
			require.NoError(t, err)

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cost)
		})
	}
}

func TestBcryptHasher_ClampsCost(t *testing.T) {
	hasher := NewBcryptHasherWithCost(1)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_RejectsOverlongPassword(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("x", 73))
	assert.Error(t, err)
}

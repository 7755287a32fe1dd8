package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2HashService_HashAndVerify(t *testing.T) {
	svc := NewArgon2HashService()

	hash, err := svc.Hash("open-sesame")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=1,p=4$"))

	match, err := svc.Verify("open-sesame", hash)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = svc.Verify("open-sesame!", hash)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestArgon2HashService_UniqueSalts(t *testing.T) {
	svc := NewArgon2HashService()

	hash1, err := svc.Hash("same-password")
	require.NoError(t, err)
	hash2, err := svc.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
}

func TestArgon2HashService_VerifyUsesStoredCost(t *testing.T) {
	cheap := &Argon2HashService{params: argon2Params{memory: 8 * 1024, time: 2, threads: 1, keyLen: 16}}

	hash, err := cheap.Hash("technician")
	require.NoError(t, err)
	assert.Contains(t, hash, "m=8192,t=2,p=1")

	match, err := NewArgon2HashService().Verify("technician", hash)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestArgon2HashService_MalformedHash(t *testing.T) {
	svc := NewArgon2HashService()

	tests := map[string]string{
		"not phc":       "not-a-valid-hash",
		"bcrypt":        "$2a$10$abcdefghijklmnopqrstuv",
		"wrong algo":    "$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$a2V5",
		"wrong version": "$argon2id$v=16$m=65536,t=1,p=4$c2FsdA$a2V5",
		"bad params":    "$argon2id$v=19$m=x,t=1,p=4$c2FsdA$a2V5",
		"bad salt":      "$argon2id$v=19$m=65536,t=1,p=4$!!!$a2V5",
	}
	for name, hash := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify("password", hash)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errMalformedHash))
		})
	}
}

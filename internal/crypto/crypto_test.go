package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	const password = "s3cret"
	hash, err := HashPassword(password)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$"))
	ok, err := VerifyPassword(password, hash)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyPasswordWrongPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	ok, err := VerifyPassword("not-the-password", hash)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHashPasswordSaltsAreRandom(t *testing.T) {
	const password = "s3cret"
	hash1, err := HashPassword(password)
	require.NoError(t, err)
	hash2, err := HashPassword(password)
	require.NoError(t, err)
	require.NotEqual(t, hash1, hash2)
	ok, err := VerifyPassword(password, hash1)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = VerifyPassword(password, hash2)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	testCases := []struct {
		name string
		hash string
	}{
		{
			name: "empty",
			hash: "",
		},
		{
			name: "not PHC format",
			hash: "plainly-not-a-hash",
		},
		{
			name: "wrong algorithm",
			hash: "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		},
		{
			name: "wrong version",
			hash: "$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		},
		{
			name: "bad salt encoding",
			hash: "$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA",
		},
		{
			name: "bad hash encoding",
			hash: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$!!!",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ok, err := VerifyPassword("s3cret", testCase.hash)
			require.Error(t, err)
			require.False(t, ok)
		})
	}
}

func TestNewTokenLengthAndAlphabet(t *testing.T) {
	token := NewToken(128)
	require.Len(t, token, 128)
	for _, r := range token {
		require.Contains(t, tokenChars, string(r))
	}
}

func TestNewTokenUniqueness(t *testing.T) {
	const iterations = 10000
	seen := make(map[string]struct{}, iterations)
	for i := 0; i < iterations; i++ {
		token := NewToken(128)
		_, ok := seen[token]
		require.False(t, ok)
		seen[token] = struct{}{}
	}
}

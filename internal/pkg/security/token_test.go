package security

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSessionTokenFormat(t *testing.T) {
	token := GenerateSessionToken()

	parts := strings.Split(token, "_")
	require.Len(t, parts, 3)
	assert.Equal(t, "token", parts[0])

	_, err := uuid.Parse(parts[1])
	require.NoError(t, err)

	ms, err := strconv.ParseInt(parts[2], 10, 64)
	require.NoError(t, err)
	assert.InDelta(t, time.Now().UnixMilli(), ms, float64(time.Minute.Milliseconds()))
}

func TestGenerateSessionTokenUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token := GenerateSessionToken()
		if _, dup := seen[token]; dup {
			t.Fatalf("duplicate session token generated: %s", token)
		}
		seen[token] = struct{}{}
	}
}

package security

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateSessionToken mints an opaque session token. Uniqueness comes from
// the UUID plus a millisecond timestamp. The token identifies a session to
// the client; it is not a cryptographic capability.
func GenerateSessionToken() string {
	return fmt.Sprintf("token_%s_%d", uuid.New().String(), time.Now().UnixMilli())
}

package lots

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const base36Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func randBase36(n int) string {
	b := make([]byte, n)
	rand.Read(b)
	for i := range b {
		b[i] = base36Chars[int(b[i])%len(base36Chars)]
	}
	return string(b)
}

// ReferenceNumber builds a lot reference from the owner's display name and how
// many lots the owner already has:
//
//	LOT_<name with spaces as underscores>_<count+1>_<last 6 digits of epoch ms><3 random base36 chars>
//
// The random suffix keeps references generated within the same millisecond
// distinct.
func ReferenceNumber(ownerDisplayName string, sequenceCount int64) string {
	name := strings.Join(strings.Fields(ownerDisplayName), "_")
	if name == "" {
		name = "SELLER"
	}
	ms := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return fmt.Sprintf("LOT_%s_%d_%s%s", name, sequenceCount+1, ms[len(ms)-6:], randBase36(3))
}

// FallbackReferenceNumber is used when the sequence count cannot be looked up.
func FallbackReferenceNumber() string {
	return fmt.Sprintf("LOT_REF-%d-%s", time.Now().UnixMilli(), randBase36(7))
}

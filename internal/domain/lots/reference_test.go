package lots

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	refPattern      = regexp.MustCompile(`^LOT_John_Doe_4_\d{6}[0-9A-Z]{3}$`)
	fallbackPattern = regexp.MustCompile(`^LOT_REF-\d+-[0-9A-Z]{7}$`)
)

func TestReferenceNumber(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		ref := ReferenceNumber("John Doe", 3)
		assert.Regexp(t, refPattern, ref)
	})

	t.Run("collapses whitespace in the owner name", func(t *testing.T) {
		ref := ReferenceNumber("  John   Doe ", 3)
		assert.Regexp(t, refPattern, ref)
	})

	t.Run("empty owner name still produces a reference", func(t *testing.T) {
		ref := ReferenceNumber("", 0)
		assert.Regexp(t, `^LOT_SELLER_1_`, ref)
	})

	t.Run("sequential generation stays unique within a millisecond", func(t *testing.T) {
		seen := make(map[string]struct{}, 1000)
		for i := 0; i < 1000; i++ {
			ref := ReferenceNumber("Jane Roe", int64(i))
			_, dup := seen[ref]
			require.False(t, dup, "duplicate reference %q at %d", ref, i)
			seen[ref] = struct{}{}
		}
	})
}

func TestFallbackReferenceNumber(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		assert.Regexp(t, fallbackPattern, FallbackReferenceNumber())
	})

	t.Run("unique in a tight loop", func(t *testing.T) {
		seen := make(map[string]struct{}, 1000)
		for i := 0; i < 1000; i++ {
			ref := FallbackReferenceNumber()
			_, dup := seen[ref]
			require.False(t, dup, "duplicate fallback reference %q", ref)
			seen[ref] = struct{}{}
		}
	})
}

package lots

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateForSave(t *testing.T) {
	two := []string{"a1", "a2"}
	ten := decimal.NewFromInt(10)

	requireCode := func(t *testing.T, err error, code string) {
		t.Helper()
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, code, verr.Code)
	}

	t.Run("empty name", func(t *testing.T) {
		requireCode(t, ValidateForSave("", two, ten), CodeMissingName)
	})

	t.Run("whitespace-only name", func(t *testing.T) {
		requireCode(t, ValidateForSave("   ", two, ten), CodeMissingName)
	})

	t.Run("fewer than two articles", func(t *testing.T) {
		requireCode(t, ValidateForSave("x", []string{"a1"}, ten), CodeInsufficientArticles)
	})

	t.Run("zero price", func(t *testing.T) {
		requireCode(t, ValidateForSave("x", two, decimal.Zero), CodeInvalidPrice)
	})

	t.Run("negative price", func(t *testing.T) {
		requireCode(t, ValidateForSave("x", two, decimal.NewFromInt(-3)), CodeInvalidPrice)
	})

	t.Run("valid lot", func(t *testing.T) {
		assert.NoError(t, ValidateForSave("x", two, ten))
	})
}

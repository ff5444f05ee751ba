package planner

import (
	"testing"

	"resale-app/internal/domain/lots"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionable(t *testing.T) {
	t.Run("sold and draft targets are suppressed", func(t *testing.T) {
		assert.False(t, Actionable(lots.StatusSold))
		assert.False(t, Actionable(lots.StatusDraft))
	})

	t.Run("everything else stays visible", func(t *testing.T) {
		for _, s := range []string{lots.StatusReady, lots.StatusScheduled, lots.StatusPublished} {
			assert.True(t, Actionable(s), s)
		}
	})
}

func TestGuardAccept(t *testing.T) {
	t.Run("accepts every status the pending list shows", func(t *testing.T) {
		for _, s := range []string{lots.StatusReady, lots.StatusScheduled, lots.StatusPublished} {
			assert.NoError(t, GuardAccept("lot", s), s)
			assert.NoError(t, GuardAccept("article", s), s)
		}
	})

	t.Run("re-accepting an already scheduled lot is allowed", func(t *testing.T) {
		assert.NoError(t, GuardAccept("lot", lots.StatusScheduled))
	})

	t.Run("blocks sold and draft targets", func(t *testing.T) {
		for _, s := range []string{lots.StatusSold, lots.StatusDraft} {
			err := GuardAccept("lot", s)
			var nerr *NotActionableError
			require.ErrorAs(t, err, &nerr, s)
			assert.Equal(t, "lot", nerr.Target)
			assert.Equal(t, s, nerr.Status)
		}
	})

	t.Run("error names the article target", func(t *testing.T) {
		err := GuardAccept("article", lots.StatusSold)
		require.Error(t, err)
		assert.Equal(t, "suggestion article is sold and cannot be scheduled", err.Error())
	})
}

func TestSuggestionTarget(t *testing.T) {
	lotID := "7c9e1f2a-0000-0000-0000-000000000001"
	articleID := "7c9e1f2a-0000-0000-0000-000000000002"

	t.Run("lot suggestion", func(t *testing.T) {
		s := Suggestion{LotID: &lotID}
		assert.True(t, s.TargetsLot())
	})

	t.Run("article suggestion", func(t *testing.T) {
		s := Suggestion{ArticleID: &articleID}
		assert.False(t, s.TargetsLot())
	})

	t.Run("empty lot id does not count as a lot target", func(t *testing.T) {
		empty := ""
		s := Suggestion{LotID: &empty, ArticleID: &articleID}
		assert.False(t, s.TargetsLot())
	})
}

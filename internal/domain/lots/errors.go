package lots

import (
	"errors"
	"fmt"
)

// ErrPartialCascade wraps a failure of the member-article batch update during
// a status transition. The surrounding transaction rolls the lot update back,
// but callers still need to tell this stage apart from a failed lot write.
var ErrPartialCascade = errors.New("member article cascade failed")

// ArticleInLotError blocks selecting an article for a second active lot and
// deleting an article that an active lot still contains.
type ArticleInLotError struct {
	ArticleID string
	LotID     string
	LotName   string
}

func (e *ArticleInLotError) Error() string {
	return fmt.Sprintf("article %s already belongs to active lot %q", e.ArticleID, e.LotName)
}

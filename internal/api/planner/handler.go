package planner

import (
	"errors"
	"fmt"
	"net/http"

	"resale-app/database"
	"resale-app/internal/domain/articles"
	"resale-app/internal/domain/lots"
	"resale-app/internal/domain/planner"
	applog "resale-app/internal/log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// ------------------------------
// GET /planner/suggestions
// ------------------------------
// Pending suggestions whose target is still actionable. Targets that were sold
// or reverted to draft stay in the table but are filtered out here.
func ListSuggestions(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var suggestions []planner.Suggestion
	err := database.DB.Model(&planner.Suggestion{}).
		Joins("LEFT JOIN articles ON articles.id = selling_suggestions.article_id").
		Joins("LEFT JOIN lots ON lots.id = selling_suggestions.lot_id").
		Where("selling_suggestions.user_id = ? AND selling_suggestions.status = ?",
			userID, planner.StatusPending).
		Where("COALESCE(articles.status, lots.status) NOT IN ?",
			[]string{lots.StatusSold, lots.StatusDraft}).
		Preload("Article").
		Preload("Lot").
		Order("selling_suggestions.suggested_date ASC").
		Find(&suggestions).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load suggestions"})
		return
	}

	c.JSON(http.StatusOK, suggestions)
}

// ------------------------------
// POST /planner/suggestions/:id/accept
// ------------------------------
// Schedules the target entity for the suggested date and marks the suggestion
// accepted, as one transaction.
func AcceptSuggestion(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var s planner.Suggestion
	if err := database.DB.First(&s, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Suggestion not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load suggestion"})
		return
	}
	if s.Status != planner.StatusPending {
		c.JSON(http.StatusConflict, gin.H{"error": "Suggestion already handled"})
		return
	}

	hasArticle := s.ArticleID != nil && *s.ArticleID != ""
	hasLot := s.TargetsLot()
	if hasArticle == hasLot {
		c.JSON(http.StatusInternalServerError, gin.H{"error": planner.ErrAmbiguousTarget.Error()})
		return
	}

	// Suggested dates are stored day-granular; scheduling pins an absolute instant.
	scheduledFor := s.SuggestedDate.UTC()

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"status":        lots.StatusScheduled,
			"scheduled_for": scheduledFor,
		}
		if hasLot {
			var lot lots.Lot
			if err := tx.First(&lot, "id = ? AND user_id = ?", *s.LotID, userID).Error; err != nil {
				return err
			}
			if err := planner.GuardAccept("lot", lot.Status); err != nil {
				return err
			}
			if err := tx.Model(&lots.Lot{}).Where("id = ?", lot.ID).Updates(updates).Error; err != nil {
				return err
			}
		} else {
			var article articles.Article
			if err := tx.First(&article, "id = ? AND user_id = ?", *s.ArticleID, userID).Error; err != nil {
				return err
			}
			if err := planner.GuardAccept("article", article.Status); err != nil {
				return err
			}
			if err := tx.Model(&article).Updates(updates).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&planner.Suggestion{}).
			Where("id = ?", s.ID).
			Update("status", planner.StatusAccepted).Error; err != nil {
			return fmt.Errorf("%w: %v", planner.ErrAcceptFlagFailed, err)
		}
		return nil
	})
	if err != nil {
		var nerr *planner.NotActionableError
		switch {
		case errors.As(err, &nerr):
			c.JSON(http.StatusConflict, gin.H{"error": nerr.Error()})
		case errors.Is(err, planner.ErrAcceptFlagFailed):
			applog.Error(c, "planner.accept", err, map[string]any{"suggestion_id": s.ID})
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Entity scheduled but suggestion not updated; no changes were applied"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Suggestion target not found"})
		default:
			applog.Error(c, "planner.accept", err, map[string]any{"suggestion_id": s.ID})
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept suggestion"})
		}
		return
	}

	applog.Audit(c, "planner.accept", map[string]any{"suggestion_id": s.ID})
	c.JSON(http.StatusOK, gin.H{"status": planner.StatusAccepted, "scheduled_for": scheduledFor})
}

// ------------------------------
// POST /planner/suggestions/:id/reject
// ------------------------------
// Flags the suggestion only; the target entity is untouched.
func RejectSuggestion(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	res := database.DB.Model(&planner.Suggestion{}).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, planner.StatusPending).
		Update("status", planner.StatusRejected)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject suggestion"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pending suggestion not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": planner.StatusRejected})
}

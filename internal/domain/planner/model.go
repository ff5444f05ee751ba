package planner

import (
	"errors"
	"fmt"
	"time"

	"resale-app/internal/domain/articles"
	"resale-app/internal/domain/lots"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
	StatusScheduled = "scheduled"
)

// Suggestion references exactly one of ArticleID / LotID. Rows are written by
// an external generator; this service only consumes them.
type Suggestion struct {
	ID     string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"-"`

	ArticleID *string           `gorm:"type:uuid;index" json:"article_id,omitempty"`
	Article   *articles.Article `gorm:"foreignKey:ArticleID" json:"article,omitempty"`
	LotID     *string           `gorm:"type:uuid;index" json:"lot_id,omitempty"`
	Lot       *lots.Lot         `gorm:"foreignKey:LotID" json:"lot,omitempty"`

	SuggestedDate time.Time `gorm:"type:date;not null" json:"suggested_date"`
	Priority      string    `gorm:"type:text;not null;default:'medium'" json:"priority"`
	Status        string    `gorm:"type:text;not null;default:'pending';index" json:"status"`
	Reason        string    `json:"reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Suggestion) TableName() string { return "selling_suggestions" }

// TargetsLot reports which entity the suggestion references.
func (s *Suggestion) TargetsLot() bool { return s.LotID != nil && *s.LotID != "" }

// ErrAcceptFlagFailed marks the case where the target entity was scheduled but
// the suggestion could not be flagged accepted. The transaction rolls both
// back; callers distinguish this stage from a failed target update.
var ErrAcceptFlagFailed = errors.New("target scheduled but suggestion not marked accepted")

// ErrAmbiguousTarget rejects rows violating the one-of-article-or-lot rule.
var ErrAmbiguousTarget = errors.New("suggestion must reference exactly one of article or lot")

// Actionable is the visibility rule for pending suggestions: targets that have
// been sold or reverted to draft are suppressed without being deleted.
func Actionable(targetStatus string) bool {
	return targetStatus != lots.StatusSold && targetStatus != lots.StatusDraft
}

// NotActionableError reports an accept attempt against a target the
// visibility rule suppresses.
type NotActionableError struct {
	Target string // "article" or "lot"
	Status string
}

func (e *NotActionableError) Error() string {
	return fmt.Sprintf("suggestion %s is %s and cannot be scheduled", e.Target, e.Status)
}

// GuardAccept decides whether a suggestion target in the given status may be
// scheduled. It mirrors Actionable so every suggestion shown as pending can
// also be accepted; re-accepting an already scheduled target is allowed and
// just moves its date.
func GuardAccept(target, targetStatus string) error {
	if !Actionable(targetStatus) {
		return &NotActionableError{Target: target, Status: targetStatus}
	}
	return nil
}

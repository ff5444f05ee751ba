package lots

import (
	"errors"

	"resale-app/internal/domain/articles"
	"resale-app/internal/domain/lots"

	"gorm.io/gorm"
)

func userLotsQuery(db *gorm.DB, userID uint) *gorm.DB {
	return db.Model(&lots.Lot{}).Where("user_id = ?", userID)
}

// LotRef identifies a lot in conflict messages.
type LotRef struct {
	ID   string
	Name string
}

// ConflictingLot returns another active (non-sold) lot of the same owner that
// contains the article, or nil. excludeLotID keeps the lot being edited from
// conflicting with itself. Exported because article deletion runs the same
// check.
func ConflictingLot(db *gorm.DB, userID uint, articleID, excludeLotID string) (*LotRef, error) {
	q := db.Table("lot_items").
		Select("lots.id AS id, lots.name AS name").
		Joins("JOIN lots ON lots.id = lot_items.lot_id").
		Where("lot_items.article_id = ? AND lots.user_id = ? AND lots.status <> ?",
			articleID, userID, lots.StatusSold)
	if excludeLotID != "" {
		q = q.Where("lots.id <> ?", excludeLotID)
	}

	var ref LotRef
	res := q.Limit(1).Take(&ref)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &ref, nil
}

var (
	errUnknownArticle = errors.New("selection contains an unknown article")
	errLotSold        = errors.New("sold lots cannot be edited")
)

// loadMembers fetches the selected articles with their photos, ordered the way
// the selection listed them.
func loadMembers(tx *gorm.DB, userID uint, ids []string) ([]articles.Article, error) {
	var found []articles.Article
	err := tx.
		Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&found).Error
	if err != nil {
		return nil, err
	}
	if len(found) != len(ids) {
		return nil, errUnknownArticle
	}

	byID := make(map[string]articles.Article, len(found))
	for _, a := range found {
		byID[a.ID] = a
	}
	ordered := make([]articles.Article, 0, len(ids))
	for _, id := range ids {
		ordered = append(ordered, byID[id])
	}
	return ordered, nil
}

func replaceItems(tx *gorm.DB, lotID string, articleIDs []string) error {
	// Delete-all, insert-all on every save; no diffing.
	if err := tx.Where("lot_id = ?", lotID).Delete(&lots.Item{}).Error; err != nil {
		return err
	}
	for _, aid := range articleIDs {
		row := lots.Item{LotID: lotID, ArticleID: aid}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func replacePhotos(tx *gorm.DB, lotID string, urls []string) error {
	if err := tx.Where("lot_id = ?", lotID).Delete(&lots.Photo{}).Error; err != nil {
		return err
	}
	for i, url := range urls {
		row := lots.Photo{LotID: lotID, Position: i, URL: url}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

package articles

import (
	"resale-app/internal/domain/articles"

	"gorm.io/gorm"
)

func userArticlesQuery(db *gorm.DB, userID uint) *gorm.DB {
	return db.Model(&articles.Article{}).Where("user_id = ?", userID)
}

type listFilters struct {
	Status   string
	Season   string
	SellerID string
	Search   string
}

func applyFilters(q *gorm.DB, f listFilters) *gorm.DB {
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Season != "" {
		q = q.Where("season = ?", f.Season)
	}
	if f.SellerID != "" {
		q = q.Where("seller_id = ?", f.SellerID)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("title ILIKE ? OR brand ILIKE ?", like, like)
	}
	return q
}

func replacePhotos(tx *gorm.DB, articleID string, urls []string) error {
	if err := tx.Where("article_id = ?", articleID).Delete(&articles.Photo{}).Error; err != nil {
		return err
	}
	for i, url := range urls {
		row := articles.Photo{ArticleID: articleID, Position: i, URL: url}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

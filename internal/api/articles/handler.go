package articles

import (
	"errors"
	"net/http"

	"resale-app/database"
	"resale-app/internal/domain/articles"
	"resale-app/internal/domain/lots"
	applog "resale-app/internal/log"

	lotsapi "resale-app/internal/api/lots"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
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
// GET /articles
// ------------------------------
func ListArticles(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	filters := listFilters{
		Status:   c.Query("status"),
		Season:   c.Query("season"),
		SellerID: c.Query("seller"),
		Search:   c.Query("q"),
	}
	if filters.Status != "" && !articles.KnownStatus(filters.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status filter"})
		return
	}

	q := applyFilters(userArticlesQuery(database.DB, userID), filters)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load articles"})
		return
	}

	var items []articles.Article
	err := q.
		Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load articles"})
		return
	}

	c.JSON(http.StatusOK, ListResponse{Total: total, Articles: items})
}

// ------------------------------
// GET /articles/:id
// ------------------------------
func GetArticleByID(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var article articles.Article
	err := database.DB.
		Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&article, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load article"})
		return
	}

	c.JSON(http.StatusOK, article)
}

// ------------------------------
// POST /articles
// ------------------------------
func CreateArticle(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = articles.StatusDraft
	}
	if !articles.KnownStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}

	article := articles.Article{
		UserID:   userID,
		SellerID: req.SellerID,
		Title:    req.Title,
		Brand:    req.Brand,
		Size:     req.Size,
		Season:   req.Season,
		Price:    decimal.NewFromFloat(req.Price),
		Status:   status,
	}
	if req.PurchasePrice != nil {
		pp := decimal.NewFromFloat(*req.PurchasePrice)
		article.PurchasePrice = &pp
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&article).Error; err != nil {
			return err
		}
		return replacePhotos(tx, article.ID, req.Photos)
	})
	if err != nil {
		applog.Error(c, "articles.create", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create article"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": article.ID})
}

// ------------------------------
// PUT /articles/:id
// ------------------------------
func UpdateArticle(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Status != nil && !articles.KnownStatus(*req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}
	if req.Price != nil && *req.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be greater than zero"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var article articles.Article
		if err := tx.First(&article, "id = ? AND user_id = ?", id, userID).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Brand != nil {
			updates["brand"] = *req.Brand
		}
		if req.Size != nil {
			updates["size"] = *req.Size
		}
		if req.Season != nil {
			updates["season"] = *req.Season
		}
		if req.SellerID != nil {
			updates["seller_id"] = *req.SellerID
		}
		if req.Price != nil {
			updates["price"] = decimal.NewFromFloat(*req.Price)
		}
		if req.PurchasePrice != nil {
			updates["purchase_price"] = decimal.NewFromFloat(*req.PurchasePrice)
		}
		if req.Status != nil {
			updates["status"] = *req.Status
		}
		if req.ScheduledFor != nil {
			updates["scheduled_for"] = *req.ScheduledFor
		}
		if req.SoldAt != nil {
			updates["sold_at"] = *req.SoldAt
		}
		if req.SoldPrice != nil {
			updates["sold_price"] = decimal.NewFromFloat(*req.SoldPrice)
		}

		if len(updates) > 0 {
			if err := tx.Model(&article).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.Photos != nil {
			if err := replacePhotos(tx, article.ID, req.Photos); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		applog.Error(c, "articles.update", err, map[string]any{"article_id": id})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update article"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// DELETE /articles/:id
// ------------------------------
// Blocked while any active lot still contains the article.
func DeleteArticle(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	conflict, err := lotsapi.ConflictingLot(database.DB, userID, id, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check lot membership"})
		return
	}
	if conflict != nil {
		lotErr := &lots.ArticleInLotError{ArticleID: id, LotID: conflict.ID, LotName: conflict.Name}
		c.JSON(http.StatusConflict, gin.H{
			"error":    lotErr.Error(),
			"code":     "ArticleInLot",
			"lot_id":   conflict.ID,
			"lot_name": conflict.Name,
		})
		return
	}

	res := database.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&articles.Article{})
	if res.Error != nil {
		applog.Error(c, "articles.delete", res.Error, map[string]any{"article_id": id})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

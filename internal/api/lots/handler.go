package lots

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"resale-app/database"
	"resale-app/internal/domain/articles"
	"resale-app/internal/domain/lots"
	"resale-app/internal/domain/users"
	applog "resale-app/internal/log"

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
// GET /lots
// ------------------------------
func ListLots(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	q := userLotsQuery(database.DB, userID)
	if status := c.Query("status"); status != "" {
		if !lots.KnownStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status filter"})
			return
		}
		q = q.Where("status = ?", status)
	}

	var list []lots.Lot
	err := q.
		Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Items.Article").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load lots"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// ------------------------------
// GET /lots/:id
// ------------------------------
func GetLotByID(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var lot lots.Lot
	err := database.DB.
		Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Items.Article.Photos", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Items.Article").
		First(&lot, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lot not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load lot"})
		return
	}

	c.JSON(http.StatusOK, lot)
}

// memberPrices and memberPhotoURLs flatten the selection in its listed order.
func memberPrices(members []articles.Article) []decimal.Decimal {
	prices := make([]decimal.Decimal, 0, len(members))
	for _, a := range members {
		prices = append(prices, a.Price)
	}
	return prices
}

func memberPhotoURLs(members []articles.Article) []string {
	var urls []string
	for _, a := range members {
		urls = append(urls, articles.PhotoURLs(a.Photos)...)
	}
	return urls
}

// ------------------------------
// POST /lots
// ------------------------------
func CreateLot(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req SaveLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	price := decimal.NewFromFloat(req.Price)
	if err := lots.ValidateForSave(req.Name, req.ArticleIDs, price); err != nil {
		respondSaveError(c, err)
		return
	}

	status := req.Status
	if status == "" {
		status = lots.StatusDraft
	}
	if status != lots.StatusDraft && status != lots.StatusReady {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A new lot starts as draft or ready"})
		return
	}

	var created lots.Lot
	var pricing lots.Pricing
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for _, aid := range req.ArticleIDs {
			conflict, err := ConflictingLot(tx, userID, aid, "")
			if err != nil {
				return err
			}
			if conflict != nil {
				return &lots.ArticleInLotError{ArticleID: aid, LotID: conflict.ID, LotName: conflict.Name}
			}
		}

		members, err := loadMembers(tx, userID, req.ArticleIDs)
		if err != nil {
			return err
		}

		pricing = lots.DerivePricing(memberPrices(members), price)

		cover := ""
		if req.CoverPhoto != nil {
			cover = *req.CoverPhoto
		}
		set := lots.SyncCoverPhotoSet(req.Photos, cover, memberPhotoURLs(members))
		photos := lots.CapPhotos(set.Photos)

		created = lots.Lot{
			UserID:             userID,
			Name:               req.Name,
			Description:        req.Description,
			Price:              price,
			OriginalTotalPrice: pricing.OriginalTotal,
			DiscountPercentage: pricing.DiscountPercent,
			Status:             status,
			ReferenceNumber:    newReferenceNumber(tx, userID),
		}
		if set.Cover != "" {
			created.CoverPhoto = &set.Cover
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}
		if err := replacePhotos(tx, created.ID, photos); err != nil {
			return err
		}
		return replaceItems(tx, created.ID, req.ArticleIDs)
	})
	if err != nil {
		respondSaveError(c, err)
		return
	}

	applog.Audit(c, "lots.create", map[string]any{"lot_id": created.ID, "reference": created.ReferenceNumber})
	c.JSON(http.StatusCreated, SaveLotResponse{
		ID:                 created.ID,
		ReferenceNumber:    created.ReferenceNumber,
		OriginalTotalPrice: pricing.OriginalTotal.InexactFloat64(),
		DiscountPercentage: pricing.DiscountPercent,
		Markup:             pricing.Markup(),
	})
}

// newReferenceNumber falls back to the timestamp-only form when the owner or
// the lot count cannot be read. Called once per lot, at creation.
func newReferenceNumber(tx *gorm.DB, userID uint) string {
	var owner users.User
	if err := tx.First(&owner, userID).Error; err != nil {
		return lots.FallbackReferenceNumber()
	}
	var seq int64
	if err := tx.Model(&lots.Lot{}).Where("user_id = ?", userID).Count(&seq).Error; err != nil {
		return lots.FallbackReferenceNumber()
	}
	return lots.ReferenceNumber(owner.DisplayName(), seq)
}

// ------------------------------
// PUT /lots/:id
// ------------------------------
func UpdateLot(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req SaveLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	price := decimal.NewFromFloat(req.Price)
	if err := lots.ValidateForSave(req.Name, req.ArticleIDs, price); err != nil {
		respondSaveError(c, err)
		return
	}

	var pricing lots.Pricing
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var lot lots.Lot
		if err := tx.
			Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
			First(&lot, "id = ? AND user_id = ?", id, userID).Error; err != nil {
			return err
		}
		if lot.Status == lots.StatusSold {
			return errLotSold
		}

		for _, aid := range req.ArticleIDs {
			conflict, err := ConflictingLot(tx, userID, aid, lot.ID)
			if err != nil {
				return err
			}
			if conflict != nil {
				return &lots.ArticleInLotError{ArticleID: aid, LotID: conflict.ID, LotName: conflict.Name}
			}
		}

		members, err := loadMembers(tx, userID, req.ArticleIDs)
		if err != nil {
			return err
		}

		pricing = lots.DerivePricing(memberPrices(members), price)

		current := req.Photos
		if current == nil {
			current = lots.PhotoURLs(lot.Photos)
		}
		cover := ""
		if req.CoverPhoto != nil {
			cover = *req.CoverPhoto
		} else if lot.CoverPhoto != nil {
			cover = *lot.CoverPhoto
		}
		set := lots.SyncCoverPhotoSet(current, cover, memberPhotoURLs(members))
		photos := lots.CapPhotos(set.Photos)

		updates := map[string]interface{}{
			"name":                 req.Name,
			"description":          req.Description,
			"price":                price,
			"original_total_price": pricing.OriginalTotal,
			"discount_percentage":  pricing.DiscountPercent,
		}
		// reference_number is immutable, status changes go through /status
		if set.Cover != "" {
			updates["cover_photo"] = set.Cover
		} else {
			updates["cover_photo"] = nil
		}
		if err := tx.Model(&lots.Lot{}).Where("id = ?", lot.ID).Updates(updates).Error; err != nil {
			return err
		}
		if err := replacePhotos(tx, lot.ID, photos); err != nil {
			return err
		}
		return replaceItems(tx, lot.ID, req.ArticleIDs)
	})
	if err != nil {
		respondSaveError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":               "ok",
		"original_total_price": pricing.OriginalTotal.InexactFloat64(),
		"discount_percentage":  pricing.DiscountPercent,
		"markup":               pricing.Markup(),
	})
}

// ------------------------------
// POST /lots/:id/status
// ------------------------------
// Applies the transition to the lot and cascades to member articles in one
// transaction; a cascade failure rolls the lot update back too.
func UpdateLotStatus(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !lots.KnownStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}

	var lot lots.Lot
	if err := database.DB.Preload("Items").First(&lot, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lot not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load lot"})
		return
	}

	var sale *lots.SaleDetails
	if req.Sale != nil {
		sale = &lots.SaleDetails{
			SalePrice:    decimal.NewFromFloat(req.Sale.SalePrice),
			SaleDate:     req.Sale.SaleDate,
			Fees:         decimal.NewFromFloat(req.Sale.Fees),
			ShippingCost: decimal.NewFromFloat(req.Sale.ShippingCost),
			BuyerName:    req.Sale.BuyerName,
			SaleNotes:    req.Sale.SaleNotes,
		}
	}

	eff, err := lots.TransitionEffects(&lot, req.Status, time.Now(), sale)
	if err != nil {
		var terr *lots.TransitionError
		if errors.As(err, &terr) {
			c.JSON(http.StatusConflict, gin.H{"error": terr.Error(), "from": terr.From, "to": terr.To})
			return
		}
		var verr *lots.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Message, "code": verr.Code})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute status change"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&lots.Lot{}).Where("id = ?", lot.ID).Updates(eff.Lot).Error; err != nil {
			return err
		}
		if eff.Articles == nil {
			return nil
		}
		memberIDs := lot.ArticleIDs()
		if len(memberIDs) == 0 {
			return nil
		}
		if err := tx.Model(&articles.Article{}).
			Where("user_id = ? AND id IN ?", userID, memberIDs).
			Updates(eff.Articles).Error; err != nil {
			return fmt.Errorf("%w: %v", lots.ErrPartialCascade, err)
		}
		return nil
	})
	if err != nil {
		applog.Error(c, "lots.status", err, map[string]any{"lot_id": lot.ID, "to": req.Status})
		if errors.Is(err, lots.ErrPartialCascade) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Status cascade failed; no changes were applied"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update lot status"})
		return
	}

	applog.Audit(c, "lots.status", map[string]any{"lot_id": lot.ID, "from": lot.Status, "to": req.Status})
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

// ------------------------------
// DELETE /lots/:id
// ------------------------------
func DeleteLot(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	res := database.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&lots.Lot{})
	if res.Error != nil {
		applog.Error(c, "lots.delete", res.Error, map[string]any{"lot_id": id})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lot"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lot not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func respondSaveError(c *gin.Context, err error) {
	var verr *lots.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Message, "code": verr.Code})
		return
	}
	var conflict *lots.ArticleInLotError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, gin.H{
			"error":    conflict.Error(),
			"code":     "ArticleInLot",
			"lot_id":   conflict.LotID,
			"lot_name": conflict.LotName,
		})
		return
	}
	if errors.Is(err, errLotSold) {
		c.JSON(http.StatusConflict, gin.H{"error": "Sold lots cannot be edited"})
		return
	}
	if errors.Is(err, errUnknownArticle) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lot not found"})
		return
	}
	applog.Error(c, "lots.save", err, nil)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save lot"})
}

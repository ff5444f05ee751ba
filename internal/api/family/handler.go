package family

import (
	"net/http"

	"resale-app/database"
	"resale-app/internal/domain/family"

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

type memberRequest struct {
	Name        string `json:"name" binding:"required"`
	Relation    string `json:"relation"`
	AvatarColor string `json:"avatar_color"`
}

func ListMembers(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var members []family.Member
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load family members"})
		return
	}

	c.JSON(http.StatusOK, members)
}

func CreateMember(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req memberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member := family.Member{
		UserID:      userID,
		Name:        req.Name,
		Relation:    req.Relation,
		AvatarColor: req.AvatarColor,
	}
	if err := database.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create family member"})
		return
	}

	c.JSON(http.StatusCreated, member)
}

func UpdateMember(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req memberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := database.DB.Model(&family.Member{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"name":         req.Name,
			"relation":     req.Relation,
			"avatar_color": req.AvatarColor,
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update family member"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Family member not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func DeleteMember(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// Articles keep existing but lose their seller attribution.
		if err := tx.Table("articles").
			Where("seller_id = ? AND user_id = ?", id, userID).
			Update("seller_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ? AND user_id = ?", id, userID).
			Delete(&family.Member{}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete family member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

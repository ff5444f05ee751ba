package admin

import (
	"net/http"

	"resale-app/database"
	"resale-app/internal/domain/articles"
	"resale-app/internal/domain/lots"
	"resale-app/internal/domain/planner"
	"resale-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminUser struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Lastname     string `json:"lastname"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	AuthProvider string `json:"auth_provider"`
	IsVerified   bool   `json:"is_verified"`
}

type AdminStats struct {
	TotalUsers         int64            `json:"total_users"`
	ArticlesPerStatus  map[string]int64 `json:"articles_per_status"`
	LotsPerStatus      map[string]int64 `json:"lots_per_status"`
	PendingSuggestions int64            `json:"pending_suggestions"`
}

func countPerStatus(db *gorm.DB, model interface{}) (map[string]int64, error) {
	rows := []struct {
		Status string
		N      int64
	}{}
	if err := db.Model(model).Select("status, count(*) AS n").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.N
	}
	return out, nil
}

func AdminDashboard(c *gin.Context) {
	var stats AdminStats
	var err error

	if err = database.DB.Model(&users.User{}).Count(&stats.TotalUsers).Error; err == nil {
		stats.ArticlesPerStatus, err = countPerStatus(database.DB, &articles.Article{})
	}
	if err == nil {
		stats.LotsPerStatus, err = countPerStatus(database.DB, &lots.Lot{})
	}
	if err == nil {
		err = database.DB.Model(&planner.Suggestion{}).
			Where("status = ?", planner.StatusPending).
			Count(&stats.PendingSuggestions).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func ListAllUsers(c *gin.Context) {
	var all []users.User
	if err := database.DB.Order("created_at DESC").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	out := make([]AdminUser, 0, len(all))
	for _, u := range all {
		out = append(out, AdminUser{
			ID:           u.ID,
			Name:         u.Name,
			Lastname:     u.Lastname,
			Email:        u.Email,
			Role:         u.Role,
			AuthProvider: u.AuthProvider,
			IsVerified:   u.IsVerified,
		})
	}

	c.JSON(http.StatusOK, out)
}

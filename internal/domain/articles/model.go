package articles

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusDraft     = "draft"
	StatusReady     = "ready"
	StatusScheduled = "scheduled"
	StatusPublished = "published"
	StatusSold      = "sold"
)

func KnownStatus(s string) bool {
	switch s {
	case StatusDraft, StatusReady, StatusScheduled, StatusPublished, StatusSold:
		return true
	}
	return false
}

type Article struct {
	ID       string  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID   uint    `gorm:"not null;index" json:"-"`
	SellerID *string `gorm:"type:uuid;index" json:"seller_id,omitempty"`

	Title  string `gorm:"not null" json:"title"`
	Brand  string `json:"brand,omitempty"`
	Size   string `json:"size,omitempty"`
	Season string `gorm:"index" json:"season,omitempty"`

	Price         decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"price"`
	PurchasePrice *decimal.Decimal `gorm:"type:decimal(10,2)" json:"purchase_price,omitempty"`

	Status       string           `gorm:"type:text;not null;default:'draft';index" json:"status"`
	ScheduledFor *time.Time       `json:"scheduled_for,omitempty"`
	PublishedAt  *time.Time       `json:"published_at,omitempty"`
	SoldAt       *time.Time       `json:"sold_at,omitempty"`
	SoldPrice    *decimal.Decimal `gorm:"type:decimal(10,2)" json:"sold_price,omitempty"`

	Photos []Photo `gorm:"constraint:OnDelete:CASCADE;" json:"photos,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Photo struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	ArticleID string `gorm:"type:uuid;not null;index:idx_article_photos_pos,priority:1" json:"-"`
	Position  int    `gorm:"not null;default:0;index:idx_article_photos_pos,priority:2" json:"position"`
	URL       string `gorm:"not null" json:"url"`
}

func (Photo) TableName() string { return "article_photos" }

// PhotoURLs flattens photo rows into their display order.
func PhotoURLs(photos []Photo) []string {
	urls := make([]string, 0, len(photos))
	for _, p := range photos {
		urls = append(urls, p.URL)
	}
	return urls
}

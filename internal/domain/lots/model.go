package lots

import (
	"time"

	"resale-app/internal/domain/articles"

	"github.com/shopspring/decimal"
)

type Lot struct {
	ID     string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"-"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description,omitempty"`

	Price              decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	OriginalTotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"original_total_price"`
	// Derived from Price and OriginalTotalPrice at save time; negative means markup.
	DiscountPercentage int `gorm:"not null;default:0" json:"discount_percentage"`

	CoverPhoto *string `json:"cover_photo,omitempty"`

	Status       string     `gorm:"type:text;not null;default:'draft';index" json:"status"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`

	// Set once at creation, never regenerated on edit.
	ReferenceNumber string `gorm:"not null;uniqueIndex" json:"reference_number"`

	SoldAt       *time.Time       `json:"sold_at,omitempty"`
	Fees         *decimal.Decimal `gorm:"type:decimal(10,2)" json:"fees,omitempty"`
	ShippingCost *decimal.Decimal `gorm:"type:decimal(10,2)" json:"shipping_cost,omitempty"`
	NetProfit    *decimal.Decimal `gorm:"type:decimal(10,2)" json:"net_profit,omitempty"`
	BuyerName    *string          `json:"buyer_name,omitempty"`
	SaleNotes    *string          `json:"sale_notes,omitempty"`

	Photos []Photo `gorm:"constraint:OnDelete:CASCADE;" json:"photos,omitempty"`
	Items  []Item  `gorm:"constraint:OnDelete:CASCADE;" json:"items,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Item rows are replaced wholesale on every lot save, no incremental diffing.
type Item struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	LotID     string `gorm:"type:uuid;not null;uniqueIndex:idx_lot_items_pair,priority:1" json:"-"`
	ArticleID string `gorm:"type:uuid;not null;uniqueIndex:idx_lot_items_pair,priority:2;index" json:"article_id"`

	Article *articles.Article `gorm:"foreignKey:ArticleID" json:"article,omitempty"`
}

func (Item) TableName() string { return "lot_items" }

type Photo struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	LotID    string `gorm:"type:uuid;not null;index:idx_lot_photos_pos,priority:1" json:"-"`
	Position int    `gorm:"not null;default:0;index:idx_lot_photos_pos,priority:2" json:"position"`
	URL      string `gorm:"not null" json:"url"`
}

func (Photo) TableName() string { return "lot_photos" }

// PhotoURLs flattens photo rows into their display order.
func PhotoURLs(photos []Photo) []string {
	urls := make([]string, 0, len(photos))
	for _, p := range photos {
		urls = append(urls, p.URL)
	}
	return urls
}

// ArticleIDs lists member article ids in item order.
func (l *Lot) ArticleIDs() []string {
	ids := make([]string, 0, len(l.Items))
	for _, it := range l.Items {
		ids = append(ids, it.ArticleID)
	}
	return ids
}

package articles

import "time"

type CreateArticleRequest struct {
	Title         string   `json:"title" binding:"required"`
	Brand         string   `json:"brand"`
	Size          string   `json:"size"`
	Season        string   `json:"season"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	PurchasePrice *float64 `json:"purchase_price"`
	SellerID      *string  `json:"seller_id"`
	Photos        []string `json:"photos"`
	Status        string   `json:"status"`
}

type UpdateArticleRequest struct {
	Title         *string    `json:"title"`
	Brand         *string    `json:"brand"`
	Size          *string    `json:"size"`
	Season        *string    `json:"season"`
	Price         *float64   `json:"price"`
	PurchasePrice *float64   `json:"purchase_price"`
	SellerID      *string    `json:"seller_id"`
	Photos        []string   `json:"photos"`
	Status        *string    `json:"status"`
	ScheduledFor  *time.Time `json:"scheduled_for"`
	SoldAt        *time.Time `json:"sold_at"`
	SoldPrice     *float64   `json:"sold_price"`
}

type ListResponse struct {
	Total    int64       `json:"total"`
	Articles interface{} `json:"articles"`
}

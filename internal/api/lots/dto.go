package lots

import "time"

// SaveLotRequest covers create and edit. The photo list carries the client's
// current ordering; the server reconciles it against the member articles'
// photos before persisting. Status is only honored on create (draft or ready);
// later changes go through POST /lots/:id/status.
type SaveLotRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	ArticleIDs  []string `json:"article_ids" binding:"required"`
	Photos      []string `json:"photos"`
	CoverPhoto  *string  `json:"cover_photo"`
	Status      string   `json:"status"`
}

type SaleDTO struct {
	SalePrice    float64   `json:"sale_price" binding:"required"`
	SaleDate     time.Time `json:"sale_date" binding:"required"`
	Fees         float64   `json:"fees"`
	ShippingCost float64   `json:"shipping_cost"`
	BuyerName    string    `json:"buyer_name"`
	SaleNotes    string    `json:"sale_notes"`
}

type UpdateStatusRequest struct {
	Status string   `json:"status" binding:"required"`
	Sale   *SaleDTO `json:"sale"`
}

type SaveLotResponse struct {
	ID                 string  `json:"id"`
	ReferenceNumber    string  `json:"reference_number"`
	OriginalTotalPrice float64 `json:"original_total_price"`
	DiscountPercentage int     `json:"discount_percentage"`
	Markup             bool    `json:"markup"`
}

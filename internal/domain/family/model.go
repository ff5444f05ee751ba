package family

import "time"

// Member is a seller profile within an account. Articles carry a seller_id
// pointing here so a household can track who each piece belongs to.
type Member struct {
	ID     string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"-"`

	Name        string `gorm:"not null" json:"name"`
	Relation    string `json:"relation,omitempty"`
	AvatarColor string `json:"avatar_color,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

// User representa um usuario autenticado via Google OAuth.
// The admin flag is never exposed through a route; it is only set by
// direct data manipulation.
type User struct {
	ID            int64          `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name          string         `gorm:"not null" json:"name" form:"name"`
	Email         string         `gorm:"not null;unique" json:"email" form:"email"`
	OAuthProvider string         `gorm:"column:oauth_provider" json:"oauth_provider"`
	OAuthID       string         `gorm:"column:oauth_id;unique" json:"oauth_id"`
	Admin         bool           `gorm:"not null; default: false" json:"admin"`
	Purchases     []PlanPurchase `gorm:"foreignkey:UserID" json:"purchases,omitempty"`
	CreatedAt     *time.Time     `json:"created_at"`
	UpdatedAt     *time.Time     `json:"updated_at"`
}

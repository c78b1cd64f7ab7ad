package models

import "time"

/************************************************
/**** MARK: PLAN TYPES ****/
/************************************************/
const PLAN_TYPE_MINECRAFT = "MC"
const PLAN_TYPE_VPS = "VPS"

// Plan representa uma oferta de hospedagem comprável.
// Plans are created and deleted by admins only; there is no update.
type Plan struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name      string     `gorm:"not null" json:"name" form:"name"`
	Type      string     `gorm:"not null" json:"type" form:"type"` // MC or VPS
	Price     float64    `gorm:"not null" json:"price" form:"price"`
	Resources string     `gorm:"type:text" json:"resources" form:"resources"` // JSON or free text
	Duration  int        `gorm:"not null" json:"duration" form:"duration"`    // in days
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

package models

import "time"

/************************************************
/**** MARK: PURCHASE STATUS ****/
/************************************************/
const PURCHASE_STATUS_PENDING = "pending"
const PURCHASE_STATUS_COMPLETED = "completed"

// PURCHASE_STATUS_FAILED is a defined status that no code path sets today.
const PURCHASE_STATUS_FAILED = "failed"

// PlanPurchase representa uma tentativa de compra de um plano.
// Transitions pending -> completed exactly once, via the payment success
// redirect or an admin action.
type PlanPurchase struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64      `gorm:"not null;index" json:"user_id"`
	PlanID    int64      `gorm:"not null;index" json:"plan_id"`
	Status    string     `gorm:"not null;default:'pending'" json:"status"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

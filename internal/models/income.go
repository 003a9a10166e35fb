package models

import "time"

// SuggestedIncomeSources is the fixed vocabulary offered for the free-text
// income source field. Arbitrary sources remain valid.
var SuggestedIncomeSources = []string{
	"ค่าเช่า",      // rent
	"ขายทรัพย์สิน", // sale proceeds
	"เงินมัดจำ",    // deposit
	"อื่นๆ",        // other
}

// Income represents a revenue entry against an asset.
type Income struct {
	Base
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	AssetID     string    `gorm:"type:uuid;not null;index" json:"asset_id"`
	Source      string    `gorm:"not null" json:"source"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Date        time.Time `gorm:"not null" json:"date"`
	Description string    `json:"description,omitempty"`
}

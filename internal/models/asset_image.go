package models

// AssetImage stores metadata for an image attached to an asset. The binary
// itself lives in external storage; only the URL is tracked here.
type AssetImage struct {
	Base
	UserID  string `gorm:"type:uuid;not null;index" json:"user_id"`
	AssetID string `gorm:"type:uuid;not null;index" json:"asset_id"`
	URL     string `gorm:"not null" json:"url"`
	Caption string `json:"caption,omitempty"`
	IsCover bool   `gorm:"default:false" json:"is_cover"`
}

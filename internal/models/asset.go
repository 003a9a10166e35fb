package models

import (
	"time"

	"gorm.io/gorm"
)

// PropertyType represents the kind of property an asset is.
type PropertyType string

const (
	PropertyTypeLand         PropertyType = "land"
	PropertyTypeHouse        PropertyType = "house"
	PropertyTypeSemiDetached PropertyType = "semi_detached"
	PropertyTypeCondo        PropertyType = "condo"
	PropertyTypeTownhouse    PropertyType = "townhouse"
	PropertyTypeCommercial   PropertyType = "commercial"
	PropertyTypeOther        PropertyType = "other"
)

// propertyTypeLabels maps property types to their Thai display labels.
var propertyTypeLabels = map[PropertyType]string{
	PropertyTypeLand:         "ที่ดิน",
	PropertyTypeHouse:        "บ้านเดี่ยว",
	PropertyTypeSemiDetached: "บ้านแฝด",
	PropertyTypeCondo:        "คอนโด",
	PropertyTypeTownhouse:    "ทาวน์เฮาส์",
	PropertyTypeCommercial:   "อาคารพาณิชย์",
	PropertyTypeOther:        "อื่นๆ",
}

// Label returns the Thai display label for the property type.
func (p PropertyType) Label() string {
	if label, ok := propertyTypeLabels[p]; ok {
		return label
	}
	return string(p)
}

// IsValid reports whether p is a known property type.
func (p PropertyType) IsValid() bool {
	_, ok := propertyTypeLabels[p]
	return ok
}

// AssetStatus represents the sale/rental state of an asset.
type AssetStatus string

const (
	AssetStatusDeveloping   AssetStatus = "developing"
	AssetStatusReadyForSale AssetStatus = "ready_for_sale"
	AssetStatusReadyForRent AssetStatus = "ready_for_rent"
	AssetStatusRented       AssetStatus = "rented"
	AssetStatusSold         AssetStatus = "sold"
)

// AllAssetStatuses lists every asset status, in display order.
var AllAssetStatuses = []AssetStatus{
	AssetStatusDeveloping,
	AssetStatusReadyForSale,
	AssetStatusReadyForRent,
	AssetStatusRented,
	AssetStatusSold,
}

// IsValid reports whether s is a known asset status.
func (s AssetStatus) IsValid() bool {
	for _, status := range AllAssetStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Asset represents a tracked real-estate property.
type Asset struct {
	Base
	UserID          string       `gorm:"type:uuid;not null;index" json:"user_id"`
	TitleDeedNumber string       `gorm:"not null" json:"title_deed_number"`
	Name            string       `gorm:"not null" json:"name"`
	PropertyType    PropertyType `gorm:"not null" json:"property_type"`
	Status          AssetStatus  `gorm:"not null;default:'developing'" json:"status"`
	PurchasePrice   float64      `gorm:"not null" json:"purchase_price"`
	AppraisedValue  *float64     `json:"appraised_value,omitempty"`

	// Mortgage terms
	MortgageBank   string   `json:"mortgage_bank,omitempty"`
	MonthlyPayment *float64 `json:"monthly_payment,omitempty"`
	MortgageMonths *int     `json:"mortgage_months,omitempty"`

	// Recurring due dates
	InsuranceDueDate *time.Time `json:"insurance_due_date,omitempty"`
	TaxDueDate       *time.Time `json:"tax_due_date,omitempty"`

	// Tenant info, meaningful only while Status is rented
	TenantName    string `json:"tenant_name,omitempty"`
	TenantContact string `json:"tenant_contact,omitempty"`

	Notes string `json:"notes,omitempty"`

	// Relationships
	Projects []RenovationProject `gorm:"foreignKey:AssetID" json:"projects,omitempty"`
	Images   []AssetImage        `gorm:"foreignKey:AssetID" json:"images,omitempty"`
}

// BeforeSave clears tenant fields whenever the asset is not rented.
// Tenant data only makes sense for a rented asset.
func (a *Asset) BeforeSave(tx *gorm.DB) error {
	if a.Status != AssetStatusRented {
		a.TenantName = ""
		a.TenantContact = ""
	}
	return nil
}

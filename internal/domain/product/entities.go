package product

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound        = errors.New("loan product not found")
	ErrBadAvailability = errors.New("availability must be 'available' or 'unavailable'")
)

type Availability string

const (
	Available   Availability = "available"
	Unavailable Availability = "unavailable"
)

func (a Availability) Valid() bool { return a == Available || a == Unavailable }

type Product struct {
	ID        uint64 `gorm:"primaryKey;column:id" json:"-"`
	ProductID string `gorm:"size:32;uniqueIndex:ux_products_product_id" json:"product_id"`

	Title        string  `gorm:"size:255" json:"title"`
	Description  string  `gorm:"type:text" json:"description"`
	Category     string  `gorm:"size:128" json:"category"`
	InterestRate float64 `gorm:"type:decimal(6,4)" json:"interest_rate"`
	Documents    string  `gorm:"type:text" json:"documents"`
	Image        string  `gorm:"type:text" json:"image"`
	// Limit is the maximum loan amount offered under this product.
	Limit float64 `gorm:"column:loan_limit;type:decimal(18,2)" json:"limit"`
	EMI   string  `gorm:"column:emi;size:128" json:"emi"`

	Availability Availability `gorm:"type:enum('available','unavailable');default:'available'" json:"availability"`

	// Creator snapshot, embedded by value. Intentionally not a foreign key:
	// the listing stays renderable even if the manager record changes later.
	ManagerEmail string `gorm:"size:255;index:idx_products_manager" json:"manager_email"`
	ManagerName  string `gorm:"size:255" json:"manager_name"`
	ManagerImage string `gorm:"type:text" json:"manager_image"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string { return "loan_products" }

// Patch carries partial updates; nil fields are left as stored.
type Patch struct {
	Title        *string
	Description  *string
	Category     *string
	InterestRate *float64
	Documents    *string
	Image        *string
	Limit        *float64
	EMI          *string
}

func (p Patch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Category == nil &&
		p.InterestRate == nil && p.Documents == nil && p.Image == nil &&
		p.Limit == nil && p.EMI == nil
}

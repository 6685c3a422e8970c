package archive

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("approved loan record not found")

// Record is the audit snapshot inserted at the moment an application is
// approved. It copies the application's full field set and lives on
// independently of later mutation (or deletion) of the source row.
type Record struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	RecordID string `gorm:"size:32;uniqueIndex:ux_approved_loans_record_id" json:"record_id"`

	ApplicationID string `gorm:"size:32;index:idx_approved_loans_application" json:"application_id"`
	ProductID     string `gorm:"size:32" json:"product_id"`
	UserEmail     string `gorm:"size:255;index:idx_approved_loans_user" json:"user_email"`

	FirstName     string  `gorm:"size:128" json:"first_name"`
	LastName      string  `gorm:"size:128" json:"last_name"`
	ContactNumber string  `gorm:"size:32" json:"contact_number"`
	NIDOrPassport string  `gorm:"size:64;column:nid_or_passport" json:"nid_or_passport"`
	IncomeSource  string  `gorm:"size:128" json:"income_source"`
	MonthlyIncome float64 `gorm:"type:decimal(18,2)" json:"monthly_income"`
	LoanAmount    float64 `gorm:"type:decimal(18,2)" json:"loan_amount"`
	ReasonForLoan string  `gorm:"type:text" json:"reason_for_loan"`
	Address       string  `gorm:"type:text" json:"address"`

	LoanTitle    string  `gorm:"size:255" json:"loan_title"`
	InterestRate float64 `gorm:"type:decimal(6,4)" json:"interest_rate"`

	Status     string    `gorm:"size:16;default:'Approved'" json:"status"`
	ApprovedAt time.Time `json:"approved_at"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Record) TableName() string { return "approved_loans" }

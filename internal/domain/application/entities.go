package application

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound        = errors.New("loan application not found")
	ErrAlreadyDecided  = errors.New("application already decided")
	ErrNotCancellable  = errors.New("application cannot be cancelled")
	ErrNotOwner        = errors.New("not the owner of this application")
	ErrBadDecision     = errors.New("decision must be 'Approved' or 'Rejected'")
	ErrEmptyPaymentRef = errors.New("payment reference must not be empty")
)

// Status is the decision axis. Pending is the only non-terminal state.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// FeeStatus is the application-fee axis, independent of the decision axis.
type FeeStatus string

const (
	FeeUnpaid FeeStatus = "Unpaid"
	FeePaid   FeeStatus = "Paid"
)

type Application struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID string `gorm:"size:32;uniqueIndex:ux_applications_application_id" json:"application_id"`

	ProductID string `gorm:"size:32;index:idx_applications_product" json:"product_id"`
	UserEmail string `gorm:"size:255;index:idx_applications_user" json:"user_email"`

	FirstName     string  `gorm:"size:128" json:"first_name"`
	LastName      string  `gorm:"size:128" json:"last_name"`
	ContactNumber string  `gorm:"size:32" json:"contact_number"`
	NIDOrPassport string  `gorm:"size:64;column:nid_or_passport" json:"nid_or_passport"`
	IncomeSource  string  `gorm:"size:128" json:"income_source"`
	MonthlyIncome float64 `gorm:"type:decimal(18,2)" json:"monthly_income"`
	LoanAmount    float64 `gorm:"type:decimal(18,2)" json:"loan_amount"`
	ReasonForLoan string  `gorm:"type:text" json:"reason_for_loan"`
	Address       string  `gorm:"type:text" json:"address"`

	// Product snapshot taken at submission. Intentionally allowed to drift
	// from the product row it was copied from.
	LoanTitle    string  `gorm:"size:255" json:"loan_title"`
	InterestRate float64 `gorm:"type:decimal(6,4)" json:"interest_rate"`

	Status    Status    `gorm:"type:enum('Pending','Approved','Rejected');default:'Pending'" json:"status"`
	FeeStatus FeeStatus `gorm:"type:enum('Unpaid','Paid');default:'Unpaid';column:fee_status" json:"application_status"`
	PaymentID string    `gorm:"size:255" json:"payment_id,omitempty"`

	Date       time.Time  `json:"date"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	RejectedAt *time.Time `json:"rejected_at,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Application) TableName() string { return "loan_applications" }

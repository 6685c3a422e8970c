package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM) ---

type userSQLite struct {
	ID               uint64         `gorm:"primaryKey;column:id"`
	UserID           string         `gorm:"size:32;uniqueIndex;column:user_id"`
	Email            string         `gorm:"size:255;uniqueIndex;column:email"`
	Name             string         `gorm:"column:name"`
	Image            string         `gorm:"column:image"`
	Role             string         `gorm:"type:text;column:role"` // ← no enum
	Status           string         `gorm:"type:text;column:status"`
	SuspensionReason string         `gorm:"column:suspension_reason"`
	AdminFeedback    string         `gorm:"column:admin_feedback"`
	SuspendedAt      *time.Time     `gorm:"column:suspended_at"`
	TotalApplied     int64          `gorm:"column:total_applied"`
	TotalPending     int64          `gorm:"column:total_pending"`
	TotalApproved    int64          `gorm:"column:total_approved"`
	TotalRejected    int64          `gorm:"column:total_rejected"`
	LastLoggedIn     time.Time      `gorm:"column:last_logged_in"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (userSQLite) TableName() string { return "users" }

type productSQLite struct {
	ID           uint64         `gorm:"primaryKey;column:id"`
	ProductID    string         `gorm:"size:32;uniqueIndex;column:product_id"`
	Title        string         `gorm:"column:title"`
	Description  string         `gorm:"column:description"`
	Category     string         `gorm:"column:category"`
	InterestRate float64        `gorm:"column:interest_rate"`
	Documents    string         `gorm:"column:documents"`
	Image        string         `gorm:"column:image"`
	Limit        float64        `gorm:"column:loan_limit"`
	EMI          string         `gorm:"column:emi"`
	Availability string         `gorm:"type:text;column:availability"` // ← no enum
	ManagerEmail string         `gorm:"column:manager_email"`
	ManagerName  string         `gorm:"column:manager_name"`
	ManagerImage string         `gorm:"column:manager_image"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (productSQLite) TableName() string { return "loan_products" }

type applicationSQLite struct {
	ID            uint64         `gorm:"primaryKey;column:id"`
	ApplicationID string         `gorm:"size:32;uniqueIndex;column:application_id"`
	ProductID     string         `gorm:"size:32;column:product_id"`
	UserEmail     string         `gorm:"column:user_email"`
	FirstName     string         `gorm:"column:first_name"`
	LastName      string         `gorm:"column:last_name"`
	ContactNumber string         `gorm:"column:contact_number"`
	NIDOrPassport string         `gorm:"column:nid_or_passport"`
	IncomeSource  string         `gorm:"column:income_source"`
	MonthlyIncome float64        `gorm:"column:monthly_income"`
	LoanAmount    float64        `gorm:"column:loan_amount"`
	ReasonForLoan string         `gorm:"column:reason_for_loan"`
	Address       string         `gorm:"column:address"`
	LoanTitle     string         `gorm:"column:loan_title"`
	InterestRate  float64        `gorm:"column:interest_rate"`
	Status        string         `gorm:"type:text;column:status"` // ← no enum
	FeeStatus     string         `gorm:"type:text;column:fee_status"`
	PaymentID     string         `gorm:"column:payment_id"`
	Date          time.Time      `gorm:"column:date"`
	PaidAt        *time.Time     `gorm:"column:paid_at"`
	ApprovedAt    *time.Time     `gorm:"column:approved_at"`
	RejectedAt    *time.Time     `gorm:"column:rejected_at"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (applicationSQLite) TableName() string { return "loan_applications" }

type archiveSQLite struct {
	ID            uint64         `gorm:"primaryKey;column:id"`
	RecordID      string         `gorm:"size:32;uniqueIndex;column:record_id"`
	ApplicationID string         `gorm:"size:32;column:application_id"`
	ProductID     string         `gorm:"size:32;column:product_id"`
	UserEmail     string         `gorm:"column:user_email"`
	FirstName     string         `gorm:"column:first_name"`
	LastName      string         `gorm:"column:last_name"`
	ContactNumber string         `gorm:"column:contact_number"`
	NIDOrPassport string         `gorm:"column:nid_or_passport"`
	IncomeSource  string         `gorm:"column:income_source"`
	MonthlyIncome float64        `gorm:"column:monthly_income"`
	LoanAmount    float64        `gorm:"column:loan_amount"`
	ReasonForLoan string         `gorm:"column:reason_for_loan"`
	Address       string         `gorm:"column:address"`
	LoanTitle     string         `gorm:"column:loan_title"`
	InterestRate  float64        `gorm:"column:interest_rate"`
	Status        string         `gorm:"column:status"`
	ApprovedAt    time.Time      `gorm:"column:approved_at"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (archiveSQLite) TableName() string { return "approved_loans" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&userSQLite{}, &productSQLite{}, &applicationSQLite{}, &archiveSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("user not found")
	ErrBadRole  = errors.New("invalid role")
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleBorrower Role = "borrower"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleBorrower:
		return true
	}
	return false
}

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

type User struct {
	ID     uint64 `gorm:"primaryKey;column:id" json:"-"`
	UserID string `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"user_id"`
	// Email is the external identity; always stored lowercase.
	Email string `gorm:"size:255;uniqueIndex:ux_users_email" json:"email"`
	Name  string `gorm:"size:255" json:"name"`
	Image string `gorm:"type:text" json:"image"`

	Role   Role   `gorm:"type:enum('admin','manager','borrower');default:'borrower'" json:"role"`
	Status Status `gorm:"type:enum('active','suspended');default:'active'" json:"status"`

	SuspensionReason string     `gorm:"type:text" json:"suspension_reason,omitempty"`
	AdminFeedback    string     `gorm:"type:text" json:"admin_feedback,omitempty"`
	SuspendedAt      *time.Time `json:"suspended_at,omitempty"`

	// Denormalized per-status application counts. Best-effort cache; the
	// authoritative numbers are always re-derivable from the applications
	// table (see registry.Reconcile).
	TotalApplied  int64 `gorm:"default:0" json:"total_applied"`
	TotalPending  int64 `gorm:"default:0" json:"total_pending"`
	TotalApproved int64 `gorm:"default:0" json:"total_approved"`
	TotalRejected int64 `gorm:"default:0" json:"total_rejected"`

	LastLoggedIn time.Time      `json:"last_logged_in"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

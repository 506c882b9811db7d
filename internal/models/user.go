package models

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles order the three access tiers: clients act on their own data,
// bank admins on their bank's client data, global admins everywhere.
const (
	RoleClient      = "client"
	RoleBankAdmin   = "bank_admin"
	RoleGlobalAdmin = "global_admin"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// User is an account owner or administrator. A nil BankID marks a
// platform-level actor not attached to any bank.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	FirstName    string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName     string     `gorm:"type:varchar(100);not null" json:"last_name"`
	Role         string     `gorm:"type:varchar(20);not null;default:'client'" json:"role"`
	BankID       *uuid.UUID `gorm:"type:uuid;index" json:"bank_id,omitempty"`
	Active       bool       `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updated_at"`

	// Associations
	Bank     *Bank     `gorm:"foreignKey:BankID" json:"-"`
	Accounts []Account `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	return u.Validate()
}

func (u *User) BeforeUpdate(tx *gorm.DB) error {
	// Map-based updates carry an empty struct; skip validation there.
	if tx != nil && tx.Statement != nil && tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	u.UpdatedAt = time.Now()
	return u.Validate()
}

func (u *User) Validate() error {
	if u.Email == "" {
		return errors.New("email is required")
	}

	if !emailRegex.MatchString(u.Email) {
		return errors.New("invalid email format")
	}

	if u.FirstName == "" {
		return errors.New("first name is required")
	}

	if u.LastName == "" {
		return errors.New("last name is required")
	}

	if !IsValidRole(u.Role) {
		return fmt.Errorf("invalid role: %s", u.Role)
	}

	return nil
}

func (u *User) IsClient() bool {
	return u.Role == RoleClient
}

func (u *User) IsBankAdmin() bool {
	return u.Role == RoleBankAdmin
}

func (u *User) IsGlobalAdmin() bool {
	return u.Role == RoleGlobalAdmin
}

func (u *User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

func (u *User) TableName() string {
	return "users"
}

// IsValidRole checks if the role is one of the known tiers
func IsValidRole(role string) bool {
	switch role {
	case RoleClient, RoleBankAdmin, RoleGlobalAdmin:
		return true
	default:
		return false
	}
}

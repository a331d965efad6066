package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User types
const (
	UserTypeOrdinary = "ORDINARY"
	UserTypeMerchant = "MERCHANT"
)

// Document types
const (
	DocumentTypeCPF      = "CPF"
	DocumentTypeCNPJ     = "CNPJ"
	DocumentTypePassport = "PASSPORT"
)

// User is an account holder. ORDINARY users may send and receive funds,
// MERCHANT users may only receive.
type User struct {
	ID             uint            `gorm:"primarykey" json:"id"`
	LegalName      string          `gorm:"size:100;not null" json:"legal_name"`
	DocumentType   string          `gorm:"size:32;not null" json:"document_type"`
	DocumentNumber string          `gorm:"size:32;uniqueIndex;not null" json:"document_number"`
	Email          string          `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PhoneNumber    string          `gorm:"size:32" json:"phone_number"`
	Password       string          `gorm:"size:100;not null" json:"-"`
	Balance        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"balance"`
	UserType       string          `gorm:"size:32;not null;default:'ORDINARY'" json:"user_type"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// IsMerchant reports whether the user is a merchant account.
func (u *User) IsMerchant() bool {
	return u.UserType == UserTypeMerchant
}

// CreateUserInput carries the fields accepted when registering a user.
type CreateUserInput struct {
	LegalName      string          `json:"legal_name"`
	DocumentType   string          `json:"document_type"`
	DocumentNumber string          `json:"document_number"`
	Email          string          `json:"email"`
	PhoneNumber    string          `json:"phone_number"`
	Password       string          `json:"password"`
	Balance        decimal.Decimal `json:"balance"`
	UserType       string          `json:"user_type"`
}

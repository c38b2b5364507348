package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleParticipant UserRole = "participant"
	RoleSponsor     UserRole = "sponsor"
	RoleAdmin       UserRole = "admin"
)

type User struct {
	ID          uint32     `gorm:"primarykey" json:"id"`
	Email       string     `gorm:"size:255;unique;not null" json:"email"`
	Username    string     `gorm:"size:100;unique;not null" json:"username"`
	Password    string     `gorm:"size:255;not null" json:"-"`
	DisplayName string     `gorm:"size:255" json:"display_name"`
	Role        UserRole   `gorm:"size:20;not null;default:'participant'" json:"role"`
	IsActive    bool       `gorm:"not null;default:true" json:"is_active"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "daggle_user"
}

// BeforeSave hashes the password on create. Updates go through SetPassword;
// Changed does not fire on a full-struct Save.
func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	if u.ID == 0 || tx.Statement.Changed("Password") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashed)
	}
	return
}

// SetPassword hashes and stores a new password.
func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// CanSponsor reports whether the user may create and manage competitions.
func (u *User) CanSponsor() bool {
	return u.Role == RoleSponsor || u.Role == RoleAdmin
}

package db

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is an account that can sign in to the admin API. Only staff users
// pass the admin access check.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"size:150;uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	Email     string `gorm:"size:254"`
	FirstName string `gorm:"size:150"`
	LastName  string `gorm:"size:150"`
	IsStaff   bool
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u User) RecordID() uint { return u.ID }

// FullName joins first and last name, skipping blanks.
func (u User) FullName() string {
	return strings.TrimSpace(strings.Join([]string{strings.TrimSpace(u.FirstName), strings.TrimSpace(u.LastName)}, " "))
}

// CheckPassword reports whether the plain password matches the stored hash.
func (u User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// BeforeDelete detaches articles and audit records so that removing an
// account never removes content.
func (u *User) BeforeDelete(tx *gorm.DB) error {
	if err := tx.Model(&NewsArticle{}).Where("author_id = ?", u.ID).Update("author_id", nil).Error; err != nil {
		return err
	}
	return tx.Model(&ActivityLog{}).Where("user_id = ?", u.ID).Update("user_id", nil).Error
}

// EnsureUser creates a staff account with a bcrypt hash when both username and
// password are provided and no account with that username exists yet.
func EnsureUser(gdb *gorm.DB, username, password string) error {
	trimmedUser := strings.TrimSpace(username)
	trimmedPassword := strings.TrimSpace(password)
	if trimmedUser == "" || trimmedPassword == "" {
		return nil
	}

	if gdb == nil {
		return errors.New("database not initialized")
	}

	var existing User
	if err := gdb.Where("username = ?", trimmedUser).First(&existing).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(trimmedPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		return gdb.Create(&User{
			Username: trimmedUser,
			Password: string(hashed),
			IsStaff:  true,
			IsActive: true,
		}).Error
	}

	return nil
}

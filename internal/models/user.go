package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	GithubID string `gorm:"index" json:"-"`
	Username string `json:"username"`
	Email    string `gorm:"uniqueIndex" json:"email"`
	Password string `json:"-"` // bcrypt hash, empty for OAuth-only accounts
	Avatar   string `json:"avatar"`
}

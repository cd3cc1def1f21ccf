package models

import (
	"gorm.io/gorm"
)

// Session backs bearer-token auth: a JWT is only accepted while its
// session row exists, so tokens can be revoked server-side.
type Session struct {
	gorm.Model
	UserID uint   `json:"user_id"`
	User   User   `json:"-"`
	Token  string `gorm:"uniqueIndex" json:"token"`
}

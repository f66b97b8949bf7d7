package models

import "time"

// UserModel is the site owner account. Single-author system: the first
// registered user owns everything.
type UserModel struct {
	Base
	Username      string     `json:"username" gorm:"uniqueIndex;not null"`
	Name          string     `json:"name"`
	PasswordHash  string     `json:"-"        gorm:"not null"`
	LastLoginTime *time.Time `json:"last_login_time"`
}

func (UserModel) TableName() string { return "users" }

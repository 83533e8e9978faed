package models

import (
	"time"
)

// Role names stored on users.role.
const (
	RoleStudent  = "student"
	RoleReviewer = "reviewer"
	RoleHOD      = "hod"
	RoleAdmin    = "admin"
)

// User is a staff account: reviewer (SPC), HOD or admin. Students never
// hold accounts; they submit applications anonymously through the intake
// endpoint.
type User struct {
	UserID   int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	Name     string     `gorm:"column:name" json:"name"`
	Email    string     `gorm:"column:email;unique" json:"email"`
	Password string     `gorm:"column:password" json:"-"`
	Role     string     `gorm:"column:role" json:"role"`
	CreateAt *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Role is the set of account roles known to the system. Authorization
// points switch exhaustively over these values; anything else denies.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// ParseRole maps a stored or transmitted role string to a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleDoctor, RolePatient:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) String() string {
	return string(r)
}

// User represents a login account. A user may be linked 1:1 to a Doctor
// or Patient profile depending on its role.
type User struct {
	ID           int64     `gorm:"primaryKey;column:id" json:"id"`
	Username     string    `gorm:"size:80;not null;unique;index;column:username" json:"username"`
	Email        string    `gorm:"size:120;index;column:email" json:"email"`
	PasswordHash string    `gorm:"size:255;not null;column:password_hash" json:"-"`
	Role         Role      `gorm:"size:20;not null;default:'patient';column:role" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// SeedAdminUser creates the initial admin account on first run. The
// password arrives already hashed; rotating it is a deployment concern.
func SeedAdminUser(db *gorm.DB, passwordHash string) error {
	admin := User{
		Username:     "admin",
		Email:        "admin@hospital.local",
		PasswordHash: passwordHash,
		Role:         RoleAdmin,
	}
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.FirstOrCreate(&admin, User{Username: admin.Username}).Error
	})
}

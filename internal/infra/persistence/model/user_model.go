// Package model contains the GORM persistence models mirroring the database
// schema. Mapping between these and the domain entities lives in the postgres
// package.
package model

import "time"

// UserModel mirrors the 'users' table. The role column stores the bare role
// value ("USER"/"ADMIN"); unrecognized stored values decode leniently to USER.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null;column:password_hash"`
	Role         string `gorm:"type:varchar(20);not null;default:USER"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

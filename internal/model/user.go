package model

import (
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Username  string    `json:"username" gorm:"size:50;not null;uniqueIndex"`
	Password  string    `json:"-" gorm:"size:100;not null"`
	Role      Role      `json:"role" gorm:"size:20;not null;default:'user'"`
	Name      string    `json:"name" gorm:"size:100;default:''"`
	Lastname  string    `json:"lastname" gorm:"size:100;default:''"`
	Phone     string    `json:"phone" gorm:"size:50;default:''"`
	Email     string    `json:"email" gorm:"size:100;not null;uniqueIndex"`
	Active    bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Tests []Test `json:"tests,omitempty" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

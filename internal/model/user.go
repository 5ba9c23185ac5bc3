package model

import "time"

type UserRole string

const (
	Member UserRole = "member"
	Admin  UserRole = "admin"
)

// User is the local profile row for an identity minted by the external
// identity provider. Authentication itself never happens here; the row only
// carries the public profile fields other records join against.
// swagger:model User
type User struct {
	BaseModel
	Name     string   `gorm:"size:100;not null" json:"name"`
	Email    string   `gorm:"size:100;unique;not null" json:"email"`
	Handle   string   `gorm:"size:50" json:"handle"`
	Avatar   string   `gorm:"size:255" json:"avatar"`
	Role     UserRole `gorm:"size:20;default:'member'" json:"role"`
	Disabled bool     `gorm:"default:false" json:"-"`
	LastSeen time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}

// PublicProfile is the author shape joined onto comments and posts.
type PublicProfile struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Handle string `json:"handle"`
	Avatar string `json:"avatar"`
}

func (u *User) Public() PublicProfile {
	return PublicProfile{ID: u.ID, Name: u.Name, Handle: u.Handle, Avatar: u.Avatar}
}

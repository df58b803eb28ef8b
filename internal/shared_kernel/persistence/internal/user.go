package internal

import (
	"time"

	"formflow-server/internal/shared_kernel/domain"
)

type User struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	TenantID     string     `json:"tenant_id" gorm:"index;not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	FullName     string     `json:"full_name"`
	Role         string     `json:"role" gorm:"not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u User) ToDomain() domain.User {
	return domain.User{
		ID:           domain.ID(u.ID),
		TenantID:     domain.ID(u.TenantID),
		Email:        u.Email,
		FullName:     u.FullName,
		Role:         domain.UserRole(u.Role),
		PasswordHash: u.PasswordHash,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		LastLoginAt:  u.LastLoginAt,
	}
}

func FromUser(value domain.User) User {
	return User{
		ID:           value.ID.String(),
		TenantID:     value.TenantID.String(),
		Email:        value.Email,
		FullName:     value.FullName,
		Role:         string(value.Role),
		PasswordHash: value.PasswordHash,
		IsActive:     value.IsActive,
		CreatedAt:    value.CreatedAt,
		UpdatedAt:    value.UpdatedAt,
		LastLoginAt:  value.LastLoginAt,
	}
}

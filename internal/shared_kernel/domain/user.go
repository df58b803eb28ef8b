package domain

import (
	"fmt"
	"time"

	"formflow-server/internal/infra/utils"

	"golang.org/x/crypto/bcrypt"
)

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleEditor   UserRole = "editor"
	RoleApprover UserRole = "approver"
	RoleViewer   UserRole = "viewer"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleApprover, RoleViewer:
		return true
	}
	return false
}

type User struct {
	ID           ID
	TenantID     ID
	Email        string
	FullName     string
	Role         UserRole
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLoginAt  *time.Time
}

func (u *User) SetPassword(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	u.PasswordHash = string(hash)
	return nil
}

func (u *User) CheckPassword(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plaintext)) == nil
}

func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLoginAt = &now
}

func (u *User) Deactivate() {
	u.IsActive = false
	u.UpdatedAt = time.Now()
}

// CanApprove reports whether the role may move submissions through the
// approval workflow.
func (r UserRole) CanApprove() bool {
	return r == RoleAdmin || r == RoleApprover
}

// CanEditForms reports whether the role may create or modify form definitions.
func (r UserRole) CanEditForms() bool {
	return r == RoleAdmin || r == RoleEditor
}

func (u *User) CanApprove() bool {
	return u.Role.CanApprove()
}

func (u *User) CanEditForms() bool {
	return u.Role.CanEditForms()
}

func NewUserBuilder() *userBuilder {
	return &userBuilder{}
}

type userBuilder struct {
	actions []userHandler
}

type userHandler func(u *User) error

func (b *userBuilder) WithTenantID(tenantID ID) *userBuilder {
	b.actions = append(b.actions, func(u *User) error {
		u.TenantID = tenantID
		return nil
	})
	return b
}

func (b *userBuilder) WithEmail(email string) *userBuilder {
	b.actions = append(b.actions, func(u *User) error {
		u.Email = email
		return nil
	})
	return b
}

func (b *userBuilder) WithFullName(fullName string) *userBuilder {
	b.actions = append(b.actions, func(u *User) error {
		u.FullName = fullName
		return nil
	})
	return b
}

func (b *userBuilder) WithRole(role UserRole) *userBuilder {
	b.actions = append(b.actions, func(u *User) error {
		if !role.IsValid() {
			return fmt.Errorf("unknown role: %s", role)
		}
		u.Role = role
		return nil
	})
	return b
}

func (b *userBuilder) WithPassword(plaintext string) *userBuilder {
	b.actions = append(b.actions, func(u *User) error {
		return u.SetPassword(plaintext)
	})
	return b
}

func (b *userBuilder) Build() (User, error) {
	now := time.Now()
	result := User{
		ID:        ID(utils.GenerateUUID()),
		Role:      RoleViewer,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return User{}, err
		}
	}

	return result, nil
}

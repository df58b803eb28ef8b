package domain

import (
	"fmt"
	"time"

	"formflow-server/internal/infra/utils"
)

type PlanType string

const (
	PlanFree       PlanType = "free"
	PlanPro        PlanType = "pro"
	PlanAdvanced   PlanType = "advanced"
	PlanEnterprise PlanType = "enterprise"
)

// PlanLimits caps how many users and forms a tenant may hold. The enterprise
// tier uses a sentinel large value rather than a special "unlimited" branch.
type PlanLimits struct {
	MaxUsers int
	MaxForms int
}

const unlimitedQuota = 999999

var planLimits = map[PlanType]PlanLimits{
	PlanFree:       {MaxUsers: 1, MaxForms: 3},
	PlanPro:        {MaxUsers: 10, MaxForms: 30},
	PlanAdvanced:   {MaxUsers: 100, MaxForms: 300},
	PlanEnterprise: {MaxUsers: unlimitedQuota, MaxForms: unlimitedQuota},
}

func LimitsForPlan(plan PlanType) PlanLimits {
	if limits, ok := planLimits[plan]; ok {
		return limits
	}
	return planLimits[PlanFree]
}

func (p PlanType) IsValid() bool {
	_, ok := planLimits[p]
	return ok
}

type Tenant struct {
	ID        ID
	Name      string
	Subdomain string
	Plan      PlanType
	MaxUsers  int
	MaxForms  int
	IsActive  bool
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // For soft deletion
}

func (t *Tenant) IsDeleted() bool {
	return t.DeletedAt != nil
}

func (t *Tenant) SoftDelete() {
	now := time.Now()
	t.DeletedAt = &now
	t.IsActive = false
	t.UpdatedAt = now
}

func (t *Tenant) Activate() {
	t.IsActive = true
	t.UpdatedAt = time.Now()
}

func (t *Tenant) Deactivate() {
	t.IsActive = false
	t.UpdatedAt = time.Now()
}

// IsWithinUserLimit reports whether one more user still fits the plan.
func (t *Tenant) IsWithinUserLimit(currentUserCount int) bool {
	return currentUserCount < t.MaxUsers
}

// IsWithinFormLimit reports whether one more form still fits the plan.
func (t *Tenant) IsWithinFormLimit(currentFormCount int) bool {
	return currentFormCount < t.MaxForms
}

// ChangePlan moves the tenant to a new tier and resets its quotas.
func (t *Tenant) ChangePlan(plan PlanType) error {
	if !plan.IsValid() {
		return fmt.Errorf("unknown plan: %s", plan)
	}
	limits := LimitsForPlan(plan)
	t.Plan = plan
	t.MaxUsers = limits.MaxUsers
	t.MaxForms = limits.MaxForms
	t.UpdatedAt = time.Now()
	return nil
}

func (t *Tenant) UpdateInfo(name, subdomain string) {
	if name != "" {
		t.Name = name
	}
	if subdomain != "" {
		t.Subdomain = subdomain
	}
	t.UpdatedAt = time.Now()
}

func NewTenantBuilder() *tenantBuilder {
	return &tenantBuilder{}
}

type tenantBuilder struct {
	actions []tenantHandler
}

type tenantHandler func(t *Tenant) error

func (b *tenantBuilder) WithName(name string) *tenantBuilder {
	b.actions = append(b.actions, func(t *Tenant) error {
		t.Name = name
		return nil
	})
	return b
}

func (b *tenantBuilder) WithSubdomain(subdomain string) *tenantBuilder {
	b.actions = append(b.actions, func(t *Tenant) error {
		t.Subdomain = subdomain
		return nil
	})
	return b
}

func (b *tenantBuilder) WithPlan(plan PlanType) *tenantBuilder {
	b.actions = append(b.actions, func(t *Tenant) error {
		if !plan.IsValid() {
			return fmt.Errorf("unknown plan: %s", plan)
		}
		limits := LimitsForPlan(plan)
		t.Plan = plan
		t.MaxUsers = limits.MaxUsers
		t.MaxForms = limits.MaxForms
		return nil
	})
	return b
}

func (b *tenantBuilder) Build() (Tenant, error) {
	now := time.Now()
	freeLimits := LimitsForPlan(PlanFree)
	result := Tenant{
		ID:        ID(utils.GenerateUUID()),
		Plan:      PlanFree,
		MaxUsers:  freeLimits.MaxUsers,
		MaxForms:  freeLimits.MaxForms,
		IsActive:  true,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return Tenant{}, err
		}
	}

	return result, nil
}

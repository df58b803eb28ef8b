package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantBuilder_Defaults(t *testing.T) {
	tenant, err := NewTenantBuilder().
		WithName("Acme Inspections").
		WithSubdomain("acme").
		Build()

	require.NoError(t, err)
	assert.NotEmpty(t, tenant.ID)
	assert.Equal(t, PlanFree, tenant.Plan)
	assert.Equal(t, 1, tenant.MaxUsers)
	assert.Equal(t, 3, tenant.MaxForms)
	assert.True(t, tenant.IsActive)
	assert.Equal(t, 1, tenant.Version)
}

func TestTenantBuilder_WithPlan(t *testing.T) {
	tests := []struct {
		plan     PlanType
		maxUsers int
		maxForms int
	}{
		{PlanFree, 1, 3},
		{PlanPro, 10, 30},
		{PlanAdvanced, 100, 300},
		{PlanEnterprise, 999999, 999999},
	}

	for _, tt := range tests {
		t.Run(string(tt.plan), func(t *testing.T) {
			tenant, err := NewTenantBuilder().
				WithName("Acme").
				WithPlan(tt.plan).
				Build()

			require.NoError(t, err)
			assert.Equal(t, tt.maxUsers, tenant.MaxUsers)
			assert.Equal(t, tt.maxForms, tenant.MaxForms)
		})
	}
}

func TestTenantBuilder_UnknownPlan(t *testing.T) {
	_, err := NewTenantBuilder().
		WithName("Acme").
		WithPlan(PlanType("platinum")).
		Build()

	assert.Error(t, err)
}

func TestTenant_FormAndUserLimits(t *testing.T) {
	tenant, err := NewTenantBuilder().WithName("Acme").WithPlan(PlanPro).Build()
	require.NoError(t, err)

	assert.True(t, tenant.IsWithinFormLimit(29))
	assert.False(t, tenant.IsWithinFormLimit(30))
	assert.True(t, tenant.IsWithinUserLimit(9))
	assert.False(t, tenant.IsWithinUserLimit(10))
}

func TestTenant_SoftDelete(t *testing.T) {
	tenant, err := NewTenantBuilder().WithName("Acme").Build()
	require.NoError(t, err)

	assert.False(t, tenant.IsDeleted())
	tenant.SoftDelete()
	assert.True(t, tenant.IsDeleted())
	assert.False(t, tenant.IsActive)
}

func TestTenant_ChangePlan(t *testing.T) {
	tenant, err := NewTenantBuilder().WithName("Acme").Build()
	require.NoError(t, err)

	require.NoError(t, tenant.ChangePlan(PlanAdvanced))
	assert.Equal(t, PlanAdvanced, tenant.Plan)
	assert.Equal(t, 300, tenant.MaxForms)

	assert.Error(t, tenant.ChangePlan(PlanType("bronze")))
}

package access

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoleSetSeed(t *testing.T) {
	s := NewTokenRoleSet().Seed(RoleAdmin, []string{"alpha", " beta ", "", "alpha"})

	ctx := context.Background()
	assert.True(t, s.HasRole(ctx, "alpha", RoleAdmin))
	assert.True(t, s.HasRole(ctx, "beta", RoleAdmin))
	assert.False(t, s.HasRole(ctx, "", RoleAdmin))
	assert.False(t, s.HasRole(ctx, "alpha", RoleSuperAdmin))
}

func TestTokenRoleSetGrantRevoke(t *testing.T) {
	s := NewTokenRoleSet()
	ctx := context.Background()

	assert.False(t, s.HasRole(ctx, "alpha", RoleAdmin))

	s.Grant(RoleAdmin, "alpha")
	assert.True(t, s.HasRole(ctx, "alpha", RoleAdmin))

	// granting twice then revoking once removes the grant entirely
	s.Grant(RoleAdmin, "alpha")
	s.Revoke(RoleAdmin, "alpha")
	assert.False(t, s.HasRole(ctx, "alpha", RoleAdmin))

	// revoking an absent grant is a no-op
	s.Revoke(RoleAdmin, "missing")
	assert.False(t, s.HasRole(ctx, "missing", RoleAdmin))
}

func TestTokenRoleSetRolesAreIndependent(t *testing.T) {
	s := NewTokenRoleSet()
	ctx := context.Background()

	s.Grant(RoleSuperAdmin, "root-token")
	assert.True(t, s.HasRole(ctx, "root-token", RoleSuperAdmin))
	assert.False(t, s.HasRole(ctx, "root-token", RoleAdmin))
}

// Package access implements the role capability substrate gating
// administrative endpoints. Callers are identified by bearer token;
// a TokenRoleSet maps tokens to role grants and can be reseeded at
// runtime through the grant/revoke endpoints.
package access

import (
	"context"
	"crypto/subtle"
	"strings"
	"sync"
)

const (
	// RoleAdmin may publish, update and shut down campaigns
	RoleAdmin = "admin"
	// RoleSuperAdmin manages admin membership and itself
	RoleSuperAdmin = "super-admin"
)

// Capability answers whether a caller holds a role
type Capability interface {
	HasRole(ctx context.Context, caller string, role string) bool
}

// TokenRoleSet maps bearer tokens to role grants
type TokenRoleSet struct {
	mu     sync.RWMutex
	grants map[string][]string
}

// NewTokenRoleSet constructs an empty TokenRoleSet
func NewTokenRoleSet() *TokenRoleSet {
	return &TokenRoleSet{
		grants: map[string][]string{},
	}
}

// Seed grants role to every non-empty token in tokens, typically the
// comma-separated contents of an environment variable
func (s *TokenRoleSet) Seed(role string, tokens []string) *TokenRoleSet {
	for _, token := range tokens {
		if token = strings.TrimSpace(token); token != "" {
			s.Grant(role, token)
		}
	}
	return s
}

// Grant adds token to role's granted set
func (s *TokenRoleSet) Grant(role string, token string) {
	if token == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, granted := range s.grants[role] {
		if granted == token {
			return
		}
	}
	s.grants[role] = append(s.grants[role], token)
}

// Revoke removes token from role's granted set
func (s *TokenRoleSet) Revoke(role string, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	granted := s.grants[role]
	for i, t := range granted {
		if t == token {
			s.grants[role] = append(granted[:i], granted[i+1:]...)
			return
		}
	}
}

// HasRole implements Capability, comparing caller against every grant for
// role in constant time
func (s *TokenRoleSet) HasRole(ctx context.Context, caller string, role string) bool {
	if caller == "" {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ok bool
	for _, granted := range s.grants[role] {
		// NOTE token length information is leaked even with subtle.ConstantTimeCompare
		if subtle.ConstantTimeCompare([]byte(granted), []byte(caller)) == 1 {
			ok = true
		}
	}
	return ok
}

package service

import (
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"go-legal-cms/internal/repository"
	"go-legal-cms/pkg/logger"
)

// RoleResolver answers "what role does this user hold" from the
// user_roles table, never from caller-supplied claims. Lookups are cached
// briefly; a failed or empty lookup resolves to "" which downstream gates
// treat as no elevated access.
type RoleResolver struct {
	roleRepo repository.RoleRepository
	cache    *gocache.Cache
	log      *logger.Logger
}

func NewRoleResolver(roleRepo repository.RoleRepository, ttl time.Duration, log *logger.Logger) *RoleResolver {
	return &RoleResolver{
		roleRepo: roleRepo,
		cache:    gocache.New(ttl, ttl*2),
		log:      log,
	}
}

// Resolve returns the user's role code or ""
func (r *RoleResolver) Resolve(userID uuid.UUID) string {
	key := userID.String()
	if cached, found := r.cache.Get(key); found {
		return cached.(string)
	}

	role, err := r.roleRepo.FindByUserID(userID)
	if err != nil {
		// Logged, not surfaced. The caller simply has no elevated access.
		r.log.Warn("role lookup failed", "user_id", key, "error", err)
		return ""
	}

	r.cache.Set(key, role.Role, gocache.DefaultExpiration)
	return role.Role
}

// Invalidate drops the cached role after a role change or user deletion
func (r *RoleResolver) Invalidate(userID uuid.UUID) {
	r.cache.Delete(userID.String())
}

package cache

import (
	"context"

	"github.com/zlnvch/noteverse/models"
)

// NoteverseCache is a read-through cache of user records keyed by normalized
// email. User records are immutable after registration, so a TTL is the only
// invalidation needed.
type NoteverseCache interface {
	GetUser(ctx context.Context, email string) (models.User, error)
	SetUser(ctx context.Context, user models.User) error
}

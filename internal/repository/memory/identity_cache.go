package memory

import (
	"context"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"hr-assistant-be/internal/repository/specification"
	"hr-assistant-be/internal/repository/unitofwork"
	"hr-assistant-be/pkg/nlp"
)

// IdentityCache is the normalizer's user-lookup collaborator: exact
// case-insensitive matches against the users table, memoized in-process.
// The employee roster is small and read-mostly, so a short TTL cache
// keeps name resolution off the hot path.
type IdentityCache struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *cache.Cache
}

func NewIdentityCache(uowFactory unitofwork.RepositoryFactory) *IdentityCache {
	// 5 minute expiry, purged every 10; stale entries only delay seeing a
	// renamed employee, they never produce a wrong id
	return &IdentityCache{
		uowFactory: uowFactory,
		cache:      cache.New(5*time.Minute, 10*time.Minute),
	}
}

var _ nlp.IdentityLookup = (*IdentityCache)(nil)

func (c *IdentityCache) FindByName(ctx context.Context, name string) (*nlp.Identity, error) {
	return c.lookup(ctx, "name:"+strings.ToLower(name), specification.NameEqualFold{Field: "full_name", Name: name})
}

func (c *IdentityCache) FindByCode(ctx context.Context, code string) (*nlp.Identity, error) {
	return c.lookup(ctx, "code:"+code, specification.Filter("code", code))
}

func (c *IdentityCache) lookup(ctx context.Context, key string, spec specification.Specification) (*nlp.Identity, error) {
	if x, found := c.cache.Get(key); found {
		return x.(*nlp.Identity), nil
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, spec)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// misses are not cached: a brand-new employee should resolve on
		// the very next query
		return nil, nil
	}

	id := &nlp.Identity{ID: user.Id, Code: user.Code, Name: user.FullName}
	c.cache.Set(key, id, cache.DefaultExpiration)
	return id, nil
}

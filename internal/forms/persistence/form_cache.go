package persistence

import (
	"context"
	"time"

	"formflow-server/internal/forms/domain"
	"formflow-server/internal/forms/persistence/internal"
	"formflow-server/internal/forms/usecases"
	"formflow-server/internal/infra/cache"
	shareddomain "formflow-server/internal/shared_kernel/domain"
)

const defaultFormCacheTTL = 5 * time.Minute

func NewFormCache(store cache.Cache, ttl time.Duration) *SimpleFormCache {
	if ttl <= 0 {
		ttl = defaultFormCacheTTL
	}

	return &SimpleFormCache{
		store: store,
		ttl:   ttl,
	}
}

var _ usecases.FormCache = (*SimpleFormCache)(nil)

// SimpleFormCache caches the persistence representation of a form. The DTO
// keeps field configs as raw JSON, which encodes cleanly; the domain form's
// typed configs do not.
type SimpleFormCache struct {
	store cache.Cache
	ttl   time.Duration
}

func (c *SimpleFormCache) GetForm(ctx context.Context, id shareddomain.ID) (domain.Form, bool) {
	var entity internal.Form
	if !c.store.Get(ctx, formCacheKey(id), &entity) {
		return domain.Form{}, false
	}

	form, err := entity.ToDomain()
	if err != nil {
		// A cached entry that no longer decodes is as good as a miss.
		c.store.Delete(ctx, formCacheKey(id))
		return domain.Form{}, false
	}

	return form, true
}

func (c *SimpleFormCache) SetForm(ctx context.Context, form domain.Form) {
	entity, err := internal.FromForm(form)
	if err != nil {
		return
	}

	c.store.Set(ctx, formCacheKey(form.ID), entity, c.ttl)
}

func (c *SimpleFormCache) Invalidate(ctx context.Context, id shareddomain.ID) {
	c.store.Delete(ctx, formCacheKey(id))
}

func formCacheKey(id shareddomain.ID) string {
	return "form:" + id.String()
}

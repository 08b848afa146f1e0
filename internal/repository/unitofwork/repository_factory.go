package unitofwork

import "context"

// RepositoryFactory hands out a fresh unit of work per request; services
// depend on this rather than on the gorm handle.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}

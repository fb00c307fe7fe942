// internal/domain/insurance/repository.go
package insurance

import "context"

type Repository interface {
	// Upsert inserts or refreshes the policy for its concession. It runs
	// against the concession database, outside the vehicle transaction: a
	// failure here cannot roll back an already-committed vehicle update.
	Upsert(ctx context.Context, policy *Policy) error

	FindByConcession(ctx context.Context, concessionID int64) (*Policy, error)
}

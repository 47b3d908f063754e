package repository

import (
	"context"

	"docqa/internal/model"
)

// ActivityRepository persists request metadata for the activity ledger.
// No business logic here — strictly persistence operations.
type ActivityRepository interface {
	// Create inserts a ledger entry. The caller provides ID and CreatedAt.
	Create(ctx context.Context, a *model.Activity) error

	// List returns a page of entries, newest first, and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Activity], error)

	// Summary aggregates entries per kind and outcome.
	Summary(ctx context.Context) (*model.ActivitySummary, error)
}

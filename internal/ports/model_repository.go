package ports

import (
	"context"

	"velocity-model-service/internal/domain"
)

// Port: a boundary for reading velocity model records from a data source.
// Author and NFO filters are case-insensitive substring matches. Count
// methods see the same filter as their List counterparts so callers can
// validate pagination before slicing.
type ModelRepository interface {
	// Count 1D profile points matching the author and NFO filters.
	Count1D(ctx context.Context, author, nfo string) (int, error)
	// List 1D profile points ordered by depth ascending.
	List1D(ctx context.Context, author, nfo string, limit, offset int) ([]domain.ProfilePoint, error)

	// Count 3D grid points of one wave type matching the author filter.
	Count3D(ctx context.Context, wave domain.WaveType, author string) (int, error)
	// List 3D grid points ordered by longitude, latitude, depth ascending.
	List3D(ctx context.Context, wave domain.WaveType, author string, limit, offset int) ([]domain.GridPoint, error)

	// Distinct author values across all model tables, sorted.
	Authors(ctx context.Context) ([]string, error)
	// Distinct NFO values across all model tables, sorted.
	NFOs(ctx context.Context) ([]string, error)
}

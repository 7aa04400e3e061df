package shift

import "context"

// ShiftService is the shift catalog. Reads fall back to the seeded
// defaults when no rows have been stored.
type ShiftService interface {
	List(ctx context.Context) ([]ShiftResponse, error)
	Get(ctx context.Context, code string) (ShiftResponse, error)
	Upsert(ctx context.Context, req UpsertShiftRequest) (ShiftResponse, error)
	Delete(ctx context.Context, code string) error
}

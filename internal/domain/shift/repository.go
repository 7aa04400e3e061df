package shift

import "context"

type ShiftRepository interface {
	// List returns all stored templates. An empty result means the catalog
	// has never been customised and the defaults apply.
	List(ctx context.Context) ([]Shift, error)
	GetByCode(ctx context.Context, code string) (Shift, error)
	Upsert(ctx context.Context, s Shift) (Shift, error)
	Delete(ctx context.Context, code string) error
}

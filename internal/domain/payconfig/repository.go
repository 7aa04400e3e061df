package payconfig

import "context"

// PayConfigRepository persists configuration bundles as JSON documents
// keyed by bundle name. A missing bundle is not an error: accessors fall
// back to the package defaults.
type PayConfigRepository interface {
	// Get unmarshals the stored bundle into out. Returns found=false when
	// no override has ever been written.
	Get(ctx context.Context, name string, out any) (found bool, err error)

	// Set stores the bundle, replacing any previous document.
	Set(ctx context.Context, name string, bundle any) error
}

package teamdict

import "context"

// Repository persists the serialized dictionary. Load returns ok=false when
// the store holds no override, in which case callers fall back to Default.
type Repository interface {
	Load(ctx context.Context) (string, bool, error)
	Save(ctx context.Context, serialized string) error
}

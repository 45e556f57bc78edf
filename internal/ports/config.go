package ports

import (
	"context"

	"github.com/alexisbeaulieu97/roster/internal/config"
)

// ConfigLoader loads the client configuration from an external source.
// Implementations must respect context cancellation and translate
// infrastructure failures into domain error codes:
//   - missing explicit file → ErrCodeNotFound
//   - YAML syntax or schema failures → ErrCodeValidation
//   - context cancellation → ErrCodeInternal wrapping ctx.Err()
//   - unexpected I/O issues → ErrCodeInternal with wrapped cause
type ConfigLoader interface {
	// Load reads, defaults and validates the configuration at path. An empty
	// path selects the default location, whose absence is not an error.
	Load(ctx context.Context, path string) (*config.Config, error)
}

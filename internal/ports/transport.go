package ports

import (
	"context"

	"github.com/alexisbeaulieu97/roster/internal/domain/student"
)

//go:generate mockgen -destination=mocks/mock_transport.go -package=mocks -source=transport.go StudentTransport

// StudentTransport performs a single request/response exchange with the
// remote student service. A returned error means the exchange itself failed
// (connectivity, serialization) and no status was obtained; any response that
// arrived, successful or not, is reported through Response instead.
// Implementations must be safe for concurrent use.
type StudentTransport interface {
	List(ctx context.Context) (Response[[]student.Student], error)
	Get(ctx context.Context, id student.ID) (Response[student.Student], error)
	Create(ctx context.Context, req student.Request) (Response[student.Student], error)
	Update(ctx context.Context, id student.ID, req student.Request) (Response[student.Student], error)
	Delete(ctx context.Context, id student.ID) (Response[struct{}], error)
}

// Response is the structured result of an exchange.
type Response[T any] struct {
	// StatusCode is the numeric status returned by the service.
	StatusCode int
	// Reason is the status reason phrase, e.g. "Internal Server Error".
	Reason string
	// Detail carries the server-supplied error text, if any.
	Detail string
	// Body is nil when the response had no body or a JSON null.
	Body *T
}

// Successful reports whether the status is in the 2xx range.
func (r Response[T]) Successful() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

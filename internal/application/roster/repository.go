package roster

import (
	"context"
	"fmt"
	"net/http"

	"github.com/alexisbeaulieu97/roster/internal/domain/student"
	"github.com/alexisbeaulieu97/roster/internal/ports"
)

// StudentRepository is the contract the controller depends on. Every method
// is total: failures are reported through the Outcome, never by panicking.
type StudentRepository interface {
	List(ctx context.Context) student.Outcome[[]student.Student]
	Get(ctx context.Context, id student.ID) student.Outcome[student.Student]
	Create(ctx context.Context, req student.Request) student.Outcome[student.Student]
	Update(ctx context.Context, id student.ID, req student.Request) student.Outcome[student.Student]
	Delete(ctx context.Context, id student.ID) student.Outcome[struct{}]
}

// Repository normalizes transport results into Outcomes.
type Repository struct {
	transport ports.StudentTransport
	logger    ports.Logger
}

// NewRepository wraps a transport. The logger may be nil.
func NewRepository(transport ports.StudentTransport, logger ports.Logger) *Repository {
	if logger != nil {
		logger = logger.With("component", "repository")
	}
	return &Repository{transport: transport, logger: logger}
}

// List fetches the whole collection.
func (r *Repository) List(ctx context.Context) student.Outcome[[]student.Student] {
	return normalize(ctx, r, OpLoadAll, 0, true, func(ctx context.Context) (ports.Response[[]student.Student], error) {
		return r.transport.List(ctx)
	})
}

// Get fetches one student. A 404 yields a NOT_FOUND failure.
func (r *Repository) Get(ctx context.Context, id student.ID) student.Outcome[student.Student] {
	return normalize(ctx, r, OpLoadOne, id, true, func(ctx context.Context) (ports.Response[student.Student], error) {
		return r.transport.Get(ctx, id)
	})
}

// Create submits a new student and returns the stored entity.
func (r *Repository) Create(ctx context.Context, req student.Request) student.Outcome[student.Student] {
	return normalize(ctx, r, OpCreate, 0, true, func(ctx context.Context) (ports.Response[student.Student], error) {
		return r.transport.Create(ctx, req)
	})
}

// Update replaces the attributes of an existing student.
func (r *Repository) Update(ctx context.Context, id student.ID, req student.Request) student.Outcome[student.Student] {
	return normalize(ctx, r, OpUpdate, id, true, func(ctx context.Context) (ports.Response[student.Student], error) {
		return r.transport.Update(ctx, id, req)
	})
}

// Delete removes a student. Only the status is inspected.
func (r *Repository) Delete(ctx context.Context, id student.ID) student.Outcome[struct{}] {
	return normalize(ctx, r, OpDelete, id, false, func(ctx context.Context) (ports.Response[struct{}], error) {
		return r.transport.Delete(ctx, id)
	})
}

func normalize[T any](ctx context.Context, r *Repository, op Operation, id student.ID, requireBody bool, call func(context.Context) (ports.Response[T], error)) student.Outcome[T] {
	if ctx == nil {
		ctx = context.Background()
	}

	resp, err := invoke(ctx, call)
	if err != nil {
		failure := student.NewTransportError(err)
		if err.Error() == "" {
			// A cause without text would render as a bare "transport error".
			failure.Message = op.FallbackMessage()
		}
		return student.Failure[T](r.fail(ctx, op, id, failure))
	}

	if !resp.Successful() {
		reason := resp.Reason
		if reason == "" {
			reason = http.StatusText(resp.StatusCode)
		}
		failure := student.NewHTTPError(resp.StatusCode, reason)
		if resp.Detail != "" {
			failure = failure.WithContext(map[string]interface{}{"detail": resp.Detail})
		}
		return student.Failure[T](r.fail(ctx, op, id, failure))
	}

	if resp.Body == nil {
		if requireBody {
			return student.Failure[T](r.fail(ctx, op, id, student.NewEmptyResultError(emptyMessage(op, id))))
		}
		var zero T
		return student.Success(zero)
	}

	return student.Success(*resp.Body)
}

// invoke shields the caller from a panicking transport.
func invoke[T any](ctx context.Context, call func(context.Context) (ports.Response[T], error)) (resp ports.Response[T], err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			resp = ports.Response[T]{}
			err = fmt.Errorf("transport panic: %v", recovered)
		}
	}()
	return call(ctx)
}

func emptyMessage(op Operation, id student.ID) string {
	switch op {
	case OpLoadAll:
		return "empty student list response"
	case OpLoadOne:
		return fmt.Sprintf("empty response for student %s", id)
	default:
		return "empty response"
	}
}

// fail tags the error with the operation and logs it.
func (r *Repository) fail(ctx context.Context, op Operation, id student.ID, err *student.DomainError) *student.DomainError {
	extra := map[string]interface{}{"operation": string(op)}
	if id != 0 {
		extra["student_id"] = id
	}
	err = err.WithContext(extra)

	if r.logger != nil {
		fields := []interface{}{"operation", string(op), "error_code", string(err.Code), "error", err.Summary()}
		if id != 0 {
			fields = append(fields, "student_id", id.String())
		}
		if err.StatusCode != 0 {
			fields = append(fields, "status", err.StatusCode)
		}
		r.logger.Warn(ctx, "repository call failed", fields...)
	}
	return err
}

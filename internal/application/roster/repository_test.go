package roster

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alexisbeaulieu97/roster/internal/domain/student"
	"github.com/alexisbeaulieu97/roster/internal/ports"
	"github.com/alexisbeaulieu97/roster/internal/ports/mocks"
)

func newMockRepository(t *testing.T) (*Repository, *mocks.MockStudentTransport) {
	t.Helper()

	ctrl := gomock.NewController(t)
	transport := mocks.NewMockStudentTransport(ctrl)
	return NewRepository(transport, nil), transport
}

func ok[T any](body *T) ports.Response[T] {
	return ports.Response[T]{StatusCode: http.StatusOK, Reason: "OK", Body: body}
}

func TestRepositoryListSuccess(t *testing.T) {
	t.Parallel()

	repo, transport := newMockRepository(t)
	students := []student.Student{{ID: 1, Name: "Ana", Age: 20, Program: "CS", Score: 9}}
	transport.EXPECT().List(gomock.Any()).Return(ok(&students), nil)

	outcome := repo.List(context.Background())

	require.True(t, outcome.IsSuccess())
	assert.Equal(t, students, outcome.Value())
}

func TestRepositoryListEmptyArrayIsSuccess(t *testing.T) {
	t.Parallel()

	repo, transport := newMockRepository(t)
	empty := []student.Student{}
	transport.EXPECT().List(gomock.Any()).Return(ok(&empty), nil)

	outcome := repo.List(context.Background())

	require.True(t, outcome.IsSuccess())
	assert.Empty(t, outcome.Value())
}

func TestRepositoryMissingBodyIsEmptyResult(t *testing.T) {
	t.Parallel()

	repo, transport := newMockRepository(t)
	transport.EXPECT().List(gomock.Any()).Return(ports.Response[[]student.Student]{StatusCode: http.StatusOK}, nil)
	transport.EXPECT().Get(gomock.Any(), student.ID(4)).Return(ports.Response[student.Student]{StatusCode: http.StatusOK}, nil)
	transport.EXPECT().Create(gomock.Any(), gomock.Any()).Return(ports.Response[student.Student]{StatusCode: http.StatusCreated}, nil)
	transport.EXPECT().Update(gomock.Any(), student.ID(4), gomock.Any()).Return(ports.Response[student.Student]{StatusCode: http.StatusOK}, nil)

	ctx := context.Background()
	assert.Equal(t, student.ErrCodeEmptyResult, repo.List(ctx).Err().Code)
	assert.Equal(t, student.ErrCodeEmptyResult, repo.Get(ctx, 4).Err().Code)
	assert.Equal(t, student.ErrCodeEmptyResult, repo.Create(ctx, student.Request{}).Err().Code)
	assert.Equal(t, student.ErrCodeEmptyResult, repo.Update(ctx, 4, student.Request{}).Err().Code)
}

func TestRepositoryGetNotFound(t *testing.T) {
	t.Parallel()

	repo, transport := newMockRepository(t)
	transport.EXPECT().Get(gomock.Any(), student.ID(999)).
		Return(ports.Response[student.Student]{StatusCode: http.StatusNotFound, Reason: "Not Found"}, nil)

	outcome := repo.Get(context.Background(), 999)

	require.False(t, outcome.IsSuccess())
	assert.Equal(t, student.ErrCodeNotFound, outcome.Err().Code)
	assert.Equal(t, "not found", outcome.Err().Summary())
	assert.Equal(t, student.ID(999), outcome.Err().Context["student_id"])
	assert.Equal(t, student.Student{}, outcome.Value())
}

func TestRepositoryHTTPError(t *testing.T) {
	t.Parallel()

	repo, transport := newMockRepository(t)
	req := student.Request{Name: "Ana", Age: 21, Program: "CS", Score: 9}
	transport.EXPECT().Update(gomock.Any(), student.ID(2), req).Return(ports.Response[student.Student]{
		StatusCode: http.StatusInternalServerError,
		Reason:     "Internal Server Error",
		Detail:     "database unavailable",
	}, nil)

	outcome := repo.Update(context.Background(), 2, req)

	require.False(t, outcome.IsSuccess())
	err := outcome.Err()
	assert.Equal(t, student.ErrCodeHTTP, err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.Equal(t, "500 - Internal Server Error", err.Summary())
	assert.Equal(t, "database unavailable", err.Context["detail"])
	assert.Equal(t, "update", err.Context["operation"])
}

func TestRepositoryHTTPErrorWithoutReason(t *testing.T) {
	t.Parallel()

	repo, transport := newMockRepository(t)
	transport.EXPECT().List(gomock.Any()).Return(ports.Response[[]student.Student]{StatusCode: http.StatusServiceUnavailable}, nil)

	outcome := repo.List(context.Background())

	assert.Equal(t, "503 - Service Unavailable", outcome.Err().Summary())
}

func TestRepositoryTransportError(t *testing.T) {
	t.Parallel()

	repo, transport := newMockRepository(t)
	cause := errors.New("dial tcp 127.0.0.1:8080: connect: connection refused")
	transport.EXPECT().Create(gomock.Any(), gomock.Any()).Return(ports.Response[student.Student]{}, cause)

	outcome := repo.Create(context.Background(), student.Request{Name: "Ana"})

	require.False(t, outcome.IsSuccess())
	assert.Equal(t, student.ErrCodeTransport, outcome.Err().Code)
	assert.ErrorIs(t, outcome.Err(), cause)
	assert.Contains(t, outcome.Err().Summary(), "connection refused")
}

func TestRepositoryRecoversTransportPanic(t *testing.T) {
	t.Parallel()

	repo, transport := newMockRepository(t)
	transport.EXPECT().Delete(gomock.Any(), student.ID(5)).DoAndReturn(func(context.Context, student.ID) (ports.Response[struct{}], error) {
		panic("socket exploded")
	})

	var outcome student.Outcome[struct{}]
	require.NotPanics(t, func() {
		outcome = repo.Delete(context.Background(), 5)
	})
	assert.Equal(t, student.ErrCodeTransport, outcome.Err().Code)
	assert.Contains(t, outcome.Err().Summary(), "socket exploded")
}

func TestRepositoryNilTransportIsTransportError(t *testing.T) {
	t.Parallel()

	repo := NewRepository(nil, nil)

	outcome := repo.List(context.Background())

	assert.Equal(t, student.ErrCodeTransport, outcome.Err().Code)
}

func TestRepositoryDeleteChecksStatusOnly(t *testing.T) {
	t.Parallel()

	repo, transport := newMockRepository(t)
	transport.EXPECT().Delete(gomock.Any(), student.ID(5)).Return(ports.Response[struct{}]{StatusCode: http.StatusNoContent}, nil)
	transport.EXPECT().Delete(gomock.Any(), student.ID(6)).Return(ports.Response[struct{}]{StatusCode: http.StatusNotFound, Reason: "Not Found"}, nil)

	ctx := context.Background()
	assert.True(t, repo.Delete(ctx, 5).IsSuccess())
	assert.Equal(t, student.ErrCodeNotFound, repo.Delete(ctx, 6).Err().Code)
}

func TestRepositoryCreateReturnsStoredEntity(t *testing.T) {
	t.Parallel()

	repo, transport := newMockRepository(t)
	req := student.Request{Name: "Ana", Age: 20, Program: "CS", Score: 9}
	created := req.WithID(7)
	transport.EXPECT().Create(gomock.Any(), req).Return(ports.Response[student.Student]{StatusCode: http.StatusCreated, Body: &created}, nil)

	value, err := repo.Create(context.Background(), req).Get()

	require.Nil(t, err)
	assert.Equal(t, created, value)
}

func TestRepositoryTransportErrorWithoutTextUsesOperationMessage(t *testing.T) {
	t.Parallel()

	repo, transport := newMockRepository(t)
	transport.EXPECT().List(gomock.Any()).Return(ports.Response[[]student.Student]{}, errors.New(""))
	transport.EXPECT().Delete(gomock.Any(), student.ID(2)).Return(ports.Response[struct{}]{}, errors.New(""))

	ctx := context.Background()
	listErr := repo.List(ctx).Err()
	require.NotNil(t, listErr)
	assert.Equal(t, student.ErrCodeTransport, listErr.Code)
	assert.Equal(t, "error loading students", listErr.Summary())
	assert.Equal(t, "error deleting student", repo.Delete(ctx, 2).Err().Summary())
}

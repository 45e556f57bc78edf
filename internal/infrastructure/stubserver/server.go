// Package stubserver is an in-memory implementation of the student service
// used for development and end-to-end tests.
package stubserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/roster/internal/config"
	"github.com/alexisbeaulieu97/roster/internal/domain/student"
	"github.com/alexisbeaulieu97/roster/internal/ports"
)

const maxRequestBody = 64 * 1024

// ServerOption configures the stub server
type ServerOption func(*serverConfig)

type serverConfig struct {
	resourcePath string
	logger       ports.Logger
	middlewares  []func(http.Handler) http.Handler
}

// WithResourcePath mounts the collection somewhere other than /students.
func WithResourcePath(path string) ServerOption {
	return func(cfg *serverConfig) {
		if path != "" {
			cfg.resourcePath = path
		}
	}
}

// WithLogger enables request logging.
func WithLogger(logger ports.Logger) ServerOption {
	return func(cfg *serverConfig) {
		cfg.logger = logger
	}
}

// WithMiddlewares adds middleware in front of the routes
func WithMiddlewares(mw ...func(http.Handler) http.Handler) ServerOption {
	return func(cfg *serverConfig) {
		cfg.middlewares = append(cfg.middlewares, mw...)
	}
}

// studentPayload is the request body accepted by create and update.
type studentPayload struct {
	Name    string   `json:"name" validate:"required"`
	Age     int      `json:"age" validate:"gt=0"`
	Program string   `json:"program" validate:"required"`
	Score   *float64 `json:"score" validate:"required,gte=0,lte=10"`
}

// Routes holds the HTTP handlers for the student collection.
type Routes struct {
	store    *Store
	validate *validator.Validate
}

// NewServer builds the router serving the student resource table.
func NewServer(store *Store, opts ...ServerOption) *chi.Mux {
	cfg := &serverConfig{resourcePath: "/students"}
	for _, opt := range opts {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if cfg.logger != nil {
		r.Use(loggingMiddleware(cfg.logger.With("component", "stub_server")))
	}
	for _, mw := range cfg.middlewares {
		r.Use(mw)
	}

	routes := &Routes{store: store, validate: config.GetValidator()}
	r.Route(cfg.resourcePath, func(r chi.Router) {
		r.Get("/", routes.list)
		r.Post("/", routes.create)
		r.Get("/{id}", routes.get)
		r.Put("/{id}", routes.update)
		r.Delete("/{id}", routes.remove)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeErrorResponse(w, "not found", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeErrorResponse(w, "method not allowed", http.StatusMethodNotAllowed)
	})

	return r
}

func (rt *Routes) list(w http.ResponseWriter, _ *http.Request) {
	writeJSONResponse(w, rt.store.List(), http.StatusOK)
}

func (rt *Routes) get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	st, found := rt.store.Get(id)
	if !found {
		writeErrorResponse(w, fmt.Sprintf("student %s not found", id), http.StatusNotFound)
		return
	}
	writeJSONResponse(w, st, http.StatusOK)
}

func (rt *Routes) create(w http.ResponseWriter, r *http.Request) {
	req, ok := rt.decode(w, r)
	if !ok {
		return
	}
	writeJSONResponse(w, rt.store.Create(req), http.StatusCreated)
}

func (rt *Routes) update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	req, ok := rt.decode(w, r)
	if !ok {
		return
	}
	st, found := rt.store.Update(id, req)
	if !found {
		writeErrorResponse(w, fmt.Sprintf("student %s not found", id), http.StatusNotFound)
		return
	}
	writeJSONResponse(w, st, http.StatusOK)
}

func (rt *Routes) remove(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if !rt.store.Delete(id) {
		writeErrorResponse(w, fmt.Sprintf("student %s not found", id), http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func idParam(w http.ResponseWriter, r *http.Request) (student.ID, bool) {
	id, err := student.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		var domainErr *student.DomainError
		msg := err.Error()
		if errors.As(err, &domainErr) {
			msg = domainErr.Message
		}
		writeErrorResponse(w, msg, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (rt *Routes) decode(w http.ResponseWriter, r *http.Request) (student.Request, bool) {
	var payload studentPayload
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		writeErrorResponse(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return student.Request{}, false
	}

	if err := rt.validate.Struct(payload); err != nil {
		writeErrorResponse(w, describeValidation(err), http.StatusUnprocessableEntity)
		return student.Request{}, false
	}

	req := student.Request{Name: payload.Name, Age: payload.Age, Program: payload.Program, Score: *payload.Score}
	if err := req.Validate(); err != nil {
		var domainErr *student.DomainError
		if errors.As(err, &domainErr) {
			writeErrorResponse(w, domainErr.Message, http.StatusUnprocessableEntity)
			return student.Request{}, false
		}
		writeErrorResponse(w, err.Error(), http.StatusUnprocessableEntity)
		return student.Request{}, false
	}
	return req, true
}

func describeValidation(err error) string {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err.Error()
	}
	parts := make([]string, 0, len(ves))
	for _, fe := range ves {
		parts = append(parts, fmt.Sprintf("%s failed validation for tag '%s'", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger ports.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			ctx := r.Context()
			if id := r.Header.Get("X-Request-Id"); id != "" {
				ctx = ports.WithCorrelationID(ctx, id)
			}
			logger.Info(ctx, "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// ListenAndServe serves handler on addr until ctx is cancelled, then shuts
// down gracefully.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, logger ports.Logger) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	if logger != nil {
		logger.Info(ctx, "stub server listening", "addr", addr)
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown stub server: %w", err)
		}
		return nil
	}
}

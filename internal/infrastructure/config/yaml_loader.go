package config

import (
	"context"
	"errors"
	"os"
	"sort"

	cfgpkg "github.com/alexisbeaulieu97/roster/internal/config"
	"github.com/alexisbeaulieu97/roster/internal/domain/student"
	"github.com/alexisbeaulieu97/roster/internal/ports"
	apperrors "github.com/alexisbeaulieu97/roster/pkg/errors"
)

// YAMLLoader implements the ConfigLoader port by reading YAML files from disk.
type YAMLLoader struct {
	logger ports.Logger
}

func NewYAMLLoader(logger ports.Logger) *YAMLLoader {
	return &YAMLLoader{logger: logger}
}

func (l *YAMLLoader) Load(ctx context.Context, path string) (*cfgpkg.Config, error) {
	if err := contextCheck(ctx); err != nil {
		return nil, err
	}

	l.logDebug(ctx, "loading roster configuration", map[string]interface{}{"path": displayPath(path)})

	cfg, err := cfgpkg.Load(path)
	if err != nil {
		l.logError(ctx, "failed to load configuration", err, map[string]interface{}{"path": displayPath(path)})
		return nil, convertError(err, path)
	}

	if err := contextCheck(ctx); err != nil {
		return nil, err
	}

	l.logInfo(ctx, "roster configuration loaded", map[string]interface{}{
		"path":          displayPath(path),
		"base_url":      cfg.API.BaseURL,
		"resource_path": cfg.API.ResourcePath,
		"reload_policy": cfg.Controller.ReloadPolicy,
	})
	return cfg, nil
}

var _ ports.ConfigLoader = (*YAMLLoader)(nil)

func displayPath(path string) string {
	if path == "" {
		return "(default)"
	}
	return path
}

func convertError(err error, path string) error {
	if err == nil {
		return nil
	}
	var parseErr *apperrors.ParseError
	if errors.As(err, &parseErr) {
		if errors.Is(parseErr.Err, os.ErrNotExist) {
			return domainError(student.ErrCodeNotFound, "configuration not found", parseErr.Err, map[string]interface{}{"path": parseErr.Path})
		}
		return domainError(student.ErrCodeValidation, "invalid configuration syntax", err, map[string]interface{}{"path": parseErr.Path, "line": parseErr.Line})
	}
	var valErr *apperrors.ValidationError
	if errors.As(err, &valErr) {
		context := map[string]interface{}{"path": path}
		if valErr.Field != "" {
			context["field"] = valErr.Field
		}
		return domainError(student.ErrCodeValidation, valErr.Message, valErr.Err, context)
	}
	return domainError(student.ErrCodeInternal, "configuration load failed", err, map[string]interface{}{"path": path})
}

func contextCheck(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return domainError(student.ErrCodeInternal, "load cancelled", err, nil)
	}
	return nil
}

func domainError(code student.ErrorCode, message string, cause error, ctx map[string]interface{}) *student.DomainError {
	return &student.DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: ctx,
	}
}

func (l *YAMLLoader) logDebug(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Debug(ctx, msg, flattenFields(fields)...)
}

func (l *YAMLLoader) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Info(ctx, msg, flattenFields(fields)...)
}

func (l *YAMLLoader) logError(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	payload := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["error"] = err
	l.logger.Error(ctx, msg, flattenFields(payload)...)
}

func flattenFields(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]interface{}, 0, len(fields)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}

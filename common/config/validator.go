package config

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

// FieldError reports one setting that keeps the service from starting.
type FieldError struct {
	Field   string
	Problem string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Problem
}

// settingChecks collects every FieldError found in a Config instead of
// stopping at the first one, so a bad .env is fixed in one pass.
type settingChecks struct {
	errs []error
}

func (s *settingChecks) fail(field, format string, args ...any) {
	s.errs = append(s.errs, &FieldError{Field: field, Problem: fmt.Sprintf(format, args...)})
}

func (s *settingChecks) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		s.fail(field, "is required")
	}
}

func (s *settingChecks) oneOf(field, value string, allowed []string) {
	if slices.Contains(allowed, value) {
		return
	}
	s.fail(field, "%q is not one of %s", value, strings.Join(allowed, ", "))
}

func within[T constraints.Ordered](s *settingChecks, field string, value, lo, hi T) {
	if value < lo || value > hi {
		s.fail(field, "%v is outside [%v, %v]", value, lo, hi)
	}
}

// backendSettings names the settings each store backend needs to connect.
func (c *Config) backendSettings() [][2]string {
	switch c.StoreBackend {
	case BackendFile:
		return [][2]string{{"DataFilePath", c.DataFilePath}}
	case BackendMongo:
		return [][2]string{{"MongoURL", c.MongoURL}, {"MongoDatabase", c.MongoDatabase}}
	case BackendPostgres:
		return [][2]string{{"PostgresDSN", c.PostgresDSN}}
	case BackendRedis:
		return [][2]string{{"RedisURL", c.RedisURL}}
	case BackendFirestore:
		return [][2]string{{"FirestoreProjectID", c.FirestoreProjectID}}
	}
	return nil
}

package enigma

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ConfigurationError is returned when a component is built from settings that
// violate its structural invariants. A component is never returned alongside it.
type ConfigurationError struct {
	Component string
	Err       error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("enigma: invalid %s: %v", e.Component, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func configError(component string, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Component: component, Err: fmt.Errorf(format, args...)}
}

// ListFormat renders a multierror on one line, problems separated by "; ".
func ListFormat(errs []error) string {
	parts := make([]string, len(errs))
	for i, err := range errs {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "; ")
}

// finish wraps accumulated problems for component, or returns nil if there are none.
func finish(component string, problems *multierror.Error) error {
	if problems.ErrorOrNil() == nil {
		return nil
	}
	problems.ErrorFormat = ListFormat
	return &ConfigurationError{Component: component, Err: problems}
}

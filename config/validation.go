package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validate checks a Config against the struct validation tags plus the
// cross-field rules the tags cannot express.
func Validate(cfg *Config) error {
	validateOnce.Do(func() {
		validate = validator.New()
	})

	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return formatFieldErrors(fieldErrs)
		}
		return err
	}

	if cfg.MaxDelay > 0 && cfg.MaxDelay < cfg.BaseDelay {
		return fmt.Errorf("maxdelay (%s) must be >= basedelay (%s)", cfg.MaxDelay, cfg.BaseDelay)
	}

	return nil
}

// formatFieldErrors flattens validator errors into a single readable error.
func formatFieldErrors(errs validator.ValidationErrors) error {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		parts = append(parts, fmt.Sprintf("%s failed %q validation (got %v)",
			strings.ToLower(fe.Field()), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(parts, "; "))
}

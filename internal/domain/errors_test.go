// internal/domain/errors_test.go
package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/waabox/clidemo/internal/domain"
)

func TestErrInvalidScript_CanBeDetectedWithErrorsIs(t *testing.T) {
	wrapped := fmt.Errorf("loading demo.yaml: %w", domain.ErrInvalidScript)
	assert.True(t, errors.Is(wrapped, domain.ErrInvalidScript))
}

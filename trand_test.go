package trand

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError(t *testing.T) {
	err := NewDomainError("min/max", "invalid combination of min/max values (%d/%d)", 5, 3)
	assert.EqualError(t, err, "min/max: invalid combination of min/max values (5/3)")
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	wrapped := fmt.Errorf("random_int: %w", err)
	assert.True(t, errors.Is(wrapped, ErrInvalidParameter))
	assert.True(t, IsDomainError(wrapped))
	assert.False(t, IsDomainError(errors.New("boom")))
}

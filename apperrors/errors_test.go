package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"datagen/apperrors"
)

func TestKindMatching(t *testing.T) {
	err := apperrors.Exhausted("sku")
	assert.True(t, errors.Is(err, apperrors.ErrGeneratorExhausted))
	assert.False(t, errors.Is(err, apperrors.ErrIO))
}

func TestIOWrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := apperrors.IO("write users.json", cause)

	assert.True(t, errors.Is(err, apperrors.ErrIO))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "users.json")
	assert.Contains(t, err.Error(), "disk full")
}

func TestWrappedThroughFmt(t *testing.T) {
	err := fmt.Errorf("stage failed: %w", apperrors.Exhausted("slug"))
	assert.True(t, errors.Is(err, apperrors.ErrGeneratorExhausted))
}

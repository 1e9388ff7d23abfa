package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf_WalksWrapChain(t *testing.T) {
	base := NotFound("test")
	wrapped := fmt.Errorf("loading detail: %w", base)

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, KindNotFound))
}

func TestKindOf_UnknownErrorsAreInternal(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("something odd")))
}

func TestIncompleteError_CarriesCounts(t *testing.T) {
	err := Incomplete(19, 12)

	assert.Equal(t, KindIncomplete, KindOf(err))
	assert.Equal(t, 19, err.Required)
	assert.Equal(t, 12, err.Actual)
	assert.Contains(t, err.Error(), "19")
	assert.Contains(t, err.Error(), "12")
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(KindUpstreamUnavailable, "could not reach prediction service", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindUpstreamUnavailable, KindOf(err))
	assert.Contains(t, err.Error(), "connection reset")
}

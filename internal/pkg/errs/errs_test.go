//go:build unit

package errs_test

import (
	stderrors "errors"
	"testing"

	"needboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMarkVisibleToIs(t *testing.T) {
	t.Parallel()

	sentinel := errs.New("already requested")

	t.Run("marked error matches via Is", func(t *testing.T) {
		t.Parallel()
		err := errs.Mark(errs.New("unique key violated"), sentinel)

		assert.True(t, errs.Is(err, sentinel))
		// The mark is deliberately not on the stdlib unwrap chain; callers
		// must match sentinels through errs.Is.
		assert.False(t, stderrors.Is(err, sentinel))
	})

	t.Run("cause message survives marking", func(t *testing.T) {
		t.Parallel()
		err := errs.Mark(errs.New("unique key violated"), sentinel)
		assert.Equal(t, "unique key violated", err.Error())
	})

	t.Run("double mark keeps both sentinels matchable", func(t *testing.T) {
		t.Parallel()
		second := errs.New("compensation failed")
		err := errs.Mark(errs.Mark(errs.New("unique key violated"), sentinel), second)

		assert.True(t, errs.Is(err, sentinel))
		assert.True(t, errs.Is(err, second))
	})

	t.Run("wrapped error still matches wrapped cause", func(t *testing.T) {
		t.Parallel()
		err := errs.Wrap(sentinel, "while allocating")
		assert.True(t, errs.Is(err, sentinel))
	})

	t.Run("nil err adopts the mark", func(t *testing.T) {
		t.Parallel()
		assert.True(t, errs.Is(errs.Mark(nil, sentinel), sentinel))
	})
}

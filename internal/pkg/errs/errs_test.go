//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"holidaze-booking/internal/infra"
	"holidaze-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	t.Run("marked error matches sentinel via errors.Is", func(t *testing.T) {
		cause := errors.New("row missing")
		err := errs.Mark(cause, errs.ErrBookingNotFound)

		assert.True(t, errors.Is(err, errs.ErrBookingNotFound))
	})

	t.Run("marked error still matches original cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.Mark(cause, errs.ErrUpstreamFailure)

		assert.True(t, errors.Is(err, cause))
		assert.True(t, errors.Is(err, errs.ErrUpstreamFailure))
	})

	t.Run("errors.As reaches typed cause through mark", func(t *testing.T) {
		repoErr := infra.WrapRepoErr(infra.KindNotFound, "load bookings", errors.New("gone"))
		err := errs.Mark(repoErr, errs.ErrBookingNotFound)

		var re infra.RepositoryError
		require.True(t, errors.As(err, &re))
		assert.Equal(t, infra.KindNotFound, re.Kind)
	})

	t.Run("nil error yields the sentinel itself", func(t *testing.T) {
		err := errs.Mark(nil, errs.ErrVenueNotFound)

		assert.ErrorIs(t, err, errs.ErrVenueNotFound)
	})

	t.Run("mark after wrap stays matchable", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errors.New("boom"), errs.ErrStoreFailure), "persist booking")

		assert.True(t, errors.Is(err, errs.ErrStoreFailure))
	})
}

package components

import (
	"holidaze-booking/internal/catalog"
	"holidaze-booking/internal/infra/repository"
	"holidaze-booking/internal/usecase/commands"
	"holidaze-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

// The booking repository serializes writes behind a process-local mutex, so
// every consumer must share the one instance.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repository.NewBookingRepository,
		func(r *repository.BookingRepository) commands.BookingRepository { return r },
		func(r *repository.BookingRepository) queries.BookingReadRepo { return r },
		func(r *repository.BookingRepository) catalog.BookingLister { return r },
	),
)

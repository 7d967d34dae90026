package bootstrap

import (
	"holidaze-booking/internal/catalog"
	"holidaze-booking/internal/pkg/bus"
	"holidaze-booking/internal/pkg/config"
	"holidaze-booking/internal/usecase/commands"
	"holidaze-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		bus.New,
		NewCatalogClient,
		func(c *catalog.Client) commands.VenueProvider { return c },
		fx.Annotate(
			NewVenueSession,
			fx.As(new(queries.VenueSession)),
		),
	),
)

func NewCatalogClient(cfg config.Config) *catalog.Client {
	return catalog.NewClient(cfg.Catalog)
}

func NewVenueSession(client *catalog.Client, lister catalog.BookingLister, events *bus.Bus) *catalog.Session {
	session := catalog.NewSession(client, lister)
	session.Bind(events)
	return session
}

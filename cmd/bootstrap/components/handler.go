package components

import (
	"needboard/internal/handler"
	"needboard/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewNeedHandler,
		api.NewReservationHandler,
	),
	fx.Invoke(handler.NewRouter),
)

package components

import (
	"go.uber.org/fx"

	"turfbook/internal/handler"
	"turfbook/internal/handler/api"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewWaitlistHandler,
		api.NewRecurringHandler,
		api.NewTurfHandler,
		api.NewLoyaltyHandler,
		api.NewReviewHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	booking *api.BookingHandler,
	waitlist *api.WaitlistHandler,
	recurring *api.RecurringHandler,
	turf *api.TurfHandler,
	loyalty *api.LoyaltyHandler,
	review *api.ReviewHandler,
) handler.Handlers {
	return handler.Handlers{
		Booking:   booking,
		Waitlist:  waitlist,
		Recurring: recurring,
		Turf:      turf,
		Loyalty:   loyalty,
		Review:    review,
	}
}

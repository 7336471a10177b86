package listBookings

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"barberbook/internal/lib/api/response"
	"barberbook/internal/lib/logger/sl"
	"barberbook/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsGetter
type BookingsGetter interface {
	Bookings() ([]models.Booking, error)
}

func New(log *slog.Logger, bookings BookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.listBookings.New"

		log = log.With(slog.String("op", op))

		list, err := bookings.Bookings()
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		if list == nil {
			list = []models.Booking{}
		}

		log.Info("bookings retrieved", slog.Int("count", len(list)))

		// The calendar UI consumes the bare array.
		render.JSON(w, r, list)
	}
}

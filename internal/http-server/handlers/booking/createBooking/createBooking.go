package createBooking

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"barberbook/internal/lib/api/response"
	"barberbook/internal/lib/logger/sl"
	"barberbook/internal/models"
	"barberbook/internal/scheduling"
	"barberbook/internal/storage/jsonfile"
)

type BookingRequest struct {
	Customer string `json:"customer" validate:"required"`
	Service  string `json:"service" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Hour     int    `json:"hour" validate:"required"`
}

type BookingResponse struct {
	response.Response
	Booking     *models.Booking `json:"booking,omitempty"`
	Suggestions []string        `json:"suggestions,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingSaver
type BookingSaver interface {
	Bookings() ([]models.Booking, error)
	InsertBookingIfFree(b models.Booking) error
}

func New(log *slog.Logger, bookings BookingSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		if !scheduling.WithinHours(req.Hour) {
			log.Info("requested hour outside operating window", slog.Int("hour", req.Hour))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("bookings start between 12 PM and 10 PM"))

			return
		}

		booking := models.Booking{
			ID:       uuid.NewString(),
			Customer: req.Customer,
			Service:  req.Service,
			Date:     req.Date,
			Time:     models.NewHourValue(req.Hour),
			Source:   models.SourceManual,
		}

		err = bookings.InsertBookingIfFree(booking)
		if errors.Is(err, jsonfile.ErrSlotTaken) {
			log.Info("slot already booked", slog.String("date", req.Date), slog.Int("hour", req.Hour))

			snapshot, snapErr := bookings.Bookings()
			if snapErr != nil {
				log.Error("failed to get bookings for suggestions", sl.Err(snapErr))
				snapshot = nil
			}

			render.Status(r, http.StatusConflict)
			render.JSON(w, r, BookingResponse{
				Response:    response.Error("slot already booked"),
				Suggestions: scheduling.SuggestNeighbors(snapshot, req.Date, req.Hour),
			})

			return
		}
		if err != nil {
			log.Error("failed to save booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save booking"))

			return
		}

		log.Info("booking created", slog.String("id", booking.ID))

		responseOK(w, r, booking)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking models.Booking) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  &booking,
	})
}

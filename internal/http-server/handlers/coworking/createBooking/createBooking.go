package createBooking

import (
	"errors"
	"log/slog"
	"net/http"

	"eventspace/internal/lib/api/response"
	"eventspace/internal/lib/logger/sl"
	"eventspace/internal/models"
	"eventspace/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type BookingRequest struct {
	BookingDate   models.Date `json:"booking_date"`
	CustomerName  string      `json:"customer_name" validate:"required"`
	CustomerPhone string      `json:"customer_phone" validate:"required"`
}

type BookingResponse struct {
	response.Response
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(coworkingID uuid.UUID, bookingDate models.Date, customerName, customerPhone string) (uuid.UUID, error)
}

func New(log *slog.Logger, creator BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.coworking.createBooking.New"

		log = log.With(slog.String("op", op))

		coworkingID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid coworking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid coworking id format"))
			return
		}

		log = log.With(slog.String("coworking_id", coworkingID.String()))

		var req BookingRequest

		if err = render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		// Тип Date не проверяется тегом required, проверяем вручную.
		if req.BookingDate.IsZero() {
			log.Error("booking date is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("field BookingDate is a required field"))

			return
		}

		bookingID, err := creator.CreateBooking(coworkingID, req.BookingDate, req.CustomerName, req.CustomerPhone)
		if err != nil {
			if errors.Is(err, storage.ErrSpaceNotFound) {
				log.Error("coworking space not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("coworking space not found"))
				return
			}

			log.Error("failed to create booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create booking"))
			return
		}

		log.Info("booking created", slog.String("booking_id", bookingID.String()))

		render.JSON(w, r, BookingResponse{
			Response: response.OK(),
			ID:       bookingID,
			Message:  "Booking created successfully",
		})
	}
}

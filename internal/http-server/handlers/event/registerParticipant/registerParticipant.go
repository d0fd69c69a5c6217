package registerParticipant

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

type RegistrationRequest struct {
	ParticipantName  string  `json:"participant_name" validate:"required"`
	ParticipantEmail string  `json:"participant_email" validate:"required,email"`
	ParticipantPhone *string `json:"participant_phone,omitempty"`
}

type RegistrationResponse struct {
	response.Response
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ParticipantRegistrar
type ParticipantRegistrar interface {
	GetEvent(eventID uuid.UUID) (*models.EventDetail, error)
	RegisterParticipant(eventID uuid.UUID, name, email string, phone *string) (uuid.UUID, error)
}

func New(log *slog.Logger, registrar ParticipantRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.registerParticipant.New"

		log = log.With(slog.String("op", op))

		eventID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.String("event_id", eventID.String()))

		var req RegistrationRequest

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

		// Существование события проверяется до регистрации, как и раньше;
		// вставка всё равно ловит гонку с удалением через внешний ключ.
		if _, err = registrar.GetEvent(eventID); err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Error("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to check event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register participant"))
			return
		}

		registrationID, err := registrar.RegisterParticipant(eventID, req.ParticipantName, req.ParticipantEmail, req.ParticipantPhone)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Error("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to register participant", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register participant"))
			return
		}

		log.Info("participant registered", slog.String("registration_id", registrationID.String()))

		render.JSON(w, r, RegistrationResponse{
			Response: response.OK(),
			ID:       registrationID,
			Message:  "Registration successful",
		})
	}
}

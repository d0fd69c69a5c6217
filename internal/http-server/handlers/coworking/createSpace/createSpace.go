package createSpace

import (
	"errors"
	"log/slog"
	"net/http"

	"eventspace/internal/lib/api/response"
	"eventspace/internal/lib/logger/sl"
	"eventspace/internal/service/coworking"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type SpaceRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	ImagePath   *string `json:"image_path,omitempty"`
}

type SpaceResponse struct {
	response.Response
	ID uuid.UUID `json:"id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SpaceCreator
type SpaceCreator interface {
	CreateSpace(params coworking.CreateSpaceParams) (uuid.UUID, error)
}

func New(log *slog.Logger, creator SpaceCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.coworking.createSpace.New"

		log = log.With(slog.String("op", op))

		var req SpaceRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.String("name", req.Name))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		coworkingID, err := creator.CreateSpace(coworking.CreateSpaceParams{
			Name:        req.Name,
			Description: req.Description,
			Location:    req.Location,
			ImagePath:   req.ImagePath,
		})
		if err != nil {
			log.Error("failed to create coworking space", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create coworking space"))

			return
		}

		log.Info("coworking space created", slog.String("id", coworkingID.String()))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, SpaceResponse{
			Response: response.OK(),
			ID:       coworkingID,
		})
	}
}

package saveBotSettings

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"barberbook/internal/lib/api/response"
	"barberbook/internal/lib/logger/sl"
	"barberbook/internal/models"
)

type SettingsRequest struct {
	AccessToken string `json:"accessToken" validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SettingsSaver
type SettingsSaver interface {
	SaveBotSettings(settings models.BotSettings) error
}

func New(log *slog.Logger, settings SettingsSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.botpanel.saveBotSettings.New"

		log = log.With(slog.String("op", op))

		var req SettingsRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
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

		if err = settings.SaveBotSettings(models.BotSettings{AccessToken: req.AccessToken}); err != nil {
			log.Error("failed to save bot settings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save bot settings"))
			return
		}

		log.Info("bot settings saved")

		render.JSON(w, r, response.OK())
	}
}

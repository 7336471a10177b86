package getBotSettings

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"barberbook/internal/lib/api/response"
	"barberbook/internal/lib/logger/sl"
	"barberbook/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SettingsGetter
type SettingsGetter interface {
	BotSettings() (models.BotSettings, error)
}

func New(log *slog.Logger, settings SettingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.botpanel.getBotSettings.New"

		log = log.With(slog.String("op", op))

		s, err := settings.BotSettings()
		if err != nil {
			log.Error("failed to get bot settings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bot settings"))
			return
		}

		render.JSON(w, r, s)
	}
}

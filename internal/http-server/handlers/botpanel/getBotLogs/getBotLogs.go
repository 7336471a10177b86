package getBotLogs

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"barberbook/internal/lib/api/response"
	"barberbook/internal/lib/logger/sl"
	"barberbook/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BotLogsGetter
type BotLogsGetter interface {
	BotLogs() ([]models.BotLog, error)
}

func New(log *slog.Logger, logs BotLogsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.botpanel.getBotLogs.New"

		log = log.With(slog.String("op", op))

		entries, err := logs.BotLogs()
		if err != nil {
			log.Error("failed to get bot logs", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bot logs"))
			return
		}

		if entries == nil {
			entries = []models.BotLog{}
		}

		render.JSON(w, r, entries)
	}
}

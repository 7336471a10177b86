package replaceTransactions

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"barberbook/internal/lib/api/response"
	"barberbook/internal/lib/logger/sl"
	"barberbook/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TransactionsReplacer
type TransactionsReplacer interface {
	ReplaceTransactions(transactions []models.Transaction) error
}

func New(log *slog.Logger, ledger TransactionsReplacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.accounting.replaceTransactions.New"

		log = log.With(slog.String("op", op))

		var transactions []models.Transaction

		err := render.DecodeJSON(r.Body, &transactions)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = ledger.ReplaceTransactions(transactions); err != nil {
			log.Error("failed to save ledger", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save ledger"))
			return
		}

		log.Info("ledger saved", slog.Int("count", len(transactions)))

		render.JSON(w, r, response.OK())
	}
}

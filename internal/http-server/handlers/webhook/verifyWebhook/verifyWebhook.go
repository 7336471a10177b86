package verifyWebhook

import (
	"log/slog"
	"net/http"
)

// New answers the Meta webhook subscription handshake: when the mode is
// "subscribe" and the verify token matches, the hub.challenge value is
// echoed back as plain text.
func New(log *slog.Logger, verifyToken string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.webhook.verifyWebhook.New"

		log := log.With(slog.String("op", op))

		mode := r.URL.Query().Get("hub.mode")
		token := r.URL.Query().Get("hub.verify_token")
		challenge := r.URL.Query().Get("hub.challenge")

		if mode == "subscribe" && token == verifyToken {
			log.Info("webhook verified")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(challenge))
			return
		}

		log.Warn("webhook verification rejected", slog.String("mode", mode))
		w.WriteHeader(http.StatusForbidden)
	}
}

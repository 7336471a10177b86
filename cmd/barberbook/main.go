package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"barberbook/internal/bot"
	"barberbook/internal/config"
	"barberbook/internal/http-server/handlers/accounting/listTransactions"
	"barberbook/internal/http-server/handlers/accounting/replaceTransactions"
	"barberbook/internal/http-server/handlers/booking/createBooking"
	"barberbook/internal/http-server/handlers/booking/deleteBooking"
	"barberbook/internal/http-server/handlers/booking/listBookings"
	"barberbook/internal/http-server/handlers/botpanel/getBotLogs"
	"barberbook/internal/http-server/handlers/botpanel/getBotSettings"
	"barberbook/internal/http-server/handlers/botpanel/saveBotSettings"
	"barberbook/internal/http-server/handlers/camera/listCameras"
	"barberbook/internal/http-server/handlers/inventory/listProducts"
	"barberbook/internal/http-server/handlers/inventory/replaceProducts"
	"barberbook/internal/http-server/handlers/webhook/receiveWebhook"
	"barberbook/internal/http-server/handlers/webhook/verifyWebhook"
	"barberbook/internal/http-server/middleware/mwlogger"
	"barberbook/internal/lib/logger/handlers/slogpretty"
	"barberbook/internal/lib/logger/sl"
	"barberbook/internal/notify/instagram"
	"barberbook/internal/storage/jsonfile"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting barberbook", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := jsonfile.New(cfg.StoragePath)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	// Token saved through the admin panel wins over the configured one.
	notifier := instagram.New(cfg.Instagram.GraphAPIURL, func() string {
		settings, err := storage.BotSettings()
		if err == nil && settings.AccessToken != "" {
			return settings.AccessToken
		}
		return cfg.Instagram.AccessToken
	})

	processor := bot.New(log, storage, notifier)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	fs := http.FileServer(http.Dir("./static/"))
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusFound)
	})

	router.Route("/api", func(r chi.Router) {
		r.Get("/bookings", listBookings.New(log, storage))
		r.Post("/bookings", createBooking.New(log, storage))
		r.Delete("/bookings/{id}", deleteBooking.New(log, storage))

		r.Get("/inventory", listProducts.New(log, storage))
		r.Post("/inventory", replaceProducts.New(log, storage))

		r.Get("/accounting", listTransactions.New(log, storage))
		r.Post("/accounting", replaceTransactions.New(log, storage))

		r.Get("/cameras", listCameras.New(log, cfg.Cameras))

		r.Get("/bot/logs", getBotLogs.New(log, storage))
		r.Get("/bot/settings", getBotSettings.New(log, storage))
		r.Post("/bot/settings", saveBotSettings.New(log, storage))
	})

	router.Get("/webhook/instagram", verifyWebhook.New(log, cfg.Instagram.VerifyToken))
	router.Post("/webhook/instagram", receiveWebhook.New(log, processor))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err = storage.PruneBotLogs(); err != nil {
					log.Error("failed to prune bot logs", sl.Err(err))
				}
			case <-stop:
				return
			}
		}
	}()

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}

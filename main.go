package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pagseguro-checkout-api/config"
	"pagseguro-checkout-api/handlers"
	"pagseguro-checkout-api/services/pagseguro"
)

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapper, r)

		log.Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("remote", r.RemoteAddr).
			Int("status", wrapper.status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	log.Logger = log.With().Timestamp().Logger()

	cfg := config.Load()

	gatewayOpts := []pagseguro.Option{}
	if !cfg.PagSeguro.Sandbox {
		gatewayOpts = append(gatewayOpts, pagseguro.Production())
	}
	if cfg.PagSeguro.ButtonImage != "" {
		gatewayOpts = append(gatewayOpts, pagseguro.WithButtonImage(cfg.PagSeguro.ButtonImage))
	}

	gateway, err := pagseguro.New(cfg.PagSeguro.Email, cfg.PagSeguro.Token, gatewayOpts...)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid PagSeguro credentials")
	}
	log.Info().Bool("sandbox", cfg.PagSeguro.Sandbox).Msg("PagSeguro client ready")

	store := handlers.NewSessionStore(cfg.Session)
	cartHandler := handlers.NewCartHandler(store)
	checkoutHandler := handlers.NewCheckoutHandler(gateway, store)
	notificationHandler := handlers.NewNotificationHandler(gateway)
	transactionHandler := handlers.NewTransactionHandler(gateway)

	router := mux.NewRouter()
	router.Use(loggingMiddleware)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/cart", cartHandler.AddToCart).Methods("POST")
	api.HandleFunc("/cart", cartHandler.UpdateCart).Methods("PUT")
	api.HandleFunc("/cart", cartHandler.GetCart).Methods("GET")
	api.HandleFunc("/cart/remove", cartHandler.RemoveFromCart).Methods("POST")

	api.HandleFunc("/checkout", checkoutHandler.CheckoutPage).Methods("GET")
	api.HandleFunc("/checkout/form", checkoutHandler.RenderForm).Methods("POST")

	api.HandleFunc("/pagseguro/notification", notificationHandler.HandleNotification).Methods("POST")
	api.HandleFunc("/transactions/{code}", transactionHandler.GetTransaction).Methods("GET")

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}

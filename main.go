package main

import (
	"context"
	"net/http"
	"net/url"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"

	"github.com/96TSH/nutrimate/config"
	"github.com/96TSH/nutrimate/handlers"
	"github.com/96TSH/nutrimate/internal/auth"
	"github.com/96TSH/nutrimate/internal/email"
	"github.com/96TSH/nutrimate/internal/store"
)

const serviceName = "nutrimate"

func main() {
	var conf config.Config
	if err := envconfig.Process("", &conf); err != nil {
		panic("Failed to load environment variables: " + err.Error())
	}
	conf.DatabaseURI = strings.Trim(conf.DatabaseURI, "'")
	if !strings.HasPrefix(conf.ServerPort, ":") {
		conf.ServerPort = ":" + conf.ServerPort
	}

	logger := setupLogger(conf.Environment)
	defer logger.Sync()

	if conf.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{Dsn: conf.SentryDSN, Environment: conf.Environment})
		if err != nil {
			logger.Fatal("Failed to initialize sentry", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	startService(&conf, logger)
}

func setupLogger(environ string) *zap.Logger {
	if environ == "prod" {
		logger, err := zap.NewProduction()
		if err != nil {
			panic("Failed to build logger: " + err.Error())
		}
		return logger
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("Failed to build logger: " + err.Error())
	}
	return logger
}

func startService(conf *config.Config, logger *zap.Logger) {
	logger.Info("Starting", zap.String("service", serviceName), zap.String("env", conf.Environment), zap.String("backend", conf.StoreBackend))

	db, err := connectDatabase(conf)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.String("backend", conf.StoreBackend), zap.Error(err))
	}
	dataStore := store.NewStore(db)

	tp, shutdown := newTracerProvider(serviceName, logger)
	defer shutdown()

	if _, err := url.Parse(conf.WebAppURL); err != nil {
		logger.Fatal("Invalid web app URL", zap.String("url", conf.WebAppURL), zap.Error(err))
	}

	cookieStore := sessions.NewCookieStore([]byte(conf.SessionKey))
	cookieStore.Options.HttpOnly = true
	cookieStore.Options.Path = "/"
	cookieStore.Options.SameSite = http.SameSiteLaxMode

	sender := email.NewSMTPSender(conf.SMTPHost, conf.SMTPPort, conf.SMTPUsername, conf.SMTPPassword, conf.MailFrom)

	srv := &handlers.Service{
		ServiceName:    serviceName,
		Config:         conf,
		Logger:         logger,
		TracerProvider: tp,
		Db:             dataStore,
		Authenticator:  auth.NewAuthenticator(dataStore, logger),
		Reset:          auth.NewResetService(dataStore, logger),
		Mailer:         sender,
		Sessions:       cookieStore,
		Rules:          auth.DefaultRouteRules(),
	}

	router := handlers.SetupRouter(srv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)

	go func() {
		errCh <- listenAndServe(ctx, router, conf.ServerPort, logger)
	}()

	err = <-errCh
	if err != nil {
		// os.Exit would skip main's deferred sentry.Flush and logger.Sync.
		logger.Error("Server exited with error", zap.Error(err))
	} else {
		logger.Info("Server exited gracefully")
	}
}

func listenAndServe(ctx context.Context, router *gin.Engine, serverPort string, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:    serverPort,
		Handler: router,
	}

	serverErrCh := make(chan error, 1)

	go func() {
		logger.Info("Listening on address", zap.String("port", serverPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down gracefully")

		ctxShutDown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctxShutDown); err != nil {
			return err
		}

		return nil
	case err := <-serverErrCh:
		return err
	}
}

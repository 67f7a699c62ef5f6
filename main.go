package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"viselica/internal/hangman"
)

func main() {
	cfg := loadConfig()
	setupLogging(cfg.LogLevel, cfg.IsProduction)
	logInfo("Starting Viselica in %s mode", map[bool]string{true: "production", false: "development"}[cfg.IsProduction])

	app, err := newApp(cfg)
	if err != nil {
		logFatal("Failed to start: %v", err)
	}
	logInfo("Loaded %d words in the %s alphabet", len(app.Catalog), app.Alphabet.Name())

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := app.setupRouter()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	app.startSessionCleanup(ctx, cfg.CleanupInterval)

	app.startServer(ctx, router)
}

// newApp loads the catalog and prepares an App. A missing or empty catalog is fatal.
func newApp(cfg Config) (*App, error) {
	alphabet, err := hangman.AlphabetByName(cfg.AlphabetName)
	if err != nil {
		return nil, err
	}
	catalog, err := loadCatalog(cfg.WordsFile, alphabet)
	if err != nil {
		return nil, err
	}
	return &App{
		Config:       cfg,
		Catalog:      catalog,
		WordSet:      buildWordSet(catalog),
		Alphabet:     alphabet,
		GameSessions: make(map[string]*GameState),
		LimiterMap:   make(map[string]*rate.Limiter),
		StartTime:    time.Now(),
	}, nil
}

// setupRouter installs middleware, templates and routes.
func (app *App) setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestIDMiddleware(), requestLogger())

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression,
		ginGzip.WithExcludedExtensions([]string{".svg", ".ico", ".png", ".jpg", ".jpeg", ".gif"}),
		ginGzip.WithExcludedPaths([]string{RouteWS})))

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.Use(app.cacheHeadersMiddleware())

	if app.IsProduction && dirExists("dist") {
		logInfo("Serving assets from dist/ directory")
		router.LoadHTMLGlob("dist/templates/*.html")
		router.Static("/static", "./dist/static")
	} else {
		logInfo("Serving development assets from source directories")
		router.LoadHTMLGlob("templates/*.html")
		router.Static("/static", "./static")
	}

	router.GET(RouteHome, app.homeHandler)
	router.GET(RouteGameState, app.gameStateHandler)
	router.POST(RouteGuess, app.rateLimitMiddleware(), app.guessHandler)
	router.GET(RouteNewGame, app.newGameHandler)
	router.POST(RouteNewGame, app.rateLimitMiddleware(), app.newGameHandler)
	router.GET(RouteWS, app.wsHandler)
	router.GET(RouteHealthz, app.healthzHandler)

	return router
}

// startServer serves until ctx is cancelled, then drains connections.
func (app *App) startServer(ctx context.Context, router *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + app.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		logInfo("Shutdown signal received, shutting down server gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", app.Port)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
	os.Exit(0)
}

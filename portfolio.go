// Package portfolio serves a single-page personal portfolio built with Go,
// Echo, and templ: biography, project cards with a screenshot lightbox, and
// a contact form whose submissions are logged and optionally kept in a
// SQLite inbox.
//
// Templates are supplied by the caller via the ViewFuncs struct; portfolio
// owns routing, middleware, content loading and storage.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/tkremer/portfolio/contact"
)

// ViewFuncs holds the templ components the App calls when rendering pages.
type ViewFuncs struct {
	Home        func(d HomeData) templ.Component
	Lightbox    func(v LightboxView) templ.Component
	AdminLogin  func(site SiteConfig, showError bool, csrfToken string) templ.Component
	AdminInbox  func(site SiteConfig, msgs []InboxMessage, flash string, csrfToken string) templ.Component
	NotFound    func(site SiteConfig) templ.Component
	ServerError func(site SiteConfig) templ.Component
}

// App is the central portfolio application. It wires together the content
// catalog, thumbnails, contact recording, handlers, and middleware.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Log      *zap.Logger
	Catalog  *Catalog
	Thumbs   *Thumbnailer
	Store    *Store // nil unless the inbox is enabled
	Recorder contact.Recorder
	Views    ViewFuncs

	loginLimiter   *LoginLimiter
	customRoutes   []func(*App)
	extraRecorders []contact.Recorder
	logErr         error
	initialized    bool
}

// New creates a new portfolio App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:  cfg,
		Echo:    echo.New(),
		Views:   views,
		Catalog: NewCatalog(cfg.ContentDir, cfg.CatalogTTL),
		Thumbs:  NewThumbnailer(cfg.AssetsDir, cfg.Thumbs.CacheDir, cfg.Thumbs),
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}
	if a.Log == nil {
		a.Log, a.logErr = NewLogger(cfg.Log)
		if a.logErr != nil {
			a.Log = zap.NewNop()
		}
	}
	return a
}

// NewLogger builds a zap logger from cfg.
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	return zc.Build()
}

// Init validates the configuration, opens the inbox, and registers
// middleware and routes. Start calls it; tests may call it directly and
// drive a.Echo with httptest.
func (a *App) Init() error {
	if a.initialized {
		return nil
	}
	if a.logErr != nil {
		return fmt.Errorf("portfolio: %w", a.logErr)
	}
	if err := a.Config.Validate(); err != nil {
		return fmt.Errorf("portfolio: %w", err)
	}

	recorders := contact.Recorders{contact.LogRecorder{Log: a.Log}}
	if a.Config.Inbox.Enabled {
		store, err := NewStore(a.Config.Inbox.DatabasePath)
		if err != nil {
			return fmt.Errorf("portfolio: init inbox: %w", err)
		}
		a.Store = store
		recorders = append(recorders, store)
		a.loginLimiter = NewLoginLimiter(5, time.Minute)
	}
	a.Recorder = append(recorders, a.extraRecorders...)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.initialized = true
	return nil
}

// Start initializes the app and serves until ctx is cancelled, then shuts
// the server down gracefully.
func (a *App) Start(ctx context.Context) error {
	if err := a.Init(); err != nil {
		return err
	}
	if _, err := a.Catalog.Projects(); err != nil {
		return fmt.Errorf("portfolio: load content: %w", err)
	}
	if a.Config.WatchContent {
		if err := WatchCatalog(ctx, a.Catalog, a.Log); err != nil {
			return fmt.Errorf("portfolio: %w", err)
		}
	}

	errc := make(chan error, 1)
	go func() {
		a.Log.Info("listening", zap.String("addr", a.Config.Addr), zap.String("url", a.Config.URL))
		errc <- a.Echo.Start(a.Config.Addr)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()
	a.Log.Info("shutting down")
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("portfolio: shutdown: %w", err)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	e.GET("/static/*", echo.WrapHandler(http.StripPrefix("/static/", http.FileServer(http.FS(embeddedFS)))))
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleHome)
	e.GET("/projects/:id/screenshots/:index/", a.handleLightbox)
	e.GET("/thumbs/:id/:file", a.handleThumbnail)
	e.GET("/:id/:file", a.handleAsset)

	api := e.Group("/api")
	api.GET("/health", handleHealth)
	api.GET("/projects", a.handleListProjects)
	api.GET("/projects/:id", a.handleGetProject)
	api.POST("/contact", a.handleContact)

	if a.Store != nil {
		e.GET("/admin/", a.handleAdmin)
		e.POST("/admin/login/", a.handleAdminLogin)
		e.POST("/admin/logout/", handleAdminLogout)
		e.POST("/admin/messages/:id/read/", a.handleAdminMarkRead)
		e.POST("/admin/messages/:id/delete/", a.handleAdminDelete)
		e.DELETE("/admin/messages/:id/", a.handleAdminDelete)
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	var err error
	if a.Store != nil {
		err = a.Store.Close()
	}
	_ = a.Log.Sync()
	return err
}

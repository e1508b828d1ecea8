package portfolio

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/tkremer/portfolio/lightbox"
)

func (a *App) homeData(c echo.Context) (HomeData, error) {
	projects, err := a.Catalog.Projects()
	if err != nil {
		return HomeData{}, err
	}
	about, err := a.Catalog.About()
	if err != nil {
		return HomeData{}, err
	}
	meta := PageMeta{
		Title:       a.Config.Name,
		Description: a.Config.Description,
		URL:         BuildURL(a.Config.URL),
		OGType:      "profile",
	}
	if meta.Description == "" {
		meta.Description = a.Config.Tagline
	}
	return HomeData{Site: a.Config, Meta: meta, About: about, Projects: projects}, nil
}

func (a *App) handleHome(c echo.Context) error {
	data, err := a.homeData(c)
	if err != nil {
		return err
	}
	return Render(c, a.Views.Home(data))
}

// handleLightbox shows one screenshot enlarged. HTMX-style requests get the
// overlay alone; everything else gets the whole page with the overlay open,
// so the URL can be shared and works without scripts.
func (a *App) handleLightbox(c echo.Context) error {
	p, err := a.Catalog.Project(c.Param("id"))
	if errors.Is(err, ErrProjectNotFound) {
		return echo.ErrNotFound
	}
	if err != nil {
		return err
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.ErrNotFound
	}
	view, err := NewLightboxView(p, index)
	if err != nil {
		return echo.ErrNotFound
	}

	if c.Request().Header.Get("HX-Request") == "true" {
		c.Response().Header().Set("Vary", "HX-Request")
		return Render(c, a.Views.Lightbox(view))
	}
	data, err := a.homeData(c)
	if err != nil {
		return err
	}
	data.Open = &view
	data.Meta.Title = fmt.Sprintf("%s · %s", p.Title, a.Config.Name)
	data.Meta.URL = BuildURL(a.Config.URL, "projects", p.ID, "screenshots", strconv.Itoa(index))
	data.Meta.Image = AbsURL(a.Config.URL, p.ScreenshotPath(index))
	c.Response().Header().Set("Vary", "HX-Request")
	return Render(c, a.Views.Home(data))
}

// NewLightboxView opens a lightbox over p's screenshots at index and
// captures where the previous and next controls lead.
func NewLightboxView(p Project, index int) (LightboxView, error) {
	lb := lightbox.New(p.Screenshots, nil)
	if err := lb.OpenAt(index); err != nil {
		return LightboxView{}, err
	}
	n := lb.Len()
	return LightboxView{
		Project:   p,
		Index:     index,
		Prev:      lightbox.PrevIndex(index, n),
		Next:      lightbox.NextIndex(index, n),
		Navigable: lb.CanNavigate(),
	}, nil
}

// handleAsset serves /{projectId}/{file} for logos and listed screenshots only.
func (a *App) handleAsset(c echo.Context) error {
	p, err := a.Catalog.Project(c.Param("id"))
	if errors.Is(err, ErrProjectNotFound) {
		return echo.ErrNotFound
	}
	if err != nil {
		return err
	}
	file := c.Param("file")
	if !p.HasAsset(file) {
		return echo.ErrNotFound
	}
	return c.File(filepath.Join(a.Config.AssetsDir, p.ID, file))
}

func (a *App) handleThumbnail(c echo.Context) error {
	p, err := a.Catalog.Project(c.Param("id"))
	if errors.Is(err, ErrProjectNotFound) {
		return echo.ErrNotFound
	}
	if err != nil {
		return err
	}
	file := c.Param("file")
	if p.ScreenshotIndex(file) < 0 {
		return echo.ErrNotFound
	}
	path, err := a.Thumbs.Thumbnail(p.ID, file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return echo.ErrNotFound
		}
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, "image/jpeg")
	return c.File(path)
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) handleListProjects(c echo.Context) error {
	projects, err := a.Catalog.Projects()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

func (a *App) handleGetProject(c echo.Context) error {
	p, err := a.Catalog.Project(c.Param("id"))
	if errors.Is(err, ErrProjectNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Project not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (a *App) handleSitemap(c echo.Context) error {
	projects, err := a.Catalog.Projects()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, projects)
}

func (a *App) handleFeed(c echo.Context) error {
	projects, err := a.Catalog.Projects()
	if err != nil {
		return err
	}
	return a.renderRSS(c, projects)
}

// handleRobots generates robots.txt pointing at the sitemap.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\nDisallow: /api/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

// handleFavicon serves static/favicon.svg when present and otherwise a
// monogram of the site name.
func (a *App) handleFavicon(c echo.Context) error {
	custom := filepath.Join(a.Config.StaticDir, "favicon.svg")
	if _, err := os.Stat(custom); err == nil {
		return c.File(custom)
	}
	return c.Blob(http.StatusOK, "image/svg+xml", []byte(MonogramSVG(Initials(a.Config.Name))))
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound && !isAPIPath(c) {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.Config))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Log.Error("server error", zap.Error(err), zap.String("uri", c.Request().RequestURI))
		if isAPIPath(c) {
			_ = c.JSON(code, map[string]string{"error": "Internal server error"})
			return
		}
		_ = RenderStatus(c, code, a.Views.ServerError(a.Config))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

func isAPIPath(c echo.Context) bool {
	p := c.Request().URL.Path
	return len(p) >= 5 && p[:5] == "/api/"
}

package portfolio

import (
	"encoding/xml"
	"time"

	"github.com/labstack/echo/v4"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string      `xml:"title"`
	Link        string      `xml:"link"`
	Description string      `xml:"description"`
	PubDate     string      `xml:"pubDate,omitempty"`
	GUID        string      `xml:"guid"`
	Categories  []string    `xml:"category"`
	Enclosure   *rssEnclose `xml:"enclosure,omitempty"`
}

type rssEnclose struct {
	URL  string `xml:"url,attr"`
	Type string `xml:"type,attr"`
}

// renderRSS publishes the project list as a feed. Projects with an
// external page link there; the rest link to their first screenshot.
func (a *App) renderRSS(c echo.Context, projects []Project) error {
	base := a.Config.URL
	items := make([]rssItem, 0, len(projects))
	for _, p := range projects {
		pubDate := ""
		if t, err := time.Parse("2006-01-02", p.Date); err == nil {
			pubDate = t.Format(time.RFC1123Z)
		}
		guid := BuildURL(base, "api", "projects", p.ID)
		link := AbsURL(base, "/#"+p.ID)
		if p.Linked() {
			link = p.Href
		}
		item := rssItem{
			Title:       p.Title,
			Link:        link,
			Description: p.Description,
			PubDate:     pubDate,
			GUID:        guid,
			Categories:  p.Tags,
		}
		if len(p.Screenshots) > 0 {
			item.Enclosure = &rssEnclose{
				URL:  AbsURL(base, p.ScreenshotPath(0)),
				Type: imageType(p.Screenshots[0]),
			}
		}
		items = append(items, item)
	}
	return writeXML(c, "application/rss+xml; charset=utf-8", rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Name,
			Link:        BuildURL(base),
			Description: a.Config.Description,
			Items:       items,
		},
	})
}

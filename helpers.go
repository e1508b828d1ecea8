package portfolio

import (
	"encoding/json"
	"encoding/xml"
	"net/url"
	"path"
	"strings"
)

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// BuildPath joins segments into an absolute path with a trailing slash.
func BuildPath(segments ...string) string {
	p := "/" + path.Join(segments...)
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

// Initials returns up to two uppercase initials of name, used by the
// generated favicon.
func Initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			out = append(out, r)
			break
		}
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}

// PersonJsonLD returns a JSON-LD string for a Person schema describing the
// site owner and their projects.
func PersonJsonLD(cfg SiteConfig, projects []Project) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     cfg.Name,
		"url":      BuildURL(cfg.URL),
	}
	if cfg.Tagline != "" {
		data["jobTitle"] = cfg.Tagline
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	var sameAs []string
	for _, l := range cfg.Links {
		if strings.HasPrefix(l.URL, "http") {
			sameAs = append(sameAs, l.URL)
		}
	}
	if len(sameAs) > 0 {
		data["sameAs"] = sameAs
	}
	var works []map[string]string
	for _, p := range projects {
		w := map[string]string{
			"@type": "CreativeWork",
			"name":  p.Title,
		}
		if p.Description != "" {
			w["description"] = p.Description
		}
		if p.Linked() {
			w["url"] = p.Href
		}
		works = append(works, w)
	}
	if len(works) > 0 {
		data["owns"] = works
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// AbsURL prefixes an absolute path with the site base URL.
func AbsURL(base, p string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(p, "/")
}

// MonogramSVG draws initials on a rounded square for use as a favicon.
func MonogramSVG(initials string) string {
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64">`)
	b.WriteString(`<rect width="64" height="64" rx="14" fill="#111827"/>`)
	b.WriteString(`<text x="32" y="42" font-family="system-ui,sans-serif" font-size="28" font-weight="700" text-anchor="middle" fill="#f9fafb">`)
	xml.EscapeText(&b, []byte(initials))
	b.WriteString(`</text></svg>`)
	return b.String()
}

func imageType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	default:
		return "image/png"
	}
}

package portfolio

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrProjectNotFound is returned when a requested project does not exist.
var ErrProjectNotFound = errors.New("project not found")

const (
	projectsFile = "projects.yaml"
	aboutFile    = "about.md"
)

// catalogFile is the on-disk shape of projects.yaml.
type catalogFile struct {
	Projects []Project `yaml:"projects"`
}

// LoadProjects parses a projects.yaml document and applies per-project defaults.
func LoadProjects(data []byte) ([]Project, error) {
	var f catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", projectsFile, err)
	}
	for i := range f.Projects {
		p := &f.Projects[i]
		p.ID = strings.TrimSpace(p.ID)
		if p.LogoExtension == "" {
			p.LogoExtension = "png"
		}
		p.LogoExtension = strings.TrimPrefix(p.LogoExtension, ".")
	}
	return f.Projects, nil
}

// reservedIDs are first path segments owned by fixed routes. A project with
// one of these ids would be shadowed at /{id}/{file}.
var reservedIDs = map[string]bool{
	"admin":    true,
	"api":      true,
	"projects": true,
	"static":   true,
	"thumbs":   true,
}

// ValidateProjects checks ids, required fields and file names. When
// assetsDir is non-empty it also checks that every referenced asset exists.
func ValidateProjects(projects []Project, assetsDir string) error {
	var errs []error
	seen := make(map[string]struct{}, len(projects))
	for i, p := range projects {
		where := fmt.Sprintf("project %d (%s)", i, p.ID)
		switch {
		case p.ID == "":
			errs = append(errs, fmt.Errorf("project %d: id is required", i))
			continue
		case p.ID != Slugify(p.ID):
			errs = append(errs, fmt.Errorf("%s: id must be a lowercase slug", where))
		case reservedIDs[p.ID]:
			errs = append(errs, fmt.Errorf("%s: id %q is reserved for a site route", where, p.ID))
		}
		if _, dup := seen[p.ID]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicate id", where))
		}
		seen[p.ID] = struct{}{}
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("%s: title is required", where))
		}
		if p.Href == "" {
			errs = append(errs, fmt.Errorf("%s: href is required (use %q for no link)", where, NoLink))
		}
		for _, s := range p.Screenshots {
			if s == "" || s != path.Base(s) || strings.HasPrefix(s, ".") {
				errs = append(errs, fmt.Errorf("%s: invalid screenshot name %q", where, s))
			}
		}
		if assetsDir == "" {
			continue
		}
		files := append([]string{strings.TrimPrefix(p.LogoPath(), "/"+p.ID+"/")}, p.Screenshots...)
		for _, f := range files {
			if _, err := os.Stat(filepath.Join(assetsDir, p.ID, f)); err != nil {
				errs = append(errs, fmt.Errorf("%s: missing asset %s", where, f))
			}
		}
	}
	return errors.Join(errs...)
}

// Catalog is an in-memory copy of the content directory with a TTL, so
// edits to projects.yaml and about.md show up without a restart.
type Catalog struct {
	mu       sync.RWMutex
	projects []Project
	about    string
	fetched  time.Time
	ttl      time.Duration
	dir      string
}

// NewCatalog creates a Catalog reading from dir.
func NewCatalog(dir string, ttl time.Duration) *Catalog {
	return &Catalog{dir: dir, ttl: ttl}
}

// Dir returns the content directory.
func (c *Catalog) Dir() string {
	return c.dir
}

func (c *Catalog) valid() bool {
	return c.projects != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the catalog so the next read triggers a fresh load.
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	c.projects = nil
	c.about = ""
	c.mu.Unlock()
}

func (c *Catalog) load() error {
	if c.valid() {
		return nil
	}
	data, err := os.ReadFile(filepath.Join(c.dir, projectsFile))
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}
	projects, err := LoadProjects(data)
	if err != nil {
		return err
	}
	if err := ValidateProjects(projects, ""); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	about, err := os.ReadFile(filepath.Join(c.dir, aboutFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read about: %w", err)
	}
	html, err := RenderAbout(about)
	if err != nil {
		return err
	}
	if projects == nil {
		projects = []Project{}
	}
	c.projects = projects
	c.about = html
	c.fetched = time.Now()
	return nil
}

// ensureLoaded returns the cached projects and about HTML after ensuring the
// catalog is fresh. It tries a read lock first; only takes a write lock if a
// reload is needed.
func (c *Catalog) ensureLoaded() ([]Project, string, error) {
	c.mu.RLock()
	if c.valid() {
		projects, about := c.projects, c.about
		c.mu.RUnlock()
		return projects, about, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, "", err
	}
	return c.projects, c.about, nil
}

// Projects returns every project in catalog order.
func (c *Catalog) Projects() ([]Project, error) {
	projects, _, err := c.ensureLoaded()
	return projects, err
}

// About returns the rendered about section.
func (c *Catalog) About() (string, error) {
	_, about, err := c.ensureLoaded()
	return about, err
}

// Project returns a single project by id.
func (c *Catalog) Project(id string) (Project, error) {
	projects, _, err := c.ensureLoaded()
	if err != nil {
		return Project{}, err
	}
	for _, p := range projects {
		if p.ID == id {
			return p, nil
		}
	}
	return Project{}, ErrProjectNotFound
}

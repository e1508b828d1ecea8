package portfolio

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Thumbnailer produces the small JPEG previews shown in a card's screenshot
// row. Results are cached on disk and rebuilt when the source is newer.
type Thumbnailer struct {
	assetsDir string
	cacheDir  string
	width     int
	quality   int

	group singleflight.Group
}

// NewThumbnailer creates a Thumbnailer reading screenshots from assetsDir
// and writing thumbnails below cacheDir.
func NewThumbnailer(assetsDir, cacheDir string, cfg ThumbConfig) *Thumbnailer {
	return &Thumbnailer{
		assetsDir: assetsDir,
		cacheDir:  cacheDir,
		width:     cfg.Width,
		quality:   cfg.Quality,
	}
}

// resizeToWidth decodes an image from src, scales it down to maxWidth when
// wider, and encodes it as JPEG.
func resizeToWidth(src io.Reader, maxWidth, quality int) ([]byte, image.Point, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, image.Point{}, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxWidth {
		newH := h * maxWidth / w
		if newH < 1 {
			newH = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
		w, h = maxWidth, newH
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, image.Point{}, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), image.Pt(w, h), nil
}

// sourcePath returns the screenshot on disk for project/file.
func (t *Thumbnailer) sourcePath(projectID, file string) string {
	return filepath.Join(t.assetsDir, projectID, file)
}

// cachePath returns where the thumbnail of project/file is stored. The full
// file name is kept so shot.png and shot.jpg get separate thumbnails.
func (t *Thumbnailer) cachePath(projectID, file string) string {
	return filepath.Join(t.cacheDir, projectID, fmt.Sprintf("%s-%d.jpg", file, t.width))
}

// Thumbnail returns the path of an up-to-date thumbnail for project/file,
// building it if needed. Concurrent calls for the same file share one build.
func (t *Thumbnailer) Thumbnail(projectID, file string) (string, error) {
	src := t.sourcePath(projectID, file)
	dst := t.cachePath(projectID, file)

	if fresh(src, dst) {
		return dst, nil
	}
	_, err, _ := t.group.Do(dst, func() (interface{}, error) {
		if fresh(src, dst) {
			return nil, nil
		}
		return nil, t.build(src, dst)
	})
	if err != nil {
		return "", err
	}
	return dst, nil
}

func (t *Thumbnailer) build(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	data, _, err := resizeToWidth(f, t.width, t.quality)
	if err != nil {
		return fmt.Errorf("thumbnail %s: %w", src, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create thumbs dir: %w", err)
	}
	// Write to a temp file and rename so readers never see a partial JPEG.
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".thumb-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), dst)
}

// fresh reports whether dst exists and is not older than src.
func fresh(src, dst string) bool {
	ds, err := os.Stat(dst)
	if err != nil {
		return false
	}
	ss, err := os.Stat(src)
	if err != nil {
		// Source gone: serve what we have.
		return true
	}
	return !ds.ModTime().Before(ss.ModTime())
}

// GenerateAll builds thumbnails for every screenshot of projects using up
// to GOMAXPROCS workers. It returns the number of thumbnails processed and
// the first error.
func (t *Thumbnailer) GenerateAll(ctx context.Context, projects []Project) (int, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	n := 0
	for _, p := range projects {
		for _, file := range p.Screenshots {
			p, file := p, file
			n++
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				_, err := t.Thumbnail(p.ID, file)
				return err
			})
		}
	}
	return n, g.Wait()
}

package main

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pamudauposath/portfolio/internal/site"
)

// builder writes every reachable document of the site as static files.
// Existing files in out are overwritten, others are left alone.
type builder struct {
	site   *site.Site
	tmpl   *template.Template
	out    string
	public string
	logger *slog.Logger

	written int
}

func (b *builder) Build() (int, error) {
	b.written = 0
	if err := os.MkdirAll(b.out, 0o755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}

	page := b.site.Page()
	if err := b.write("index.html", func(w io.Writer) error { return renderPage(b.tmpl, w, page) }); err != nil {
		return b.written, err
	}

	for _, sec := range b.site.Sections() {
		states := sec.States()
		for _, st := range states {
			frag := sec.Open(st).View()
			if err := b.write(site.FragmentPath(sec.Name(), st), func(w io.Writer) error {
				return renderFragment(b.tmpl, w, frag)
			}); err != nil {
				return b.written, err
			}
		}

		keys := sec.DetailKeys()
		for _, key := range keys {
			d, ok := sec.Detail(key)
			if !ok {
				return b.written, fmt.Errorf("%s: no detail for %q", sec.Name(), key)
			}
			if err := b.write(site.DetailPath(sec.Name(), key), func(w io.Writer) error {
				return renderDetail(b.tmpl, w, d)
			}); err != nil {
				return b.written, err
			}
		}
		b.logger.Debug("section built", "section", sec.Name(), "states", len(states), "details", len(keys))
	}

	if err := b.write(site.ClosedPath, func(w io.Writer) error { return renderClosed(b.tmpl, w) }); err != nil {
		return b.written, err
	}
	// GitHub Pages must not run Jekyll over the output.
	if err := b.write(".nojekyll", func(io.Writer) error { return nil }); err != nil {
		return b.written, err
	}

	if err := b.copyTree(staticFiles(), "static"); err != nil {
		return b.written, err
	}
	if b.public != "" {
		info, err := os.Stat(b.public)
		switch {
		case errors.Is(err, os.ErrNotExist):
			b.logger.Debug("no public dir", "dir", b.public)
		case err != nil:
			return b.written, fmt.Errorf("stat public dir: %w", err)
		case !info.IsDir():
			return b.written, fmt.Errorf("public dir %s is not a directory", b.public)
		default:
			if err := b.copyTree(os.DirFS(b.public), "."); err != nil {
				return b.written, err
			}
		}
	}
	return b.written, nil
}

// write renders into memory first so a failed template leaves no
// partial file behind.
func (b *builder) write(rel string, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return fmt.Errorf("render %s: %w", rel, err)
	}
	return b.writeBytes(rel, buf.Bytes())
}

func (b *builder) writeBytes(rel string, data []byte) error {
	dst := filepath.Join(b.out, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", rel, err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	b.written++
	return nil
}

// copyTree copies every regular file of fsys into the output dir under
// prefix.
func (b *builder) copyTree(fsys fs.FS, prefix string) error {
	return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		return b.writeBytes(filepath.ToSlash(filepath.Join(prefix, p)), data)
	})
}

package documents

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"slices"
	"strings"

	"amharic.dev/analyzer/api/core"
)

var DefaultExtensions = []string{".html", ".xml", ".txt"}

// Library reads documents below root. Paths given to and returned by it are
// slash-separated and relative to root; they can not escape it.
type Library struct {
	log       *slog.Logger
	root      string
	extractor Extractor
}

func NewLibrary(log *slog.Logger, root string) *Library {
	return &Library{
		log:  log,
		root: root,
	}
}

func (l *Library) open() (*os.Root, error) {
	root, err := os.OpenRoot(l.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: library root %q", core.ErrNotFound, l.root)
		}
		return nil, err
	}
	return root, nil
}

func cleanPath(p string) (string, error) {
	p = path.Clean(strings.TrimPrefix(strings.ReplaceAll(p, `\`, "/"), "/"))
	if p == "" {
		p = "."
	}
	if !fs.ValidPath(p) {
		return "", fmt.Errorf("%w: path %q leaves the library", core.ErrBadArguments, p)
	}
	return p, nil
}

func normalizeExtensions(extensions []string) []string {
	if len(extensions) == 0 {
		return DefaultExtensions
	}
	out := make([]string, 0, len(extensions))
	for _, e := range extensions {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}

// Walk lists files below dir with one of extensions, matched case
// insensitively. No extensions means DefaultExtensions. The list is sorted.
func (l *Library) Walk(dir string, extensions []string) ([]string, error) {
	dir, err := cleanPath(dir)
	if err != nil {
		return nil, err
	}
	exts := normalizeExtensions(extensions)

	root, err := l.open()
	if err != nil {
		return nil, err
	}
	defer root.Close()

	var paths []string
	err = fs.WalkDir(root.FS(), dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if slices.Contains(exts, strings.ToLower(path.Ext(p))) {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: directory %q", core.ErrNotFound, dir)
		}
		return nil, err
	}
	slices.Sort(paths)
	l.log.Debug("walked library", "dir", dir, "files", len(paths))
	return paths, nil
}

// Load reads a file and extracts its text according to its extension.
func (l *Library) Load(p string) (string, error) {
	p, err := cleanPath(p)
	if err != nil {
		return "", err
	}
	kind, err := core.DocumentTypeOf(p)
	if err != nil {
		return "", err
	}

	root, err := l.open()
	if err != nil {
		return "", err
	}
	defer root.Close()

	content, err := fs.ReadFile(root.FS(), p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: file %q", core.ErrNotFound, p)
		}
		return "", err
	}
	return l.extractor.Extract(kind, content)
}

package corpus

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/hyperjump/hirogeru/internal/models"
)

// Loader builds a document corpus from directories of files. Files are
// extracted, preprocessed, and assigned positional IDs in path order, so a
// given directory tree always produces the same corpus.
type Loader struct {
	extractor  *Extractor
	extensions []string
	recursive  bool
	logger     *zap.Logger // optional; when set, logs per-file events
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets a logger for per-file debug output.
func WithLogger(l *zap.Logger) LoaderOption {
	return func(ld *Loader) { ld.logger = l }
}

// NewLoader creates a loader that accepts files with the given extensions.
// An empty extensions list accepts all files.
func NewLoader(extensions []string, recursive bool, opts ...LoaderOption) *Loader {
	ld := &Loader{
		extractor:  NewExtractor(),
		extensions: extensions,
		recursive:  recursive,
	}
	for _, opt := range opts {
		opt(ld)
	}
	return ld
}

// LoadDirectories walks dirs and returns the extracted documents ordered by
// path. Files that fail extraction or contain no text are skipped with a
// warning rather than failing the whole corpus.
func (ld *Loader) LoadDirectories(ctx context.Context, dirs []string) ([]models.Document, error) {
	var paths []string
	for _, dir := range dirs {
		found, err := ld.collectFiles(dir)
		if err != nil {
			return nil, err
		}
		paths = append(paths, found...)
	}
	sort.Strings(paths)

	docs := make([]models.Document, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := ld.extractor.Extract(path)
		if err != nil {
			if ld.logger != nil {
				ld.logger.Warn("corpus skipping unreadable file", zap.String("path", path), zap.Error(err))
			}
			continue
		}
		text = Preprocess(text)
		if text == "" {
			if ld.logger != nil {
				ld.logger.Debug("corpus skipping empty file", zap.String("path", path))
			}
			continue
		}
		docs = append(docs, models.Document{
			ID:     len(docs),
			Title:  filepath.Base(path),
			Text:   text,
			Source: path,
		})
		if ld.logger != nil {
			ld.logger.Debug("corpus loaded file", zap.String("path", path))
		}
	}
	return docs, nil
}

// collectFiles returns the regular files under dir whose extensions are allowed.
func (ld *Loader) collectFiles(dir string) ([]string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("absolute path: %w", err)
	}
	info, err := os.Stat(absDir)
	if err != nil {
		return nil, fmt.Errorf("stat directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", absDir)
	}
	var paths []string
	err = filepath.WalkDir(absDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if !ld.recursive && path != absDir {
				return fs.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if len(ld.extensions) > 0 && !extensionAllowed(ext, ld.extensions) {
			return nil
		}
		// Resolve symlinks so only regular files are loaded
		finfo, statErr := os.Stat(path)
		if statErr != nil {
			return nil
		}
		if !finfo.Mode().IsRegular() {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func extensionAllowed(ext string, allowed []string) bool {
	extNorm := strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, a := range allowed {
		if strings.ToLower(strings.TrimPrefix(a, ".")) == extNorm {
			return true
		}
	}
	return false
}

// Preprocess trims text and collapses whitespace runs to single spaces
// before the text is embedded.
func Preprocess(text string) string {
	text = strings.TrimSpace(text)
	var b strings.Builder
	wasSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !wasSpace {
				b.WriteRune(' ')
				wasSpace = true
			}
		} else {
			b.WriteRune(r)
			wasSpace = false
		}
	}
	return b.String()
}

package headfile

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-headtags/pkg/element"
)

// Option customises LoadFS.
type Option func(*loadConfig)

type loadConfig struct {
	pattern string
	logger  *slog.Logger
}

// WithPattern restricts loading to paths matching a doublestar glob such as
// "heads/**/*.yaml".
func WithPattern(pattern string) Option {
	return func(cfg *loadConfig) {
		cfg.pattern = strings.TrimSpace(pattern)
	}
}

// WithLogger reports loaded and skipped files at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *loadConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

type documentFile struct {
	Heads map[string]headFile `json:"heads" yaml:"heads"`
}

type headFile struct {
	BaseURL      string                `json:"baseUrl" yaml:"baseUrl"`
	Declarations []element.Declaration `json:"declarations" yaml:"declarations"`
}

// LoadFS walks fsys and parses every JSON/YAML head file. A nil fsys yields an
// empty store. Document names must be unique across files.
func LoadFS(fsys fs.FS, options ...Option) (*Store, error) {
	cfg := loadConfig{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.pattern != "" && !doublestar.ValidatePattern(cfg.pattern) {
		return nil, fmt.Errorf("headfile: invalid pattern %q", cfg.pattern)
	}

	store := &Store{documents: make(map[string]Document)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !IsHeadFile(p) {
			return nil
		}
		if cfg.pattern != "" {
			matched, err := doublestar.Match(cfg.pattern, p)
			if err != nil {
				return fmt.Errorf("headfile: match %s: %w", p, err)
			}
			if !matched {
				cfg.logger.Debug("headfile.skipped", "path", p, "pattern", cfg.pattern)
				return nil
			}
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("headfile: read %s: %w", p, err)
		}
		doc, err := parseDocument(data, p)
		if err != nil {
			return err
		}

		for rawName, raw := range doc.Heads {
			name := strings.TrimSpace(rawName)
			if name == "" {
				return fmt.Errorf("headfile: file %s defines an empty head name", p)
			}
			if existing, exists := store.documents[name]; exists {
				return fmt.Errorf("headfile: duplicate head %q (files %s and %s)", name, existing.Source, p)
			}
			store.documents[name] = Document{
				Name:         name,
				Source:       p,
				BaseURL:      strings.TrimSpace(raw.BaseURL),
				Declarations: append(element.Sequence{}, raw.Declarations...),
			}
		}
		cfg.logger.Debug("headfile.loaded", "path", p, "heads", len(doc.Heads))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("headfile: file %s is empty", source)
	}

	var err error
	if strings.EqualFold(path.Ext(source), ".json") {
		err = json.Unmarshal(data, &doc)
	} else {
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return documentFile{}, fmt.Errorf("headfile: parse %s: %w", source, err)
	}
	return doc, nil
}

// IsHeadFile reports whether p carries a .json, .yaml or .yml extension.
func IsHeadFile(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

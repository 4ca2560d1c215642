package currencyfmt

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/currency_data.json
var defaultCurrencyDataJSON []byte

// DataLoader loads currency data from the embedded defaults, an optional
// user file and per-locale override files, in increasing precedence.
type DataLoader struct {
	defaultPath  string
	overrides    map[string]string
	skipEmbedded bool
}

// NewDataLoader creates a loader. An empty path loads only the embedded data.
func NewDataLoader(defaultPath string) *DataLoader {
	return &DataLoader{
		defaultPath: defaultPath,
		overrides:   make(map[string]string),
	}
}

// AddOverride registers a file holding the fields of a single locale
func (l *DataLoader) AddOverride(locale, path string) {
	l.overrides[normalizeLocale(locale)] = path
}

// WithoutEmbedded skips the embedded defaults
func (l *DataLoader) WithoutEmbedded() *DataLoader {
	l.skipEmbedded = true
	return l
}

// Load reads and merges every configured source
func (l *DataLoader) Load() (*CurrencyData, error) {
	data := &CurrencyData{}

	if !l.skipEmbedded {
		var embedded CurrencyData
		if err := json.Unmarshal(defaultCurrencyDataJSON, &embedded); err != nil {
			return nil, fmt.Errorf("parse default currency data: %w", err)
		}
		mergeCurrencyData(data, &embedded)
	} else if l.defaultPath == "" && len(l.overrides) == 0 {
		return nil, ErrNoDataPaths
	}

	if l.defaultPath != "" {
		raw, err := os.ReadFile(l.defaultPath)
		if err != nil {
			return nil, fmt.Errorf("load currency data: %w", err)
		}
		var userData CurrencyData
		if err := decodeDataFile(l.defaultPath, raw, &userData); err != nil {
			return nil, fmt.Errorf("parse currency data %s: %w", l.defaultPath, err)
		}
		mergeCurrencyData(data, &userData)
	}

	// deterministic order keeps error reporting stable
	locales := make([]string, 0, len(l.overrides))
	for locale := range l.overrides {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	for _, locale := range locales {
		if err := l.loadOverride(data, locale, l.overrides[locale]); err != nil {
			return nil, err
		}
	}

	return data, nil
}

func (l *DataLoader) loadOverride(base *CurrencyData, locale, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load currency override for %q: %w", locale, err)
	}

	var override LocaleCurrencyData
	if err := decodeDataFile(path, raw, &override); err != nil {
		return fmt.Errorf("parse currency override for %q: %w", locale, err)
	}

	mergeCurrencyData(base, &CurrencyData{
		Locales: map[string]LocaleCurrencyData{locale: override},
	})
	return nil
}

func decodeDataFile(path string, raw []byte, target any) error {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		return json.Unmarshal(raw, target)
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, target); err != nil {
			return fmt.Errorf("yaml parse error: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

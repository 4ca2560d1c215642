package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	currencyfmt "github.com/goliatone/go-i18n-currency"
)

func TestParseFlags(t *testing.T) {
	t.Setenv("CURRENCY_LOCALE", "pl")

	cfg, err := parseFlags([]string{
		"-amounts", "1, 2.5,",
		"-style", "iso",
		"-usage", "cash",
		"-fallback", "en,de",
	})
	require.NoError(t, err)

	assert.Equal(t, "pl", cfg.locale)
	assert.Equal(t, "¤#,##0.00", cfg.pattern)
	assert.Equal(t, currencyfmt.StyleISOCode, cfg.style)
	assert.Equal(t, currencyfmt.UsageCash, cfg.usage)
	assert.Equal(t, []string{"en", "de"}, cfg.fallbacks.items)
	require.Len(t, cfg.amounts, 2)
	assert.Equal(t, "2.5", cfg.amounts[1].String())
}

func TestParseFlagsErrors(t *testing.T) {
	_, err := parseFlags([]string{"-amounts", "ten"})
	assert.Error(t, err)

	_, err = parseFlags([]string{"-style", "name"})
	assert.Error(t, err)

	_, err = parseFlags([]string{"-locale", " "})
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	cfg, err := parseFlags([]string{"-locale", "en-US", "-amounts", "1234.5,-2"})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(cfg, zap.NewNop(), &out))

	text := out.String()
	assert.Contains(t, text, "magnitude(2 digits)")
	assert.Contains(t, text, `"$#"`)
	assert.Contains(t, text, `"-$#"`)
	assert.Contains(t, text, "$1234.50")
	assert.Contains(t, text, "-$2.00")
}

func TestRunPluralPatterns(t *testing.T) {
	cfg, err := parseFlags([]string{"-locale", "pl", "-plural", "-amounts", "3"})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(cfg, zap.NewNop(), &out))

	text := out.String()
	assert.Contains(t, text, `"# złote polskie"`)
	assert.Contains(t, text, `"-# złotych polskich"`)
	assert.Contains(t, text, "3.00 złotego polskiego")
}

func TestRunErrors(t *testing.T) {
	cfg, err := parseFlags([]string{"-locale", "xx", "-plural"})
	require.NoError(t, err)
	assert.Error(t, run(cfg, zap.NewNop(), &bytes.Buffer{}))

	cfg, err = parseFlags([]string{"-pattern", "¤¤¤¤#"})
	require.NoError(t, err)
	assert.ErrorIs(t, run(cfg, zap.NewNop(), &bytes.Buffer{}), currencyfmt.ErrMalformedPattern)
}

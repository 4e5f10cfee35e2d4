package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextLoggerUpperCasesLevels(t *testing.T) {
	t.Parallel()

	cfg := viper.New()
	cfg.Set(LevelKey, "info")

	var out bytes.Buffer
	logger, err := New(cfg, &out)
	require.NoError(t, err)

	logger.Info().Str("op", "stake").Msg("vault operation committed")
	logger.Debug().Msg("hidden")

	assert.Contains(t, out.String(), "INFO")
	assert.Contains(t, out.String(), "vault operation committed")
	assert.Contains(t, out.String(), "op=stake")
	assert.NotContains(t, out.String(), "hidden")
}

func TestNewJSONLogger(t *testing.T) {
	t.Parallel()

	cfg := viper.New()
	cfg.Set(LevelKey, "DEBUG")
	cfg.Set(FormatKey, "json")

	var out bytes.Buffer
	logger, err := New(cfg, &out)
	require.NoError(t, err)

	logger.Debug().Str("batch", "3").Msg("batch sent")

	var line map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &line))
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "3", line["batch"])
	assert.Contains(t, line, "time")
}

func TestNewDefaultsToWarn(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	logger, err := New(nil, &out)
	require.NoError(t, err)

	logger.Info().Msg("quiet")
	assert.Empty(t, out.String())

	logger.Warn().Msg("loud")
	assert.Contains(t, out.String(), "WARN")
}

func TestNewRejectsBadSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		key    string
		value  string
		errMsg string
	}{
		{name: "level", key: LevelKey, value: "chatty", errMsg: "parse log level"},
		{name: "format", key: FormatKey, value: "xml", errMsg: "unsupported log format: xml"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := viper.New()
			cfg.Set(tc.key, tc.value)

			_, err := New(cfg, &bytes.Buffer{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

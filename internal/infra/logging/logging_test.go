package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give    string
		want    slog.Level
		wantErr bool
	}{
		{give: "debug", want: slog.LevelDebug},
		{give: "INFO", want: slog.LevelInfo},
		{give: "", want: slog.LevelInfo},
		{give: "warn", want: slog.LevelWarn},
		{give: "warning", want: slog.LevelWarn},
		{give: "error", want: slog.LevelError},
		{give: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tt.give)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			require.Equal(t, tt.want, got)
		})
	}
}

func TestValidateFormat(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateFormat("json"))
	require.NoError(t, ValidateFormat("text"))
	require.Error(t, ValidateFormat("logfmt"))
}

func TestNewHandler(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		logger := slog.New(newHandler(&buf, FormatJSON, slog.LevelInfo))
		logger.Debug("hidden")
		logger.Info("probe outcome stored", "id", 7)

		var line map[string]any

		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		require.Equal(t, "probe outcome stored", line["msg"])
		require.InDelta(t, 7.0, line["id"], 0)
	})

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		logger := slog.New(newHandler(&buf, FormatText, slog.LevelDebug))
		logger.Debug("next maintenance run scheduled")

		require.True(t, strings.Contains(buf.String(), `msg="next maintenance run scheduled"`))
	})
}

package logger

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"lpixmove/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"ERROR": zerolog.ErrorLevel,
		"warn":  zerolog.WarnLevel,
		"Debug": zerolog.DebugLevel,
		"TRACE": zerolog.TraceLevel,
		"INFO":  zerolog.InfoLevel,
		"":      zerolog.InfoLevel,
		"bogus": zerolog.InfoLevel,
	}

	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("INFO", &buf)

	log.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	log.SetLogLevel("DEBUG")
	assert.Equal(t, zerolog.DebugLevel, log.Level())

	log.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNew_LogPath(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "lpixmove.log")

	log := New(&domain.Config{LogPath: logPath, LogLevel: "INFO", LogMaxSize: 1, LogMaxBackups: 1})
	log.Info().Str("gallery", "12345").Msg("resolved gallery")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"gallery":"12345"`)
	assert.Contains(t, string(data), "resolved gallery")
}

func TestNop(t *testing.T) {
	log := Nop()
	assert.NotPanics(t, func() {
		log.Error().Msg("nothing")
		l := log.With().Str("k", "v").Logger()
		l.Info().Msg("nothing")
	})
}

func TestWithStr(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("INFO", &buf).WithStr("run", "abc")

	log.Info().Msg("started")
	assert.Contains(t, buf.String(), `"run":"abc"`)

	log.Debug().Msg("hidden")
	assert.NotContains(t, buf.String(), "hidden")

	log.SetLogLevel("DEBUG")
	log.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestSetLogLevel_WhileLogging(t *testing.T) {
	log := NewWithWriter("INFO", io.Discard)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			log.Info().Int("i", i).Msg("moving")
			log.Debug().Int("i", i).Msg("moving")
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			if i%2 == 0 {
				log.SetLogLevel("DEBUG")
			} else {
				log.SetLogLevel("INFO")
			}
		}
	}()

	wg.Wait()

	log.SetLogLevel("WARN")
	assert.Equal(t, zerolog.WarnLevel, log.Level())
}

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-debrief/internal/config"
)

func TestNew_Levels(t *testing.T) {
	cases := []struct {
		name  string
		cfg   config.LoggerConfig
		debug bool
		info  bool
	}{
		{name: "development debug", cfg: config.LoggerConfig{Environment: config.EnvDevelopment, Level: "debug"}, debug: true, info: true},
		{name: "production default", cfg: config.LoggerConfig{Environment: config.EnvProduction}, debug: false, info: true},
		{name: "test warn", cfg: config.LoggerConfig{Environment: config.EnvTest, Level: "warn"}, debug: false, info: false},
		{name: "bad level", cfg: config.LoggerConfig{Level: "loud"}, debug: false, info: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			log, err := New(tc.cfg)
			require.NoError(t, err)
			assert.Equal(t, tc.debug, log.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tc.info, log.Core().Enabled(zapcore.InfoLevel))
		})
	}
}

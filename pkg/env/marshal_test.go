package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleConfig struct {
	Name     string        `env:"APP_NAME"`
	Port     int           `env:"APP_PORT"`
	Debug    bool          `env:"APP_DEBUG"`
	Rate     float64       `env:"APP_RATE"`
	Timeout  time.Duration `env:"APP_TIMEOUT"`
	Skipped  string
	Required string `env:"APP_SECRET,required,notEmpty"`
}

func TestMarshalEnv(t *testing.T) {
	cfg := &sampleConfig{
		Name:     "suppd",
		Port:     8080,
		Debug:    true,
		Rate:     0.1,
		Timeout:  30 * time.Second,
		Skipped:  "ignored",
		Required: "secret",
	}

	out, err := MarshalEnv(cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "APP_NAME=suppd\n")
	assert.Contains(t, out, "APP_PORT=8080\n")
	assert.Contains(t, out, "APP_DEBUG=true\n")
	assert.Contains(t, out, "APP_RATE=0.1\n")
	assert.Contains(t, out, "APP_SECRET=secret\n")
	assert.NotContains(t, out, "ignored")
}

func TestMarshalEnv_DurationFormat(t *testing.T) {
	cfg := &sampleConfig{Timeout: 90 * time.Second}
	out, err := MarshalEnv(cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "APP_TIMEOUT=1m30s\n")
	// Never serialized as raw nanoseconds.
	assert.NotContains(t, out, "90000000000")
}

func TestMarshalEnv_SkipsZeroValues(t *testing.T) {
	out, err := MarshalEnv(&sampleConfig{Name: "suppd"})
	require.NoError(t, err)
	assert.Equal(t, "APP_NAME=suppd\n", out)
}

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	for _, env := range []string{"development", "local", "production"} {
		log, err := New(env)
		require.NoError(t, err, env)
		assert.True(t, log.Core().Enabled(zap.InfoLevel), env)
		assert.False(t, log.Core().Enabled(zap.DebugLevel), env)
	}
}

package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"officeit/internal/logging"
)

func TestSetup_WritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "officeit.log")

	restore, err := logging.Setup(logging.Options{Mode: "production", File: path})
	require.NoError(t, err)
	zap.S().Infow("catalog ready", "products", 3)
	restore()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"catalog ready"`)
	assert.Contains(t, string(data), `"products":3`)
}

func TestNew_Development(t *testing.T) {
	logger, err := logging.New(logging.Options{})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}

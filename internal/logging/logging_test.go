package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFileJSON(t *testing.T) {
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetFormatter(&logrus.TextFormatter{})
		logrus.SetLevel(logrus.InfoLevel)
	})
	path := filepath.Join(t.TempDir(), "app.log")

	Init("debug", "json", path)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	logrus.WithField("user", "alice").Debug("hello")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"user":"alice"`)
	assert.Contains(t, string(b), `"msg":"hello"`)
}

func TestInitBadLevel(t *testing.T) {
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })
	Init("loud", "text", "stderr")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestBootstrapLogger(t *testing.T) {
	original := Log
	t.Cleanup(func() { Log = original })

	BootstrapLogger("warn")
	assert.Equal(t, logrus.WarnLevel, Log.GetLevel())
	assert.True(t, Log.ReportCaller)

	BootstrapLogger("not-a-level")
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
}

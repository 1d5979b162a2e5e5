/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package common

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterLoggerLevels(t *testing.T) {
	testcases := []struct {
		level    LogLevel
		expected []string
	}{
		{LogLevelError, []string{"[ERROR]"}},
		{LogLevelInfo, []string{"[ERROR]", "[WARNING]", "[NOTICE]", "[INFO]"}},
		{LogLevelTrace, []string{"[ERROR]", "[WARNING]", "[NOTICE]", "[INFO]", "[DEBUG]", "[TRACE]"}},
	}

	for _, tcase := range testcases {
		var buf bytes.Buffer
		l := NewWriterLogger(tcase.level, &buf)
		l.Error("e %d", 1)
		l.Warning("w")
		l.Notice("n")
		l.Info("i")
		l.Debug("d")
		l.Trace("t")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if assert.Len(t, lines, len(tcase.expected)) {
			for i, prefix := range tcase.expected {
				assert.True(t, strings.HasPrefix(lines[i], prefix), lines[i])
				assert.Contains(t, lines[i], "logging_test.go:")
			}
		}
		assert.True(t, l.IsLogLevel(tcase.level))
		assert.False(t, l.IsLogLevel(tcase.level+1))
	}
}

func TestSetLogger(t *testing.T) {
	orig := Log
	defer SetLogger(orig)

	var buf bytes.Buffer
	SetLogger(NewWriterLogger(LogLevelDebug, &buf))
	Log.Debug("table %q", "CPAL")
	assert.Contains(t, buf.String(), `table "CPAL"`)
}

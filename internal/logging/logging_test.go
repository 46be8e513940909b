package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusAdapterWritesFields(t *testing.T) {
	var buf bytes.Buffer
	logrusLogger := logrus.New()
	logrusLogger.SetOutput(&buf)
	logrusLogger.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(logrusLogger)
	logger.WithField(FieldBillID, "bill-1").Info("Bill added")

	output := buf.String()
	assert.Contains(t, output, `"bill_id":"bill-1"`)
	assert.Contains(t, output, "Bill added")
}

func TestLogrusAdapterWithError(t *testing.T) {
	var buf bytes.Buffer
	logrusLogger := logrus.New()
	logrusLogger.SetOutput(&buf)
	logrusLogger.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(logrusLogger)
	logger.WithError(errors.New("disk full")).Error("Save failed")

	assert.Contains(t, buf.String(), "disk full")
}

func TestNewLogrusAdapterInvalidLevel(t *testing.T) {
	// Must not panic; falls back to info.
	logger := NewLogrusAdapter("chatty", "text")
	assert.NotNil(t, logger)
}

func TestMockLoggerCapturesEntries(t *testing.T) {
	mock := &MockLogger{}
	mock.Info("first message")
	mock.Warn("second message", Field{Key: "k", Value: "v"})

	require.Len(t, mock.Entries, 2)
	assert.True(t, mock.HasMessage("first message"))
	assert.False(t, mock.HasMessage("missing"))
	assert.Equal(t, "WARN", mock.Entries[1].Level)
	assert.Equal(t, "v", mock.Entries[1].Fields[0].Value)
}

func TestGetLoggerIsSingleton(t *testing.T) {
	assert.Same(t, GetLogger(), GetLogger())
}

package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	Info("test message")

	assert.Contains(t, buf.String(), "test message")
}

func TestInfoWithFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	Info("booking created", "booking_id", "abc-123", "status", "pending")

	output := buf.String()
	assert.Contains(t, output, "booking created")
	assert.Contains(t, output, "abc-123")
	assert.Contains(t, output, "pending")
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	Error("something failed", "error", "boom")

	output := buf.String()
	assert.Contains(t, output, "something failed")
	assert.Contains(t, output, "error")
}

func TestInfof(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	Infof("venue %s published", "court-1")

	assert.Contains(t, buf.String(), "venue court-1 published")
}

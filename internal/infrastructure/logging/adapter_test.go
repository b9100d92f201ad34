package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hapkiduki/luwang-go/internal/infrastructure/logging"
	"github.com/hapkiduki/luwang-go/pkg/logger"
)

func TestAdapter_CarriesFieldsAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logger.MustNew(logger.Config{Level: "debug", Output: &buf}))

	ctx := context.WithValue(context.Background(), logger.RequestIDKey, "req-7")
	log.With("component", "measurement").WithContext(ctx).Debug("Area calculated", "shape", "circle")

	out := buf.String()
	assert.Contains(t, out, `"component":"measurement"`)
	assert.Contains(t, out, `"request_id":"req-7"`)
	assert.Contains(t, out, `"shape":"circle"`)
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		logging.Nop().With("a", 1).WithContext(context.Background()).Warn("dropped")
	})
}

package engine

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/codeready-toolchain/agentloop/pkg/models"
)

func TestPhaseRecordsErrors(t *testing.T) {
	o := &Orchestrator{logger: slog.Default()}
	res := &models.OrchestrationResult{Errors: []string{}}

	o.phase(res, "first", func() error { return errors.New("boom") })
	o.phase(res, "second", func() error { return nil })
	o.phase(res, "third", func() error { return errors.New("bang") })

	assert.Equal(t, []string{"first: boom", "third: bang"}, res.Errors)
}

func TestMillisSince(t *testing.T) {
	start := time.Now().Add(-250 * time.Millisecond)
	ms := millisSince(start)
	assert.GreaterOrEqual(t, ms, 250.0)
	assert.Less(t, ms, 5000.0)
}

package dispatch

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closableStub struct {
	*StubDispatcher
	closed int
}

func (c *closableStub) Close() error {
	c.closed++
	return nil
}

func TestRegistryLastRegistrationWins(t *testing.T) {
	r := NewRegistry(slog.Default())
	require.Nil(t, r.StepDispatcher())
	require.False(t, r.StepAvailable())

	first := NewStubDispatcher()
	second := NewStubDispatcher()
	r.SetStepDispatcher("plugin-a", first)
	r.SetStepDispatcher("plugin-b", second)

	assert.Same(t, second, r.StepDispatcher())
	assert.True(t, r.StepAvailable())
}

func TestRegistryAvailabilityFollowsBackend(t *testing.T) {
	r := NewRegistry(slog.Default())
	stub := NewStubDispatcher()
	r.SetStepDispatcher("stub", stub)
	r.SetChatDispatcher("stub", stub)

	assert.True(t, r.StepAvailable())
	assert.True(t, r.ChatAvailable())

	stub.SetAvailable(false)
	assert.False(t, r.StepAvailable())
	assert.False(t, r.ChatAvailable())
}

func TestRegistryShutdownClosesBackendsOnce(t *testing.T) {
	r := NewRegistry(slog.Default())
	backend := &closableStub{StubDispatcher: NewStubDispatcher()}
	r.SetStepDispatcher("stub", backend)
	r.SetChatDispatcher("stub", backend)

	r.Shutdown(context.Background())

	assert.Equal(t, 1, backend.closed)
	assert.Nil(t, r.StepDispatcher())
	assert.Nil(t, r.ChatDispatcher())
}

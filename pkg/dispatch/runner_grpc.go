package dispatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	runnerv1 "github.com/codeready-toolchain/agentloop/proto/runner/v1"
)

// GRPCRunnerDispatcher executes steps on a remote agent runner over gRPC.
// The runner streams progress chunks; the dispatcher accumulates text until
// the terminal status chunk arrives.
type GRPCRunnerDispatcher struct {
	addr   string
	conn   *grpc.ClientConn
	client runnerv1.RunnerServiceClient
	logger *slog.Logger
}

// NewGRPCRunnerDispatcher connects to the runner at addr. The connection is
// lazy; dial errors surface on the first dispatch.
func NewGRPCRunnerDispatcher(addr string, logger *slog.Logger) (*GRPCRunnerDispatcher, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to agent runner at %s: %w", addr, err)
	}
	return &GRPCRunnerDispatcher{
		addr:   addr,
		conn:   conn,
		client: runnerv1.NewRunnerServiceClient(conn),
		logger: logger.With("component", "dispatch.runner", "addr", addr),
	}, nil
}

// Available reports whether a runner address is configured.
func (d *GRPCRunnerDispatcher) Available() bool {
	return d.addr != ""
}

// Dispatch streams one step execution from the runner. Stream failures are
// infrastructure errors; a terminal error status from the runner is an
// agent-level failure.
func (d *GRPCRunnerDispatcher) Dispatch(ctx context.Context, req StepRequest) (*StepResult, error) {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = defaultStepTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout+invokeBuffer)
	defer cancel()

	protoReq := &runnerv1.ExecuteStepRequest{
		StepId:         req.StepID,
		SessionId:      StepSessionKey(req.StepID),
		Prompt:         req.Prompt,
		TimeoutSeconds: int64(timeout / time.Second),
	}
	if req.AgentConfig != nil {
		protoReq.Metadata = dispatchMetadata(req.AgentConfig.Dispatcher.Provider, req.AgentConfig.Dispatcher.Model)
	}

	stream, err := d.client.ExecuteStep(ctx, protoReq)
	if err != nil {
		return nil, fmt.Errorf("runner ExecuteStep call failed: %w", err)
	}

	var text strings.Builder
	var terminal *runnerv1.StatusChunk
	for {
		chunk, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("runner stream failed: %w", err)
		}
		switch payload := chunk.GetChunk().(type) {
		case *runnerv1.ExecuteStepChunk_Text:
			text.WriteString(payload.Text.GetContent())
		case *runnerv1.ExecuteStepChunk_Status:
			terminal = payload.Status
		}
		if terminal != nil {
			break
		}
	}
	if terminal == nil {
		return nil, fmt.Errorf("runner stream ended without a terminal status")
	}

	status := terminal.GetStatus()
	if status == "" {
		status = StatusError
	}
	meta := map[string]any{"runner_addr": d.addr}
	if msg := terminal.GetError(); msg != "" {
		meta["error"] = msg
	}
	res := &StepResult{Status: status, Meta: meta}
	if status == StatusOK {
		res.Text = text.String()
	}
	return res, nil
}

// Close releases the gRPC connection.
func (d *GRPCRunnerDispatcher) Close() error {
	return d.conn.Close()
}

func dispatchMetadata(provider, model string) map[string]string {
	if provider == "" && model == "" {
		return nil
	}
	meta := make(map[string]string, 2)
	if provider != "" {
		meta["provider"] = provider
	}
	if model != "" {
		meta["model"] = model
	}
	return meta
}

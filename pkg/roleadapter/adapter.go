// Package roleadapter abstracts the external role execution service: the
// model-backed workers that actually answer routed sub-questions.
package roleadapter

import (
	"context"
	"fmt"

	rolev1 "github.com/orchid-run/orchid/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Request is one step execution sent to a role.
type Request struct {
	RunID       string
	StepID      int
	Role        string
	Question    string
	Context     []string // completed predecessor outputs, plan order
	Seed        int64
	Temperature float64
	MaxTokens   int
}

// Result is the role's answer.
type Result struct {
	Text       string
	TokensUsed int
	Confidence float64
	Meta       map[string]string
}

// Adapter executes routed steps against the external role service.
type Adapter interface {
	Execute(ctx context.Context, req Request) (*Result, error)
	Close() error
}

// GRPCAdapter implements Adapter by calling the role service via gRPC.
type GRPCAdapter struct {
	conn   *grpc.ClientConn
	client rolev1.RoleAdapterServiceClient
}

// NewGRPCAdapter creates a new gRPC role adapter client.
func NewGRPCAdapter(addr string) (*GRPCAdapter, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to role adapter at %s: %w", addr, err)
	}
	return &GRPCAdapter{
		conn:   conn,
		client: rolev1.NewRoleAdapterServiceClient(conn),
	}, nil
}

// Execute sends one step to the role service. The caller's context
// carries the step deadline.
func (a *GRPCAdapter) Execute(ctx context.Context, req Request) (*Result, error) {
	resp, err := a.client.Execute(ctx, &rolev1.ExecuteRequest{
		RunId:       req.RunID,
		StepId:      int32(req.StepID),
		Role:        req.Role,
		Question:    req.Question,
		Context:     req.Context,
		Seed:        req.Seed,
		Temperature: req.Temperature,
		MaxTokens:   int32(req.MaxTokens),
	})
	if err != nil {
		return nil, fmt.Errorf("gRPC Execute call failed: %w", err)
	}
	return &Result{
		Text:       resp.Text,
		TokensUsed: int(resp.TokensUsed),
		Confidence: resp.Confidence,
		Meta:       resp.Meta,
	}, nil
}

// Close releases the gRPC connection.
func (a *GRPCAdapter) Close() error {
	return a.conn.Close()
}

package roleadapter

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
)

// StubAdapter is a deterministic in-process Adapter for tests and local
// development. The same request always yields the same result, so runs
// built on it produce byte-identical artifacts.
type StubAdapter struct {
	mu sync.Mutex
	// Responses maps a question to a scripted result; unscripted
	// questions get a synthesized deterministic answer.
	Responses map[string]Result
	// Fail makes Execute return an error for the listed questions, once
	// per remaining count. Used to exercise retry paths.
	Fail  map[string]int
	calls []Request
}

// NewStubAdapter creates an empty stub.
func NewStubAdapter() *StubAdapter {
	return &StubAdapter{
		Responses: make(map[string]Result),
		Fail:      make(map[string]int),
	}
}

// Execute returns the scripted or synthesized result.
func (s *StubAdapter) Execute(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, req)

	if remaining, ok := s.Fail[req.Question]; ok && remaining > 0 {
		s.Fail[req.Question] = remaining - 1
		return nil, fmt.Errorf("stub failure for %q", req.Question)
	}

	if r, ok := s.Responses[req.Question]; ok {
		out := r
		return &out, nil
	}

	digest := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d", req.Role, req.Question, req.Seed)))
	return &Result{
		Text:       fmt.Sprintf("[%s] answer %s", req.Role, hex.EncodeToString(digest[:4])),
		TokensUsed: 10 * (1 + len(strings.Fields(req.Question))),
		Confidence: 0.9,
		Meta:       map[string]string{"adapter": "stub"},
	}, nil
}

// Calls returns a copy of every request seen so far.
func (s *StubAdapter) Calls() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.calls))
	copy(out, s.calls)
	return out
}

// Close is a no-op.
func (s *StubAdapter) Close() error { return nil }

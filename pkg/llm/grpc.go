package llm

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	llmv1 "github.com/plenumhq/plenum/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCProvider implements Provider against a local model-gateway sidecar
// over gRPC. The sidecar streams text deltas; Complete accumulates them
// into one completion because the engine does not stream partial tokens.
type GRPCProvider struct {
	conn   *grpc.ClientConn
	client llmv1.LLMServiceClient
}

// NewGRPCProvider dials the sidecar. The dial is lazy; connection failures
// surface on the first Complete call.
func NewGRPCProvider(addr string) (*GRPCProvider, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to model gateway at %s: %w", addr, err)
	}
	return &GRPCProvider{
		conn:   conn,
		client: llmv1.NewLLMServiceClient(conn),
	}, nil
}

// Complete issues the streaming RPC and folds the chunks into one reply.
func (g *GRPCProvider) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	start := time.Now()

	stream, err := g.client.Complete(ctx, toProtoRequest(req))
	if err != nil {
		return nil, &ProviderError{Model: req.Model, Message: fmt.Sprintf("gRPC Complete call failed: %v", err), Transient: true}
	}

	var sb strings.Builder
	var tokens int
	for {
		chunk, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ProviderError{Model: req.Model, Message: err.Error(), Transient: true}
		}
		switch c := chunk.Content.(type) {
		case *llmv1.CompleteChunk_Text_:
			sb.WriteString(c.Text.Content)
		case *llmv1.CompleteChunk_Usage_:
			tokens += int(c.Usage.TotalTokens)
		case *llmv1.CompleteChunk_Error_:
			return nil, &ProviderError{Model: req.Model, Message: c.Error.Message, Transient: c.Error.Retryable}
		}
	}

	return &Completion{
		Text:       sb.String(),
		TokensUsed: tokens,
		LatencyMS:  time.Since(start).Milliseconds(),
	}, nil
}

// Close releases the gRPC connection.
func (g *GRPCProvider) Close() error {
	return g.conn.Close()
}

func toProtoRequest(req CompletionRequest) *llmv1.CompleteRequest {
	out := &llmv1.CompleteRequest{
		Model:  req.Model,
		System: req.System,
		User:   req.User,
	}
	s := req.Sampling
	if s.Temperature != nil || s.MaxTokens != nil || s.TopP != nil || s.PresencePenalty != nil || s.FrequencyPenalty != nil {
		ps := &llmv1.Sampling{
			Temperature:      s.Temperature,
			TopP:             s.TopP,
			PresencePenalty:  s.PresencePenalty,
			FrequencyPenalty: s.FrequencyPenalty,
		}
		if s.MaxTokens != nil {
			mt := int32(*s.MaxTokens)
			ps.MaxTokens = &mt
		}
		out.Sampling = ps
	}
	return out
}

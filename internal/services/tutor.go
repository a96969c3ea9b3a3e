package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"exam-tutor-backend/internal/models"
)

type historyRepository interface {
	Append(sessionID string, ex models.Exchange) []models.Exchange
}

// TutorService runs one chat turn: sanitize, prompt, complete, parse, record.
type TutorService struct {
	completer Completer
	history   historyRepository
	timeout   time.Duration

	tracer           trace.Tracer
	requests         metric.Int64Counter
	upstreamDuration metric.Float64Histogram
}

// NewTutorService wires the service. A zero timeout leaves the upstream call
// bounded only by the caller's context.
func NewTutorService(completer Completer, history historyRepository, timeout time.Duration) *TutorService {
	meter := otel.Meter("exam-tutor")

	requests, err := meter.Int64Counter("tutor.chat.requests",
		metric.WithDescription("Chat turns handled, by outcome"))
	if err != nil {
		log.Printf("WARNING: failed to create request counter: %v", err)
	}
	upstreamDuration, err := meter.Float64Histogram("tutor.upstream.duration",
		metric.WithDescription("Upstream completion latency"),
		metric.WithUnit("ms"))
	if err != nil {
		log.Printf("WARNING: failed to create upstream histogram: %v", err)
	}

	return &TutorService{
		completer:        completer,
		history:          history,
		timeout:          timeout,
		tracer:           otel.Tracer("exam-tutor"),
		requests:         requests,
		upstreamDuration: upstreamDuration,
	}
}

func (s *TutorService) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	ctx, span := s.tracer.Start(ctx, "tutor.chat",
		trace.WithAttributes(attribute.String("session.id", req.SessionID)))
	defer span.End()

	question := CleanLatex(req.Question)
	prompt := BuildPrompt(question, req.Answer)

	raw, err := s.complete(ctx, prompt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "upstream completion failed")
		s.countRequest(ctx, "error")
		return nil, fmt.Errorf("completion for session %s: %w", req.SessionID, err)
	}

	reply := trimSpace(raw)
	difficulty := ExtractDifficulty(reply)

	history := s.history.Append(req.SessionID, models.Exchange{
		User: fmt.Sprintf("Q: %s\nA: %s", question, req.Answer),
		AI:   reply,
	})

	if difficulty != nil {
		span.SetAttributes(attribute.String("tutor.difficulty", *difficulty))
	}
	span.SetAttributes(attribute.Int("tutor.history_length", len(history)))
	s.countRequest(ctx, "ok")

	return &models.ChatResponse{
		Reply:      reply,
		Difficulty: difficulty,
		History:    history,
	}, nil
}

// complete makes the single upstream call for a turn.
func (s *TutorService) complete(ctx context.Context, prompt string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "tutor.upstream",
		trace.WithAttributes(attribute.String("llm.model", s.completer.ModelID())))
	defer span.End()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.completer.Complete(ctx, prompt)
	if s.upstreamDuration != nil {
		s.upstreamDuration.Record(ctx, float64(time.Since(start).Milliseconds()))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	return text, nil
}

func (s *TutorService) countRequest(ctx context.Context, outcome string) {
	if s.requests == nil {
		return
	}
	s.requests.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

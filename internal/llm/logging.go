package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LoggingProvider is a decorator that records every LLM request.
type LoggingProvider struct {
	inner Provider
	log   *zap.Logger
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, log *zap.Logger) Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	fields := []zap.Field{
		zap.String("purpose", PurposeFrom(ctx)),
		zap.String("model", l.inner.ModelID()),
		zap.Int("messages", len(req.Messages)),
		zap.Int("tools", len(req.Tools)),
		zap.Duration("latency", time.Since(start)),
	}

	if resp != nil {
		fields = append(fields,
			zap.String("served_by", resp.Model),
			zap.String("stop_reason", resp.StopReason),
			zap.Int("input_tokens", resp.Usage.InputTokens),
			zap.Int("output_tokens", resp.Usage.OutputTokens),
			zap.Int("tool_calls", len(resp.ToolCalls)),
		)
		if cost := LookupCost(resp.Model); cost != nil {
			fields = append(fields, zap.Float64("cost_usd", cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)))
		}
	}

	if err != nil {
		fields = append(fields, zap.Error(err))
		l.log.Warn("llm request failed", fields...)
	} else {
		l.log.Info("llm request", fields...)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

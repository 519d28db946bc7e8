// Package gateway is the single seam between callers and the heterogeneous
// provider adapters: it resolves a model id, invokes the matching adapter,
// attaches cost, and normalizes every failure into a typed Error.
package gateway

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nulzo/provider-gateway/internal/analytics"
	"github.com/nulzo/provider-gateway/internal/catalog"
	"github.com/nulzo/provider-gateway/internal/cost"
	"github.com/nulzo/provider-gateway/internal/provider"
	"github.com/nulzo/provider-gateway/internal/store/model"
	"go.uber.org/zap"
)

// Mode selects between plain text and structured JSON generation.
type Mode string

const (
	ModeText Mode = "text"
	ModeJSON Mode = "json"
)

// Request is one normalized generation call.
type Request struct {
	Prompt  string
	ModelID string
	Mode    Mode
}

// Result is the unified outcome. Exactly one of Text/JSON is populated,
// matching the request mode. CostUSD is always derived here, never
// provider-supplied.
type Result struct {
	ID       string
	Model    catalog.ModelDefinition
	Mode     Mode
	Text     string
	JSON     json.RawMessage
	Usage    provider.Usage
	CostUSD  float64
	Duration time.Duration
}

// Service routes generation requests. Each Dispatch is independent and
// stateless beyond the read-only catalog and per-adapter client handles, so
// the implementation is safe for unbounded concurrent use. The gateway
// enforces no deadline; callers own timeouts via ctx.
type Service interface {
	Dispatch(ctx context.Context, req Request) (*Result, error)
}

type service struct {
	logger   *zap.Logger
	adapters map[catalog.Provider]provider.Adapter
	ingestor analytics.Ingestor
}

// NewService builds the dispatcher over a static provider→adapter mapping.
// The ingestor may be nil when usage accounting is disabled.
func NewService(logger *zap.Logger, adapters map[catalog.Provider]provider.Adapter, ingestor analytics.Ingestor) Service {
	return &service{
		logger:   logger,
		adapters: adapters,
		ingestor: ingestor,
	}
}

func (s *service) Dispatch(ctx context.Context, req Request) (*Result, error) {
	def, err := catalog.ByID(req.ModelID)
	if err != nil {
		// Resolved before any provider is touched; no adapter call, no log
		// spam for caller typos.
		return nil, classify(req.ModelID, err)
	}

	id := "gen-" + uuid.NewString()

	adapter, ok := s.adapters[def.Provider]
	if !ok {
		gerr := &Error{
			Kind:    KindConfiguration,
			ModelID: req.ModelID,
			Message: "provider " + string(def.Provider) + " is not registered",
		}
		s.logger.Error("Dispatch to unregistered provider",
			zap.String("model", req.ModelID),
			zap.String("provider", string(def.Provider)))
		s.emit(id, def, req.Mode, provider.Usage{}, 0, 0, gerr)
		return nil, gerr
	}

	start := time.Now()
	res := &Result{
		ID:    id,
		Model: def,
		Mode:  req.Mode,
	}

	switch req.Mode {
	case ModeJSON:
		var payload json.RawMessage
		usage, jerr := adapter.GenerateJSON(ctx, req.Prompt, def, &payload)
		err = jerr
		res.JSON = payload
		res.Usage = usage
	default:
		var text *provider.TextResult
		text, err = adapter.GenerateText(ctx, req.Prompt, def)
		if text != nil {
			res.Text = text.Text
			res.Usage = text.Usage
		}
	}

	res.Duration = time.Since(start)

	if err != nil {
		gerr := classify(req.ModelID, err)
		// Logged once here, at the point of failure; callers receive the
		// typed error and decide what the user sees.
		s.logger.Error("Generation failed",
			zap.String("model", req.ModelID),
			zap.String("provider", string(def.Provider)),
			zap.String("kind", string(gerr.Kind)),
			zap.Error(err))
		s.emit(id, def, req.Mode, res.Usage, 0, res.Duration, gerr)
		return nil, gerr
	}

	res.CostUSD = cost.Compute(res.Usage, def)
	s.emit(id, def, req.Mode, res.Usage, res.CostUSD, res.Duration, nil)

	return res, nil
}

func (s *service) emit(id string, def catalog.ModelDefinition, mode Mode, usage provider.Usage, costUSD float64, latency time.Duration, gerr *Error) {
	if s.ingestor == nil {
		return
	}

	entry := &model.GenerationLog{
		ID:               id,
		ModelID:          def.ID,
		ProviderID:       string(def.Provider),
		Mode:             string(mode),
		PromptTokens:     usage.PromptTokens,
		CompletionTokens: usage.CompletionTokens,
		TotalTokens:      usage.TotalTokens,
		CostMicros:       cost.Micros(costUSD),
		LatencyMS:        latency.Milliseconds(),
		Status:           "ok",
		CreatedAt:        time.Now(),
	}
	if gerr != nil {
		entry.Status = "error"
		entry.ErrorKind = string(gerr.Kind)
	}

	s.ingestor.Log(entry)
}

// Package tools implements the capabilities exposed to calling agents
// through the tool router. Each tool decodes and validates its own params,
// calls the core use cases and returns structured data. Missing data comes
// back as a sentinel status, never as an error.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"skyhunt-service/internal/domain/entity"
	"skyhunt-service/internal/domain/repository"
	"skyhunt-service/internal/infrastructure/router"
	"skyhunt-service/internal/usecase"
	"skyhunt-service/pkg/logger"
	"skyhunt-service/pkg/metrics"
)

// RegisterAll wires every tool into the router
func RegisterAll(
	r *router.ToolRouter,
	registry *usecase.HuntRegistry,
	analyzer *usecase.PriceAnalyzer,
	detector *usecase.TrendDetector,
	historyRepo repository.PriceHistoryRepository,
	m *metrics.Metrics,
	logger logger.Logger,
) {
	r.Register(&GetActiveHuntsTool{registry: registry})
	r.Register(&AnalyzePriceSafetyTool{analyzer: analyzer})
	r.Register(&CheckMarketTrendsTool{detector: detector})
	r.Register(&RegisterHuntTool{registry: registry, metrics: m})
	r.Register(&DeactivateHuntTool{registry: registry})
	r.Register(&RecordObservationTool{historyRepo: historyRepo, metrics: m, logger: logger})
}

func decodeParams(params json.RawMessage, dst interface{}) error {
	if len(params) == 0 {
		return nil
	}
	if err := json.Unmarshal(params, dst); err != nil {
		return &usecase.ValidationError{Field: "params", Reason: "malformed JSON: " + err.Error()}
	}
	return nil
}

// GetActiveHuntsTool retrieves the active hunts and their flexibility data
type GetActiveHuntsTool struct {
	registry *usecase.HuntRegistry
}

func (t *GetActiveHuntsTool) Name() string { return "get_active_hunts" }

type activeHuntResult struct {
	HuntID uint    `json:"hunt_id"`
	Route  string  `json:"route"`
	Date   string  `json:"date"`
	Target float64 `json:"target"`
	Flex   int     `json:"flex"`
	Mode   string  `json:"mode"`
}

func (t *GetActiveHuntsTool) Handle(ctx context.Context, params json.RawMessage) (interface{}, error) {
	hunts, err := t.registry.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]activeHuntResult, 0, len(hunts))
	for _, h := range hunts {
		results = append(results, activeHuntResult{
			HuntID: h.ID,
			Route:  h.Route(),
			Date:   h.TravelDate.Format("2006-01-02"),
			Target: h.TargetPrice,
			Flex:   h.FlexibilityDays,
			Mode:   h.Mode,
		})
	}
	return results, nil
}

// AnalyzePriceSafetyTool suggests steal/fair/rip-off price bands for a route
// at a lead time, optionally classifying a candidate price
type AnalyzePriceSafetyTool struct {
	analyzer *usecase.PriceAnalyzer
}

func (t *AnalyzePriceSafetyTool) Name() string { return "analyze_price_safety" }

type analyzePriceSafetyParams struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	DaysLeft    int      `json:"days_left"`
	Price       *float64 `json:"price,omitempty"`
}

type priceBandResult struct {
	Status     string   `json:"status"`
	StealLow   float64  `json:"steal_low,omitempty"`
	StealHigh  float64  `json:"steal_high,omitempty"`
	FairLow    float64  `json:"fair_low,omitempty"`
	FairHigh   float64  `json:"fair_high,omitempty"`
	RipOffOver float64  `json:"rip_off_above,omitempty"`
	Average    float64  `json:"average,omitempty"`
	Verdict    string   `json:"verdict,omitempty"`
	Message    string   `json:"message,omitempty"`
}

func (t *AnalyzePriceSafetyTool) Handle(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p analyzePriceSafetyParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}

	bands, err := t.analyzer.AnalyzeBands(ctx, p.Origin, p.Destination, p.DaysLeft)
	if err != nil {
		if errors.Is(err, usecase.ErrNoBaseline) {
			return priceBandResult{Status: "no_data", Message: "No history found"}, nil
		}
		return nil, err
	}

	result := priceBandResult{
		Status:     "ok",
		StealLow:   bands.StealLow,
		StealHigh:  bands.StealHigh,
		FairLow:    bands.StealHigh,
		FairHigh:   bands.FairHigh,
		RipOffOver: bands.FairHigh,
		Average:    bands.Average,
	}
	if p.Price != nil {
		result.Verdict = string(bands.Classify(*p.Price))
	}
	return result, nil
}

// CheckMarketTrendsTool reports whether the market for a route is rising or
// falling over a lookback window
type CheckMarketTrendsTool struct {
	detector *usecase.TrendDetector
}

func (t *CheckMarketTrendsTool) Name() string { return "check_market_trends" }

type checkMarketTrendsParams struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	LookbackHours int    `json:"lookback_hours"`
}

type trendResult struct {
	Trend        string  `json:"trend"`
	Change       float64 `json:"change"`
	Samples      int     `json:"samples"`
	LastObserved string  `json:"last_observed,omitempty"`
}

func (t *CheckMarketTrendsTool) Handle(ctx context.Context, params json.RawMessage) (interface{}, error) {
	p := checkMarketTrendsParams{LookbackHours: 48}
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}

	trend, err := t.detector.CheckTrend(ctx, p.Origin, p.Destination, p.LookbackHours)
	if err != nil {
		return nil, err
	}

	result := trendResult{
		Trend:   string(trend.Direction),
		Change:  trend.Change,
		Samples: trend.Samples,
	}
	if !trend.LastObserved.IsZero() {
		result.LastObserved = trend.LastObserved.UTC().Format(time.RFC3339)
	}
	return result, nil
}

// RegisterHuntTool creates a new active hunt
type RegisterHuntTool struct {
	registry *usecase.HuntRegistry
	metrics  *metrics.Metrics
}

func (t *RegisterHuntTool) Name() string { return "register_hunt" }

type registerHuntParams struct {
	Origin       string  `json:"origin"`
	Destination  string  `json:"destination"`
	TravelDate   string  `json:"travel_date"`
	FlexDays     int     `json:"flex_days"`
	TargetPrice  float64 `json:"target_price"`
	NotifyTarget string  `json:"notify_target"`
}

func (t *RegisterHuntTool) Handle(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p registerHuntParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}

	hunt, err := t.registry.Register(ctx, usecase.RegisterHuntInput{
		Origin:       p.Origin,
		Destination:  p.Destination,
		TravelDate:   p.TravelDate,
		FlexDays:     p.FlexDays,
		TargetPrice:  p.TargetPrice,
		NotifyTarget: p.NotifyTarget,
	})
	if err != nil {
		return nil, err
	}

	if t.metrics != nil {
		t.metrics.HuntsRegistered.Inc()
	}
	return activeHuntResult{
		HuntID: hunt.ID,
		Route:  hunt.Route(),
		Date:   hunt.TravelDate.Format("2006-01-02"),
		Target: hunt.TargetPrice,
		Flex:   hunt.FlexibilityDays,
		Mode:   hunt.ModeLabel(),
	}, nil
}

// DeactivateHuntTool turns a hunt off; repeating the call is a no-op
type DeactivateHuntTool struct {
	registry *usecase.HuntRegistry
}

func (t *DeactivateHuntTool) Name() string { return "deactivate_hunt" }

type deactivateHuntParams struct {
	HuntID uint `json:"hunt_id"`
}

func (t *DeactivateHuntTool) Handle(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p deactivateHuntParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}
	if p.HuntID == 0 {
		return nil, &usecase.ValidationError{Field: "hunt_id", Reason: "is required"}
	}

	if err := t.registry.Deactivate(ctx, p.HuntID); err != nil {
		return nil, err
	}
	return map[string]interface{}{"hunt_id": p.HuntID, "is_active": false}, nil
}

// RecordObservationTool appends one price sample to a route's history. It is
// the entry point for the external live-price ingestion collaborator.
type RecordObservationTool struct {
	historyRepo repository.PriceHistoryRepository
	metrics     *metrics.Metrics
	logger      logger.Logger
}

func (t *RecordObservationTool) Name() string { return "record_observation" }

type recordObservationParams struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Price       float64 `json:"price"`
	Timestamp   string  `json:"timestamp,omitempty"`
}

func (t *RecordObservationTool) Handle(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p recordObservationParams
	if err := decodeParams(params, &p); err != nil {
		return nil, err
	}

	p.Origin = strings.ToUpper(strings.TrimSpace(p.Origin))
	p.Destination = strings.ToUpper(strings.TrimSpace(p.Destination))
	if p.Origin == "" || p.Destination == "" {
		return nil, &usecase.ValidationError{Field: "route", Reason: "origin and destination are required"}
	}
	if p.Price <= 0 {
		return nil, &usecase.ValidationError{Field: "price", Reason: "must be positive"}
	}

	timestamp := time.Now().UTC()
	if p.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, p.Timestamp)
		if err != nil {
			return nil, &usecase.ValidationError{Field: "timestamp", Reason: "must be RFC3339"}
		}
		timestamp = parsed.UTC()
	}

	obs := &entity.PriceObservation{
		Origin:      p.Origin,
		Destination: p.Destination,
		Price:       p.Price,
		Timestamp:   timestamp,
	}
	if err := t.historyRepo.Append(ctx, obs); err != nil {
		return nil, err
	}

	if t.metrics != nil {
		t.metrics.ObservationsRecorded.Inc()
	}
	t.logger.Debug("Observation recorded",
		"route", p.Origin+"->"+p.Destination,
		"price", p.Price)
	return map[string]interface{}{"recorded": true}, nil
}

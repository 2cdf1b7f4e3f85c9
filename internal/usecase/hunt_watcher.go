package usecase

import (
	"context"
	"errors"
	"time"

	"skyhunt-service/internal/domain/entity"
	"skyhunt-service/internal/domain/repository"
	"skyhunt-service/pkg/logger"
	"skyhunt-service/pkg/metrics"
	"skyhunt-service/pkg/utils"
	"skyhunt-service/templates"
)

// trendLookbackHours bounds the trend window quoted in alerts
const trendLookbackHours = 48

// HuntWatcher walks the active hunts, judges the latest observed price for
// each route and sends a WhatsApp alert when a hunt's target is hit
type HuntWatcher struct {
	huntRepo     repository.HuntRepository
	historyRepo  repository.PriceHistoryRepository
	whatsappRepo repository.WhatsappRepository
	analyzer     *PriceAnalyzer
	detector     *TrendDetector
	logger       logger.Logger
	metrics      *metrics.Metrics
}

// NewHuntWatcher creates a new hunt watcher
func NewHuntWatcher(
	huntRepo repository.HuntRepository,
	historyRepo repository.PriceHistoryRepository,
	whatsappRepo repository.WhatsappRepository,
	analyzer *PriceAnalyzer,
	detector *TrendDetector,
	logger logger.Logger,
	m *metrics.Metrics,
) *HuntWatcher {
	return &HuntWatcher{
		huntRepo:     huntRepo,
		historyRepo:  historyRepo,
		whatsappRepo: whatsappRepo,
		analyzer:     analyzer,
		detector:     detector,
		logger:       logger,
		metrics:      m,
	}
}

// EvaluateHunts evaluates every active hunt once. A failure on one hunt is
// logged and does not stop the sweep.
func (w *HuntWatcher) EvaluateHunts(ctx context.Context) error {
	hunts, err := w.huntRepo.ListActive(ctx)
	if err != nil {
		return err
	}

	w.logger.Info("Evaluating hunts", "count", len(hunts))
	for i := range hunts {
		if err := w.evaluateHunt(ctx, &hunts[i]); err != nil {
			w.logger.Error("Hunt evaluation failed", "huntId", hunts[i].ID, "error", err)
		}
	}
	return nil
}

func (w *HuntWatcher) evaluateHunt(ctx context.Context, hunt *entity.Hunt) error {
	now := time.Now()

	// Expired hunts (window fully in the past) are retired, not evaluated
	if utils.DaysUntil(now, hunt.WindowEnd()) < 0 {
		w.logger.Info("Retiring expired hunt", "huntId", hunt.ID, "route", hunt.Route())
		return w.huntRepo.Deactivate(ctx, hunt.ID)
	}

	observations, err := w.historyRepo.ListByRoute(ctx, hunt.Origin, hunt.Destination, time.Time{})
	if err != nil {
		return err
	}
	if len(observations) == 0 {
		w.logger.Debug("No observations yet", "route", hunt.Route())
		return nil
	}

	latest := observations[len(observations)-1]
	if latest.Price > hunt.TargetPrice {
		return nil
	}

	daysLeft := utils.DaysUntil(now, hunt.TravelDate)
	if daysLeft < 0 {
		// Flexible hunt whose exact date passed but window end has not
		daysLeft = 0
	}

	zone := entity.ZoneSteal
	if bands, err := w.analyzer.AnalyzeBands(ctx, hunt.Origin, hunt.Destination, daysLeft); err == nil {
		zone = bands.Classify(latest.Price)
	} else if !errors.Is(err, ErrNoBaseline) {
		return err
	}

	trend, err := w.detector.CheckTrend(ctx, hunt.Origin, hunt.Destination, trendLookbackHours)
	if err != nil {
		return err
	}

	payload := &entity.Payload{
		Type:  entity.PriceAlert,
		Phone: hunt.UserWhatsapp,
		Text:  templates.BuildPriceAlert(hunt, latest.Price, zone, trend),
		Metadata: map[string]interface{}{
			"huntId": hunt.ID,
			"route":  hunt.Route(),
		},
	}

	taskID, err := w.whatsappRepo.SendPayload(ctx, payload)
	if err != nil {
		return err
	}

	if w.metrics != nil {
		w.metrics.AlertsSent.Inc()
	}
	w.logger.Info("Price alert sent",
		"huntId", hunt.ID,
		"route", hunt.Route(),
		"price", latest.Price,
		"zone", zone,
		"taskId", taskID)
	return nil
}

package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"skyhunt-service/internal/domain/entity"
	"skyhunt-service/internal/domain/repository"
	"skyhunt-service/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// RegisterHuntInput carries caller input for a new hunt
type RegisterHuntInput struct {
	Origin       string  `validate:"required,len=3,alpha"`
	Destination  string  `validate:"required,len=3,alpha"`
	TravelDate   string  `validate:"required"`
	FlexDays     int     `validate:"gte=0"`
	TargetPrice  float64 `validate:"required,gt=0"`
	NotifyTarget string  `validate:"required"`
}

// ActiveHunt is a hunt annotated with its human-readable watch mode
type ActiveHunt struct {
	entity.Hunt
	Mode string
}

// HuntRegistry manages the hunt lifecycle: register, list, deactivate.
// Hunts are never mutated in place; a changed route/date/price is a new hunt.
type HuntRegistry struct {
	huntRepo repository.HuntRepository
	validate *validator.Validate
	logger   logger.Logger
}

// NewHuntRegistry creates a new hunt registry
func NewHuntRegistry(huntRepo repository.HuntRepository, logger logger.Logger) *HuntRegistry {
	return &HuntRegistry{
		huntRepo: huntRepo,
		validate: validator.New(),
		logger:   logger,
	}
}

// Register validates the input and creates an active hunt. FlexDays of 0 is
// sniper mode (exact date); greater than 0 watches targetDate +/- FlexDays
// as a single range predicate. Invalid input creates nothing.
func (r *HuntRegistry) Register(ctx context.Context, input RegisterHuntInput) (*entity.Hunt, error) {
	input.Origin = strings.ToUpper(strings.TrimSpace(input.Origin))
	input.Destination = strings.ToUpper(strings.TrimSpace(input.Destination))

	if err := r.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, &ValidationError{Field: verrs[0].Field(), Reason: "failed " + verrs[0].Tag() + " validation"}
		}
		return nil, &ValidationError{Field: "input", Reason: err.Error()}
	}

	travelDate, err := time.Parse("2006-01-02", input.TravelDate)
	if err != nil {
		return nil, &ValidationError{Field: "TravelDate", Reason: "must be a valid YYYY-MM-DD date"}
	}

	hunt := &entity.Hunt{
		Origin:          input.Origin,
		Destination:     input.Destination,
		TravelDate:      travelDate,
		FlexibilityDays: input.FlexDays,
		IsFlexible:      input.FlexDays > 0,
		TargetPrice:     input.TargetPrice,
		UserWhatsapp:    input.NotifyTarget,
		IsActive:        true,
	}

	if err := r.huntRepo.Create(ctx, hunt); err != nil {
		return nil, err
	}

	r.logger.Info("Hunt registered",
		"huntId", hunt.ID,
		"route", hunt.Route(),
		"date", travelDate.Format("2006-01-02"),
		"mode", hunt.ModeLabel(),
		"target", hunt.TargetPrice)

	return hunt, nil
}

// ListActive returns every active hunt annotated with its watch mode
func (r *HuntRegistry) ListActive(ctx context.Context) ([]ActiveHunt, error) {
	hunts, err := r.huntRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	annotated := make([]ActiveHunt, 0, len(hunts))
	for _, hunt := range hunts {
		annotated = append(annotated, ActiveHunt{
			Hunt: hunt,
			Mode: hunt.ModeLabel(),
		})
	}
	return annotated, nil
}

// Deactivate sets is_active to false; repeating the call is a no-op
func (r *HuntRegistry) Deactivate(ctx context.Context, id uint) error {
	return r.huntRepo.Deactivate(ctx, id)
}

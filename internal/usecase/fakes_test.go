package usecase

import (
	"context"
	"time"

	"skyhunt-service/internal/domain/entity"
	"skyhunt-service/internal/domain/repository"
)

type baselineKey struct {
	origin      string
	destination string
	daysLeft    int
}

// fakeBaselineRepo is an in-memory BaselineRepository with insert-or-ignore
// semantics matching the real store
type fakeBaselineRepo struct {
	rows map[baselineKey]entity.BaselineStat
	err  error
}

func newFakeBaselineRepo() *fakeBaselineRepo {
	return &fakeBaselineRepo{rows: make(map[baselineKey]entity.BaselineStat)}
}

func (f *fakeBaselineRepo) GetByKey(ctx context.Context, origin, destination string, daysLeft int) (*entity.BaselineStat, error) {
	if f.err != nil {
		return nil, f.err
	}
	stat, ok := f.rows[baselineKey{origin, destination, daysLeft}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &stat, nil
}

func (f *fakeBaselineRepo) InsertIgnore(ctx context.Context, stats []entity.BaselineStat) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var inserted int64
	for _, s := range stats {
		key := baselineKey{s.Origin, s.Destination, s.DaysLeft}
		if _, exists := f.rows[key]; exists {
			continue
		}
		f.rows[key] = s
		inserted++
	}
	return inserted, nil
}

// fakeFareSource serves a fixed record set
type fakeFareSource struct {
	records []entity.HistoricalFareRecord
	err     error
}

func (f *fakeFareSource) ReadAll(ctx context.Context) ([]entity.HistoricalFareRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

// fakeHistoryRepo is an in-memory PriceHistoryRepository. Observations are
// kept in insertion order, as the real store returns them.
type fakeHistoryRepo struct {
	observations []entity.PriceObservation
	err          error
}

func (f *fakeHistoryRepo) Append(ctx context.Context, obs *entity.PriceObservation) error {
	if f.err != nil {
		return f.err
	}
	f.observations = append(f.observations, *obs)
	return nil
}

func (f *fakeHistoryRepo) ListByRoute(ctx context.Context, origin, destination string, since time.Time) ([]entity.PriceObservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.PriceObservation
	for _, obs := range f.observations {
		if obs.Origin != origin || obs.Destination != destination {
			continue
		}
		if !since.IsZero() && !obs.Timestamp.After(since) {
			continue
		}
		out = append(out, obs)
	}
	return out, nil
}

// fakeHuntRepo is an in-memory HuntRepository
type fakeHuntRepo struct {
	hunts  map[uint]*entity.Hunt
	nextID uint
	err    error
}

func newFakeHuntRepo() *fakeHuntRepo {
	return &fakeHuntRepo{hunts: make(map[uint]*entity.Hunt), nextID: 1}
}

func (f *fakeHuntRepo) Create(ctx context.Context, hunt *entity.Hunt) error {
	if f.err != nil {
		return f.err
	}
	hunt.ID = f.nextID
	f.nextID++
	stored := *hunt
	f.hunts[hunt.ID] = &stored
	return nil
}

func (f *fakeHuntRepo) GetByID(ctx context.Context, id uint) (*entity.Hunt, error) {
	if f.err != nil {
		return nil, f.err
	}
	hunt, ok := f.hunts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *hunt
	return &copied, nil
}

func (f *fakeHuntRepo) ListActive(ctx context.Context) ([]entity.Hunt, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Hunt
	for id := uint(1); id < f.nextID; id++ {
		if hunt, ok := f.hunts[id]; ok && hunt.IsActive {
			out = append(out, *hunt)
		}
	}
	return out, nil
}

func (f *fakeHuntRepo) Deactivate(ctx context.Context, id uint) error {
	if f.err != nil {
		return f.err
	}
	hunt, ok := f.hunts[id]
	if !ok {
		return repository.ErrNotFound
	}
	hunt.IsActive = false
	return nil
}

// fakeWhatsappRepo records sent payloads
type fakeWhatsappRepo struct {
	sent []*entity.Payload
	err  error
}

func (f *fakeWhatsappRepo) SendPayload(ctx context.Context, payload *entity.Payload) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, payload)
	return "task-1", nil
}

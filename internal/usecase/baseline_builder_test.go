package usecase

import (
	"context"
	"errors"
	"testing"

	"skyhunt-service/internal/domain/entity"
	"skyhunt-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fare(src, dst string, daysLeft int, price float64) entity.HistoricalFareRecord {
	return entity.HistoricalFareRecord{
		SourceCity:      src,
		DestinationCity: dst,
		DaysLeft:        daysLeft,
		Price:           price,
	}
}

func TestBaselineBuilderGroupsAndAggregates(t *testing.T) {
	repo := newFakeBaselineRepo()
	source := &fakeFareSource{records: []entity.HistoricalFareRecord{
		fare("Bangalore", "Delhi", 15, 4000),
		fare("Bangalore", "Delhi", 15, 5000),
		fare("Bangalore", "Delhi", 15, 4500.50),
		fare("Bangalore", "Delhi", 10, 7000),
		fare("Mumbai", "Chennai", 15, 3000),
	}}
	builder := NewBaselineBuilder(source, repo, nil, logger.NewLogger())

	report, err := builder.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, report.RecordsRead)
	assert.Equal(t, 0, report.Skipped)
	assert.Equal(t, 3, report.Groups)
	assert.Equal(t, int64(3), report.Inserted)

	stat, err := repo.GetByKey(context.Background(), "BLR", "DEL", 15)
	require.NoError(t, err)
	assert.Equal(t, 4000.0, stat.MinPrice)
	assert.Equal(t, 5000.0, stat.MaxPrice)
	// mean of 4000, 5000, 4500.50 is 4500.166..., rounded to 2 decimals
	assert.Equal(t, 4500.17, stat.AvgPrice)
	assert.LessOrEqual(t, stat.MinPrice, stat.AvgPrice)
	assert.LessOrEqual(t, stat.AvgPrice, stat.MaxPrice)

	single, err := repo.GetByKey(context.Background(), "BOM", "MAA", 15)
	require.NoError(t, err)
	assert.Equal(t, single.MinPrice, single.AvgPrice)
	assert.Equal(t, single.AvgPrice, single.MaxPrice)
}

func TestBaselineBuilderSkipsUnmappedAndMalformed(t *testing.T) {
	repo := newFakeBaselineRepo()
	source := &fakeFareSource{records: []entity.HistoricalFareRecord{
		fare("Bangalore", "Delhi", 15, 4000),
		fare("Atlantis", "Delhi", 15, 4000),   // unmapped origin
		fare("Bangalore", "Gotham", 15, 4000), // unmapped destination
		fare("Bangalore", "Delhi", -1, 4000),  // negative lead time
		fare("Bangalore", "Delhi", 15, 0),     // non-positive price
	}}
	builder := NewBaselineBuilder(source, repo, nil, logger.NewLogger())

	report, err := builder.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, report.Skipped)
	assert.Equal(t, 1, report.Groups)

	// The skipped records contributed to no group
	stat, err := repo.GetByKey(context.Background(), "BLR", "DEL", 15)
	require.NoError(t, err)
	assert.Equal(t, 4000.0, stat.MinPrice)
	assert.Equal(t, 4000.0, stat.AvgPrice)
	assert.Equal(t, 4000.0, stat.MaxPrice)
}

func TestBaselineBuilderIsIdempotent(t *testing.T) {
	repo := newFakeBaselineRepo()
	source := &fakeFareSource{records: []entity.HistoricalFareRecord{
		fare("Bangalore", "Delhi", 15, 4000),
		fare("Bangalore", "Delhi", 15, 5000),
	}}
	builder := NewBaselineBuilder(source, repo, nil, logger.NewLogger())

	first, err := builder.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Inserted)

	before, err := repo.GetByKey(context.Background(), "BLR", "DEL", 15)
	require.NoError(t, err)

	second, err := builder.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), second.Inserted)

	after, err := repo.GetByKey(context.Background(), "BLR", "DEL", 15)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestBaselineBuilderFailsWhenSourceUnreadable(t *testing.T) {
	repo := newFakeBaselineRepo()
	source := &fakeFareSource{err: errors.New("file not found")}
	builder := NewBaselineBuilder(source, repo, nil, logger.NewLogger())

	_, err := builder.Build(context.Background())
	require.Error(t, err)
	assert.Empty(t, repo.rows)
}

func TestBaselineBuilderFailsWhenStoreUnavailable(t *testing.T) {
	repo := newFakeBaselineRepo()
	repo.err = errors.New("connection refused")
	source := &fakeFareSource{records: []entity.HistoricalFareRecord{
		fare("Bangalore", "Delhi", 15, 4000),
	}}
	builder := NewBaselineBuilder(source, repo, nil, logger.NewLogger())

	_, err := builder.Build(context.Background())
	require.Error(t, err)
}

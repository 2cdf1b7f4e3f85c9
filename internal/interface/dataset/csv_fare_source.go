package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"skyhunt-service/internal/domain/entity"
	"skyhunt-service/pkg/logger"
)

// CSVFareSource reads historical fare records from the Kaggle flight fare
// dataset. Columns are located by header name, so extra columns are ignored.
type CSVFareSource struct {
	path   string
	logger logger.Logger
}

// NewCSVFareSource creates a fare source over the given CSV file
func NewCSVFareSource(path string, logger logger.Logger) *CSVFareSource {
	return &CSVFareSource{
		path:   path,
		logger: logger,
	}
}

// ReadAll loads every usable record. An unreadable file or missing column is
// fatal; a malformed row is skipped and counted.
func (s *CSVFareSource) ReadAll(ctx context.Context) ([]entity.HistoricalFareRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("cannot open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read dataset header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, col := range []string{"source_city", "destination_city", "days_left", "price"} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("dataset missing column %q", col)
		}
	}

	var records []entity.HistoricalFareRecord
	skipped := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		if len(row) <= idx["price"] || len(row) <= idx["days_left"] {
			skipped++
			continue
		}

		daysLeft, err := strconv.Atoi(row[idx["days_left"]])
		if err != nil {
			skipped++
			continue
		}
		price, err := strconv.ParseFloat(row[idx["price"]], 64)
		if err != nil {
			skipped++
			continue
		}

		records = append(records, entity.HistoricalFareRecord{
			SourceCity:      row[idx["source_city"]],
			DestinationCity: row[idx["destination_city"]],
			DaysLeft:        daysLeft,
			Price:           price,
		})
	}

	if skipped > 0 {
		s.logger.Warn("Skipped malformed dataset rows", "count", skipped)
	}
	s.logger.Info("Dataset loaded", "path", s.path, "records", len(records))
	return records, nil
}

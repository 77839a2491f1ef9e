package repository

import (
	"encoding/json"
	"fmt"
	"fundreport/internal/domain"
	"os"
)

// RecordRepository is the input collaborator - it decodes the daily
// record feed from disk. The aggregation core never touches files.
type RecordRepository interface {
	Load(path string) ([]domain.DailyRecord, error)
}

func NewRecordRepository() RecordRepository {
	return recordRepositoryHandler{}
}

type recordRepositoryHandler struct{}

// recordFile matches the feed's top-level shape.
type recordFile struct {
	DailyData []domain.DailyRecord `json:"dailyData"`
}

func (h recordRepositoryHandler) Load(path string) ([]domain.DailyRecord, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	file := recordFile{}
	err = json.Unmarshal(f, &file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode input file %s: %w", path, err)
	}

	return file.DailyData, nil
}

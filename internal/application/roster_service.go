package application

import (
	"errors"
	"fmt"

	"github.com/SamuelCarmona83/capitan-coditos/internal/models"
	"github.com/SamuelCarmona83/capitan-coditos/internal/repository"

	"github.com/xuri/excelize/v2"
)

// RosterService tracks which players the guild has searched for. Storage
// problems never break a lookup: they are logged and the command proceeds.
type RosterService interface {
	RecordSearch(riotID string) error
	Autocomplete(prefix string) []string
	Roster(limit int) []models.SummonerRecord
	Stats() models.StoreStats
	ExportReport() ([]byte, error)
}

type RosterServiceImpl struct {
	store  repository.Summoner
	logger Logger
}

func NewRosterServiceImpl(store repository.Summoner, logger Logger) *RosterServiceImpl {
	return &RosterServiceImpl{store: store, logger: logger}
}

// RecordSearch upserts the riot id into the roster. A malformed id is the
// caller's problem and comes back as models.ErrInvalidRiotID; a storage
// failure is logged and swallowed so the lookup itself still runs.
func (s *RosterServiceImpl) RecordSearch(riotID string) error {
	if err := s.store.RecordSearch(riotID); err != nil {
		if errors.Is(err, models.ErrInvalidRiotID) {
			return err
		}
		s.logger.Error("failed to record search", "riot_id", riotID, "error", err)
	}
	return nil
}

// Autocomplete returns previously searched riot ids matching prefix, best
// first. Errors degrade to an empty list so the Discord interaction never
// fails over a suggestion.
func (s *RosterServiceImpl) Autocomplete(prefix string) []string {
	ids, err := s.store.ListForAutocomplete(prefix, autocompleteLimit)
	if err != nil {
		s.logger.Warn("autocomplete lookup failed", "prefix", prefix, "error", err)
		return nil
	}
	return ids
}

func (s *RosterServiceImpl) Roster(limit int) []models.SummonerRecord {
	records, err := s.store.ListAll(limit)
	if err != nil {
		s.logger.Error("failed to list roster", "error", err)
		return nil
	}
	return records
}

func (s *RosterServiceImpl) Stats() models.StoreStats {
	stats, err := s.store.AggregateStats()
	if err != nil {
		s.logger.Error("failed to aggregate stats", "error", err)
		return models.StoreStats{}
	}
	return stats
}

// ExportReport renders the full roster as an xlsx workbook for the admin
// export command.
func (s *RosterServiceImpl) ExportReport() ([]byte, error) {
	records, err := s.store.ListAll(exportRowLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list summoners: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(excelSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"riot_id", "game_name", "tag_line", "search_count", "last_searched", "created_at"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(excelSheetName, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, rec := range records {
		values := []interface{}{
			rec.RiotID,
			rec.GameName,
			rec.TagLine,
			rec.SearchCount,
			rec.LastSearched.Format("2006-01-02 15:04:05"),
			rec.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(excelSheetName, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", row+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

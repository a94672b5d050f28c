package repository

import (
	"database/sql"
	"fmt"

	"github.com/SamuelCarmona83/capitan-coditos/internal/models"
)

type SummonerPostgres struct {
	db *sql.DB
}

func NewSummonerPostgres(db *sql.DB) *SummonerPostgres {
	return &SummonerPostgres{db: db}
}

func (r *SummonerPostgres) RecordSearch(riotID string) error {
	gameName, tagLine, err := models.ParseRiotID(riotID)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	res, err := tx.Exec(`
		UPDATE summoners
		SET search_count = search_count + 1, last_searched = CURRENT_TIMESTAMP
		WHERE riot_id = $1
	`, riotID)
	if err != nil {
		return fmt.Errorf("failed to update summoner: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if affected == 0 {
		_, err = tx.Exec(`
			INSERT INTO summoners (riot_id, game_name, tag_line)
			VALUES ($1, $2, $3)
		`, riotID, gameName, tagLine)
		if err != nil {
			return fmt.Errorf("failed to insert summoner: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *SummonerPostgres) ListForAutocomplete(prefix string, limit int) ([]string, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if prefix != "" {
		rows, err = r.db.Query(`
			SELECT riot_id FROM summoners
			WHERE game_name ILIKE '%' || $1 || '%'
			ORDER BY search_count DESC, last_searched DESC
			LIMIT $2
		`, prefix, limit)
	} else {
		rows, err = r.db.Query(`
			SELECT riot_id FROM summoners
			ORDER BY search_count DESC, last_searched DESC
			LIMIT $1
		`, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query summoners: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *SummonerPostgres) ListAll(limit int) ([]models.SummonerRecord, error) {
	rows, err := r.db.Query(`
		SELECT id, riot_id, game_name, tag_line, search_count, last_searched, created_at
		FROM summoners
		ORDER BY search_count DESC, last_searched DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query summoners: %w", err)
	}
	defer rows.Close()

	var records []models.SummonerRecord
	for rows.Next() {
		var rec models.SummonerRecord
		if err := rows.Scan(&rec.ID, &rec.RiotID, &rec.GameName, &rec.TagLine,
			&rec.SearchCount, &rec.LastSearched, &rec.CreatedAt); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *SummonerPostgres) AggregateStats() (models.StoreStats, error) {
	var stats models.StoreStats
	err := r.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(search_count), 0) FROM summoners
	`).Scan(&stats.TotalSummoners, &stats.TotalSearches)
	if err != nil {
		return models.StoreStats{}, fmt.Errorf("failed to query store stats: %w", err)
	}
	return stats, nil
}

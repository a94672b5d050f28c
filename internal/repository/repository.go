package repository

import (
	"database/sql"

	"github.com/SamuelCarmona83/capitan-coditos/internal/models"
)

// Summoner is the search history store: one row per distinct searched
// player identity, incremented on every lookup, never deleted.
type Summoner interface {
	RecordSearch(riotID string) error
	ListForAutocomplete(prefix string, limit int) ([]string, error)
	ListAll(limit int) ([]models.SummonerRecord, error)
	AggregateStats() (models.StoreStats, error)
}

type Repository struct {
	Summoner

	db *sql.DB
}

func NewRepository(cfg *Config, db *sql.DB) *Repository {
	var store Summoner
	if cfg.Engine() == EnginePostgres {
		store = NewSummonerPostgres(db)
	} else {
		store = NewSummonerSQLite(db)
	}
	return &Repository{
		Summoner: store,
		db:       db,
	}
}

package models

import "errors"

var (
	// ErrInvalidRiotID marks a player identifier without the Name#Tag shape.
	ErrInvalidRiotID = errors.New("riot ID must have the format Name#Tag (e.g. Roga#LAN)")

	// ErrNoMatches marks an account with an empty recent match history.
	ErrNoMatches = errors.New("no recent matches found")
)

// Package migrations embeds the per-engine schema migration sets applied
// at startup by repository.RunMigrations.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

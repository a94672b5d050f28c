package application

const (
	// Remake detection thresholds
	minAnalyzableMinutes = 5
	remakeWindowMinutes  = 8
	remakeDamageFloor    = 500
	remakeDeathsCeiling  = 1

	// Lookup limits
	historyCount      = 5
	autocompleteLimit = 25
	exportRowLimit    = 10000

	minDeathsForKDA = 1

	// Worst-ally scoring
	damageScoreDivisor = 10000.0

	excelSheetName = "Summoners"
)

package domain

// labelAliases maps the most common near-duplicate EVTYPE spellings to a
// canonical label. The list is deliberately short: only spellings that are
// unambiguously the same phenomenon, per the NWS Storm Data documentation.
var labelAliases = map[string]string{
	"TSTM WIND":            "THUNDERSTORM WIND",
	"THUNDERSTORM WINDS":   "THUNDERSTORM WIND",
	"MARINE TSTM WIND":     "MARINE THUNDERSTORM WIND",
	"WILD/FOREST FIRE":     "WILDFIRE",
	"WILD FIRES":           "WILDFIRE",
	"RIP CURRENTS":         "RIP CURRENT",
	"HURRICANE":            "HURRICANE/TYPHOON",
	"URBAN/SML STREAM FLD": "FLOOD",
	"FLASH FLOODING":       "FLASH FLOOD",
	"EXTREME COLD":         "EXTREME COLD/WIND CHILL",
}

// CanonicalLabel maps a normalized event label through the alias table,
// returning the input unchanged when no alias exists. This is an opt-in
// enhancement over the exact-match grouping contract and is never applied
// unless explicitly enabled.
func CanonicalLabel(label string) string {
	if canonical, ok := labelAliases[label]; ok {
		return canonical
	}
	return label
}

// CanonicalizeRecords rewrites event labels through the alias table,
// returning the number of records whose label changed.
func CanonicalizeRecords(records []AnalysisRecord) int {
	changed := 0
	for i := range records {
		if canonical := CanonicalLabel(records[i].EventType); canonical != records[i].EventType {
			records[i].EventType = canonical
			changed++
		}
	}
	return changed
}

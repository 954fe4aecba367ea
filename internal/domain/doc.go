// Package domain models NOAA Storm Events database records and the
// impact-analysis views derived from them.
//
// # Data Source
//
// Records come from the NOAA National Climatic Data Center storm database,
// distributed as a single delimited file covering events from 1950 onward.
// Each row is one recorded weather event with an event-type label (EVTYPE),
// casualty counts (FATALITIES, INJURIES), and property/crop damage figures
// (PROPDMG, CROPDMG) paired with magnitude suffix codes (PROPDMGEXP,
// CROPDMGEXP). Many other columns are present and ignored by this pipeline.
//
// # Damage Magnitude Encoding
//
// Damage figures are stored as a base number plus a one-character suffix code
// selecting the order of magnitude:
//
//	H, h        hundreds        (1e2)
//	K, k        thousands       (1e3)
//	M, m        millions        (1e6)
//	B, b        billions        (1e9)
//	0-8         tens            (1e1)
//	+           as-is           (1)
//	-, ?, empty zero            (0)
//
// So PROPDMG=25 with PROPDMGEXP="K" means $25,000. Codes outside this closed
// alphabet are data-entry defects: decoding them fails and the scaled value
// becomes undefined, which the completeness check downstream must surface.
//
// The "-" and "?" codes decode to a zero multiplier for compatibility with
// the established report, even though NOAA documentation describes "?" as an
// unknown magnitude rather than a zero one. See [DecodeScale].
//
// # Event Labels
//
// EVTYPE is free text with inconsistent casing, spacing, and spelling
// ("TSTM WIND" vs "THUNDERSTORM WIND"). Baseline grouping is exact-match
// after whitespace trimming, a known upstream data-quality limitation.
// [CanonicalLabel] offers an explicit, opt-in alias lookup for the most
// common near-duplicate spellings; it is never applied implicitly.
package domain

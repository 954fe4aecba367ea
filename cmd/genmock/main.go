// Command genmock writes a synthetic storm-event CSV fixture for local runs
// and test refresh. The fixture exercises the full magnitude suffix alphabet
// plus the defects the pipeline must count: duplicate rows, unmapped codes,
// and incomplete rows. Output is deterministic for a given seed.
//
// Usage:
//
//	go run ./cmd/genmock -out data/mock/storm_events.csv -rows 500 -seed 1
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
)

var eventTypes = []string{
	"TORNADO", "FLOOD", "FLASH FLOOD", "HAIL", "LIGHTNING",
	"TSTM WIND", "THUNDERSTORM WIND", "EXCESSIVE HEAT", "ICE STORM",
	"HIGH WIND", "WINTER STORM", "HEAVY SNOW", "WILDFIRE", "DROUGHT",
}

// suffixCodes is the full closed alphabet, weighted nothing: genmock draws
// uniformly so every code shows up even in small fixtures.
var suffixCodes = []string{
	"H", "h", "K", "k", "M", "m", "B", "b",
	"0", "1", "2", "3", "4", "5", "6", "7", "8",
	"+", "-", "?", "",
}

func main() {
	out := flag.String("out", "", "output CSV path")
	rows := flag.Int("rows", 500, "number of data rows to generate")
	seed := flag.Int64("seed", 1, "random seed")
	defects := flag.Bool("defects", true, "include duplicate rows, unmapped codes, and incomplete rows")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*out, *rows, *seed, *defects); err != nil {
		log.Fatal(err)
	}
}

func run(out string, rows int, seed int64, defects bool) error {
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create fixture: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// STATE and BGN_DATE are ignored by the pipeline; they are here so the
	// fixture exercises the "other columns are ignored" contract.
	header := []string{"STATE", "BGN_DATE", "EVTYPE", "FATALITIES", "INJURIES", "PROPDMG", "PROPDMGEXP", "CROPDMG", "CROPDMGEXP"}
	if err := w.Write(header); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(seed))
	written := 0
	var lastRow []string

	for written < rows {
		row := makeRow(rng)

		if defects && written > 0 {
			switch rng.Intn(50) {
			case 0:
				// Exact duplicate of the previous row.
				row = lastRow
			case 1:
				// Unmapped suffix code with a nonzero base.
				row[5] = "12.5"
				row[6] = "G"
			case 2:
				// Incomplete row: missing fatality count.
				row[3] = ""
			case 3:
				// Padded label, collapses to a clean one after trimming.
				row[2] = "  " + row[2] + " "
			}
		}

		if err := w.Write(row); err != nil {
			return err
		}
		lastRow = row
		written++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	log.Printf("wrote %d rows to %s (seed %d)", written, out, seed)
	return nil
}

func makeRow(rng *rand.Rand) []string {
	evtype := eventTypes[rng.Intn(len(eventTypes))]
	return []string{
		"TX",
		"4/26/2024 0:00:00",
		evtype,
		strconv.Itoa(rng.Intn(5)),
		strconv.Itoa(rng.Intn(20)),
		strconv.FormatFloat(float64(rng.Intn(1000))/10, 'f', 1, 64),
		suffixCodes[rng.Intn(len(suffixCodes))],
		strconv.FormatFloat(float64(rng.Intn(500))/10, 'f', 1, 64),
		suffixCodes[rng.Intn(len(suffixCodes))],
	}
}

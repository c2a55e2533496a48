// Command validate performs integrity checks across the yield table CSV
// sources: metadata well-formedness, structural-field parseability of
// every data row, metadata/data cross-references, and age-grid alignment
// between adjacent integer yield classes. Interpolation pairs rows
// positionally and silently truncates at the shorter sequence, so grid
// mismatches are data defects this tool surfaces offline.
//
// Usage:
//
//	go run ./cmd/validate -data-dir data
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/couchcryptid/yield-table-service/internal/domain"
	"github.com/couchcryptid/yield-table-service/internal/source"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	dataDir := flag.String("data-dir", "data", "directory containing the CSV sources")
	metaFile := flag.String("meta-csv", "yield_tables_meta.csv", "metadata CSV file name")
	tablesFile := flag.String("tables-csv", "yield_tables.csv", "table data CSV file name")
	flag.Parse()

	src := source.New(filepath.Join(*dataDir, *metaFile), filepath.Join(*dataDir, *tablesFile))
	if code := run(src); code != 0 {
		os.Exit(code)
	}
}

func run(src source.Source) int {
	fmt.Println("=== Yield Table Data Integrity Validation ===")
	fmt.Println()

	_, metaRecords, err := src.ReadMeta()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load metadata CSV: %v\n", err)
		return 1
	}

	_, dataRecords, err := src.ReadTables()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load table data CSV: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateMetadata(metaRecords),
		validateStructuralFields(dataRecords),
		validateCrossReferences(metaRecords, dataRecords),
		validateAgeGridAlignment(dataRecords),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-46s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d metadata rows, %d data rows\n", len(metaRecords), len(dataRecords))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Phase 1: Metadata ──

func validateMetadata(records []source.Record) *phase {
	p := &phase{name: "Phase 1: Metadata well-formedness"}

	seen := map[int]int{}
	for _, rec := range records {
		meta, err := domain.ParseMetaRecord(rec.Fields, rec.Line)
		if err != nil {
			p.errorf("%v", err)
			continue
		}
		if meta.Title == "" {
			p.errorf("line %d: id %d has an empty title", rec.Line, meta.ID)
		}
		if prev, dup := seen[meta.ID]; dup {
			p.errorf("line %d: duplicate id %d (first seen at line %d)", rec.Line, meta.ID, prev)
		} else {
			seen[meta.ID] = rec.Line
		}
	}
	return p
}

// ── Phase 2: Structural fields ──

func validateStructuralFields(records []source.Record) *phase {
	p := &phase{name: "Phase 2: Data structural fields"}

	for _, rec := range records {
		if _, err := strconv.Atoi(rec.Fields["id"]); err != nil {
			p.errorf("line %d: column \"id\": cannot parse %q", rec.Line, rec.Fields["id"])
		}
		if _, err := domain.ParseClassKey(rec.Fields["yield_class"]); err != nil {
			p.errorf("line %d: column \"yield_class\": cannot parse %q", rec.Line, rec.Fields["yield_class"])
		}
		if _, err := domain.ParseDataRow(rec.Fields, rec.Line); err != nil {
			p.errorf("%v", err)
		}
	}
	return p
}

// ── Phase 3: Cross-references ──

func validateCrossReferences(metaRecords, dataRecords []source.Record) *phase {
	p := &phase{name: "Phase 3: Metadata/data cross-references"}

	metaIDs := map[string]bool{}
	for _, rec := range metaRecords {
		metaIDs[rec.Fields["id"]] = true
	}

	dataIDs := map[string]bool{}
	for _, rec := range dataRecords {
		dataIDs[rec.Fields["id"]] = true
	}

	for id := range metaIDs {
		if !dataIDs[id] {
			p.errorf("metadata id %s has no data rows", id)
		}
	}
	for id := range dataIDs {
		if !metaIDs[id] {
			p.errorf("data rows reference id %s with no metadata entry", id)
		}
	}
	return p
}

// ── Phase 4: Age-grid alignment ──
// Adjacent integer yield classes of one table must sample the same ages
// at the same positions, or interpolation silently drops or mispairs rows.

func validateAgeGridAlignment(records []source.Record) *phase {
	p := &phase{name: "Phase 4: Age-grid alignment between classes"}

	type tableClass struct {
		tableID string
		class   int
	}
	ages := map[tableClass][]int{}

	for _, rec := range records {
		key, err := domain.ParseClassKey(rec.Fields["yield_class"])
		if err != nil || !key.IsInteger() {
			continue // fractional source classes never bracket an interpolation
		}
		age, err := strconv.Atoi(rec.Fields["age"])
		if err != nil {
			continue // reported by phase 2
		}
		tc := tableClass{tableID: rec.Fields["id"], class: int(key.Float())}
		ages[tc] = append(ages[tc], age)
	}

	keys := make([]tableClass, 0, len(ages))
	for tc := range ages {
		keys = append(keys, tc)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].tableID != keys[j].tableID {
			return keys[i].tableID < keys[j].tableID
		}
		return keys[i].class < keys[j].class
	})

	for _, tc := range keys {
		upper := tableClass{tableID: tc.tableID, class: tc.class + 1}
		upperAges, ok := ages[upper]
		if !ok {
			continue
		}
		lowerAges := ages[tc]

		if len(lowerAges) != len(upperAges) {
			p.errorf("table %s: classes %d and %d have %d vs %d rows (interpolation truncates)",
				tc.tableID, tc.class, upper.class, len(lowerAges), len(upperAges))
		}
		n := min(len(lowerAges), len(upperAges))
		for i := 0; i < n; i++ {
			if lowerAges[i] != upperAges[i] {
				p.errorf("table %s: classes %d and %d disagree at position %d: age %d vs %d",
					tc.tableID, tc.class, upper.class, i, lowerAges[i], upperAges[i])
			}
		}
	}
	return p
}

package domain

import (
	"strconv"
	"strings"
)

// ParseMetaRecord builds a YieldTableMeta from one metadata row keyed by
// header name. The id must parse; every other numeric field is optional
// and parses leniently to nil. AvailableColumns is left for the caller to
// fill from the data source.
func ParseMetaRecord(fields map[string]string, line int) (YieldTableMeta, error) {
	id, err := strconv.Atoi(strings.TrimSpace(fields["id"]))
	if err != nil {
		return YieldTableMeta{}, &MalformedRowError{Line: line, Column: "id", Value: fields["id"]}
	}

	return YieldTableMeta{
		ID:             id,
		Title:          fields["title"],
		CountryCodes:   splitCountryCodes(fields["country_codes"]),
		Type:           fields["type"],
		Source:         fields["source"],
		Link:           fields["link"],
		YieldClassStep: ParseOptionalFloat(fields["yield_class_step"]),
		AgeStep:        parseOptionalInt(fields["age_step"]),
		TreeType:       TreeType(fields["tree_type"]),
	}, nil
}

// ParseDataRow builds a YieldClassRow from one data row keyed by header
// name. Age must parse as an integer; the measurement fields parse
// leniently, yielding nil for empty or non-numeric cells.
func ParseDataRow(fields map[string]string, line int) (YieldClassRow, error) {
	age, err := strconv.Atoi(strings.TrimSpace(fields["age"]))
	if err != nil {
		return YieldClassRow{}, &MalformedRowError{Line: line, Column: "age", Value: fields["age"]}
	}

	return YieldClassRow{
		Age:                       age,
		DominantHeight:            ParseOptionalFloat(fields["dominant_height"]),
		AverageHeight:             ParseOptionalFloat(fields["average_height"]),
		DBH:                       ParseOptionalFloat(fields["dbh"]),
		Taper:                     ParseOptionalFloat(fields["taper"]),
		TreesPerHa:                ParseOptionalFloat(fields["trees_per_ha"]),
		BasalArea:                 ParseOptionalFloat(fields["basal_area"]),
		VolumePerHa:               ParseOptionalFloat(fields["volume_per_ha"]),
		AverageAnnualAgeIncrement: ParseOptionalFloat(fields["average_annual_age_increment"]),
		TotalGrowthPerformance:    ParseOptionalFloat(fields["total_growth_performance"]),
		CurrentAnnualIncrement:    ParseOptionalFloat(fields["current_annual_increment"]),
		MeanAnnualIncrement:       ParseOptionalFloat(fields["mean_annual_increment"]),
	}, nil
}

// ParseOptionalFloat parses a measurement cell, returning nil for empty or
// non-numeric values. Absence is not an error.
func ParseOptionalFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseOptionalInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// splitCountryCodes splits the comma-joined country_codes cell. An empty
// cell yields an empty slice, not a slice of one empty string.
func splitCountryCodes(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

package domain

// TreeType tags the species a yield table models, e.g. "spruce" or "pine".
// Values pass through from the metadata source unmodified.
type TreeType string

// YieldTableMeta describes one yield table. Identity is the ID; all other
// fields are descriptive. Optional numeric fields are nil when the source
// cell is empty or unparsable.
type YieldTableMeta struct {
	ID               int      `json:"id"`
	Title            string   `json:"title"`
	CountryCodes     []string `json:"country_codes"`
	Type             string   `json:"type,omitempty"`
	Source           string   `json:"source"`
	Link             string   `json:"link"`
	YieldClassStep   *float64 `json:"yield_class_step"`
	AgeStep          *int     `json:"age_step"`
	TreeType         TreeType `json:"tree_type,omitempty"`
	AvailableColumns []string `json:"available_columns"`
}

// YieldClassRow is one age-indexed observation. Age is required; every
// measurement may be absent (nil), which is distinct from zero.
type YieldClassRow struct {
	Age                       int      `json:"age"`
	DominantHeight            *float64 `json:"dominant_height"`
	AverageHeight             *float64 `json:"average_height"`
	DBH                       *float64 `json:"dbh"`
	Taper                     *float64 `json:"taper"`
	TreesPerHa                *float64 `json:"trees_per_ha"`
	BasalArea                 *float64 `json:"basal_area"`
	VolumePerHa               *float64 `json:"volume_per_ha"`
	AverageAnnualAgeIncrement *float64 `json:"average_annual_age_increment"`
	TotalGrowthPerformance    *float64 `json:"total_growth_performance"`
	CurrentAnnualIncrement    *float64 `json:"current_annual_increment"`
	MeanAnnualIncrement       *float64 `json:"mean_annual_increment"`
}

// YieldClass pairs a yield-class key with its rows, ordered by ascending
// age as laid out in the source file.
type YieldClass struct {
	YieldClass ClassKey        `json:"yield_class"`
	Rows       []YieldClassRow `json:"rows"`
}

// YieldTableData holds every yield class found for one table id, in
// first-seen source order.
type YieldTableData struct {
	YieldClasses []YieldClass `json:"yield_classes"`
}

// YieldTable is the full assembled table: metadata plus all class data.
// Every row in Data belongs to the table identified by the embedded meta.
type YieldTable struct {
	YieldTableMeta
	Data YieldTableData `json:"data"`
}

// MeasurementColumns lists the data-source measurement column names in
// source order. The structural columns id, yield_class, and age precede
// them in the file.
var MeasurementColumns = []string{
	"dominant_height",
	"average_height",
	"dbh",
	"taper",
	"trees_per_ha",
	"basal_area",
	"volume_per_ha",
	"average_annual_age_increment",
	"total_growth_performance",
	"current_annual_increment",
	"mean_annual_increment",
}

// StructuralColumns are the columns every data row must carry.
var StructuralColumns = []string{"id", "yield_class", "age"}

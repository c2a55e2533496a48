// Package domain models forestry yield tables.
//
// # Data Source
//
// Yield tables are growth-model reference datasets: for one tree
// species/site combination they tabulate expected stand development
// (heights, diameter, stocking, volume, increments) over age, one row
// sequence per yield class. The data ships as two semicolon-delimited
// UTF-8 CSV files:
//
//	yield_tables_meta.csv   one row per table: id, title, country codes,
//	                        type, source, link, step sizes, tree type
//	yield_tables.csv        all data rows for all tables: id, yield_class,
//	                        age, then the measurement columns
//
// # Conventions
//
// Yield class keys:
//
//	A yield class is a site-productivity index. Most tables use integer
//	classes ("6", "7"), some use fractional ones ("6.5"). The key is kept
//	as a tagged numeric value ([ClassKey]) so grouping and lookup behave
//	identically for both variants, and so an integer key renders without
//	a decimal point.
//
// Missing values:
//
//	An empty or non-numeric measurement cell means "not recorded", which
//	is distinct from zero. Measurement fields are therefore *float64 and
//	nil when absent. Only interpolation substitutes 0.0 for nil.
//
// Structural fields:
//
//	id, yield_class, and age must always parse. A row where they do not
//	is corrupt source data and fails the whole load with a
//	[MalformedRowError], unlike a blank measurement cell.
//
// # Interpolation
//
// A fractional target class t is computed from the two bracketing
// tabulated integer classes, lower = floor(t) and upper = lower+1, by
// standard two-point linear interpolation per row and per measurement.
// Rows are paired positionally; both classes are sampled on the same age
// grid, so position i of the lower class corresponds to position i of
// the upper class. Pairing truncates at the shorter sequence. Requests
// outside the tabulated range fail rather than extrapolate.
package domain

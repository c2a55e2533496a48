// Package catalog exposes the four yield table lookup operations: list
// and get metadata, load a full table, and interpolate a fractional yield
// class. Every call re-reads the source files in full; the files are
// small and local, and always reflecting current content beats a
// staleness-prone cache.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/couchcryptid/yield-table-service/internal/domain"
	"github.com/couchcryptid/yield-table-service/internal/observability"
	"github.com/couchcryptid/yield-table-service/internal/source"
)

// Catalog performs yield table lookups against a CSV source. It holds no
// mutable state, so one instance serves concurrent callers without
// locking.
type Catalog struct {
	src     source.Source
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Catalog. metrics may be nil for callers that do not
// scrape, such as CLI tools.
func New(src source.Source, logger *slog.Logger, metrics *observability.Metrics) *Catalog {
	return &Catalog{src: src, logger: logger, metrics: metrics}
}

// CheckReadiness reports whether both source files are readable. The data
// files are a fixed deployment dependency, so an unreadable file means
// the service cannot serve.
func (c *Catalog) CheckReadiness(_ context.Context) error {
	for _, path := range []string{c.src.MetaPath, c.src.TablesPath} {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("source file not readable: %w", err)
		}
	}
	return nil
}

// ListMeta reads every metadata row in file order and fills each entry's
// AvailableColumns by scanning the data source for that id.
func (c *Catalog) ListMeta() ([]domain.YieldTableMeta, error) {
	_, records, err := c.src.ReadMeta()
	if err != nil {
		c.observe("list_meta", "error")
		return nil, err
	}

	metas := make([]domain.YieldTableMeta, 0, len(records))
	for _, rec := range records {
		meta, err := domain.ParseMetaRecord(rec.Fields, rec.Line)
		if err != nil {
			c.observe("list_meta", "error")
			return nil, err
		}

		cols, err := c.src.FindAvailableColumns("id", strconv.Itoa(meta.ID), domain.StructuralColumns)
		if err != nil {
			c.observe("list_meta", "error")
			return nil, err
		}
		meta.AvailableColumns = cols

		metas = append(metas, meta)
	}

	c.observe("list_meta", "success")
	return metas, nil
}

// GetMeta returns the first metadata entry matching id, or NotFound.
func (c *Catalog) GetMeta(id int) (domain.YieldTableMeta, error) {
	metas, err := c.ListMeta()
	if err != nil {
		c.observe("get_meta", "error")
		return domain.YieldTableMeta{}, err
	}

	for _, meta := range metas {
		if meta.ID == id {
			c.observe("get_meta", "success")
			return meta, nil
		}
	}

	c.observe("get_meta", "not_found")
	return domain.YieldTableMeta{}, domain.NewTableNotFound(id)
}

// GetTable loads the full yield table for id: metadata plus all data rows
// grouped by yield class. Group keys keep first-seen order; rows within a
// group keep source order.
func (c *Catalog) GetTable(id int) (domain.YieldTable, error) {
	start := time.Now()

	meta, err := c.GetMeta(id)
	if err != nil {
		c.observeTableErr(err)
		return domain.YieldTable{}, err
	}

	_, records, err := c.src.ReadTables()
	if err != nil {
		c.observe("get_table", "error")
		return domain.YieldTable{}, err
	}

	var keys []domain.ClassKey
	groups := make(map[string][]domain.YieldClassRow)

	for _, rec := range records {
		rowID, err := strconv.Atoi(rec.Fields["id"])
		if err != nil {
			c.observe("get_table", "error")
			return domain.YieldTable{}, &domain.MalformedRowError{Line: rec.Line, Column: "id", Value: rec.Fields["id"]}
		}
		if rowID != id {
			continue
		}

		key, err := domain.ParseClassKey(rec.Fields["yield_class"])
		if err != nil {
			c.observe("get_table", "error")
			return domain.YieldTable{}, &domain.MalformedRowError{Line: rec.Line, Column: "yield_class", Value: rec.Fields["yield_class"]}
		}

		row, err := domain.ParseDataRow(rec.Fields, rec.Line)
		if err != nil {
			c.observe("get_table", "error")
			return domain.YieldTable{}, err
		}

		k := key.String()
		if _, seen := groups[k]; !seen {
			keys = append(keys, key)
		}
		groups[k] = append(groups[k], row)

		if c.metrics != nil {
			c.metrics.RowsParsed.Inc()
		}
	}

	classes := make([]domain.YieldClass, 0, len(keys))
	for _, key := range keys {
		classes = append(classes, domain.YieldClass{YieldClass: key, Rows: groups[key.String()]})
	}

	if c.metrics != nil {
		c.metrics.LoadDuration.Observe(time.Since(start).Seconds())
	}
	c.observe("get_table", "success")

	return domain.YieldTable{
		YieldTableMeta: meta,
		Data:           domain.YieldTableData{YieldClasses: classes},
	}, nil
}

// GetInterpolated computes a synthetic yield class at the fractional
// target between the two bracketing tabulated integer classes. Either
// bracketing class missing is NotFound; interpolation never extrapolates
// beyond the tabulated range.
func (c *Catalog) GetInterpolated(id int, target float64) (domain.YieldClass, error) {
	lowerClass := int(math.Floor(target))
	upperClass := lowerClass + 1

	table, err := c.GetTable(id)
	if err != nil {
		c.observeInterpErr(err)
		return domain.YieldClass{}, err
	}

	lower, err := classRows(table, lowerClass)
	if err != nil {
		c.observe("get_interpolated", "not_found")
		return domain.YieldClass{}, err
	}
	upper, err := classRows(table, upperClass)
	if err != nil {
		c.observe("get_interpolated", "not_found")
		return domain.YieldClass{}, err
	}

	c.observe("get_interpolated", "success")
	return domain.YieldClass{
		YieldClass: domain.FloatKey(target),
		Rows:       domain.InterpolateRows(lower, upper, lowerClass, target),
	}, nil
}

// classRows finds the row sequence of one tabulated integer class within
// an already-loaded table.
func classRows(table domain.YieldTable, class int) ([]domain.YieldClassRow, error) {
	want := domain.IntKey(class)
	for _, yc := range table.Data.YieldClasses {
		if yc.YieldClass.Equal(want) {
			return yc.Rows, nil
		}
	}
	return nil, domain.NewClassNotFound(class, table.ID)
}

func (c *Catalog) observe(op, outcome string) {
	if c.metrics == nil {
		return
	}
	c.metrics.Lookups.WithLabelValues(op, outcome).Inc()
}

func (c *Catalog) observeTableErr(err error) {
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		c.observe("get_table", "not_found")
		return
	}
	c.observe("get_table", "error")
}

func (c *Catalog) observeInterpErr(err error) {
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		c.observe("get_interpolated", "not_found")
		return
	}
	c.observe("get_interpolated", "error")
}

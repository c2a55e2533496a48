// Command yieldctl reads yield tables from a local data directory without
// running the HTTP service.
//
// Usage:
//
//	yieldctl list
//	yieldctl show 1 --class 7
//	yieldctl interpolate 1 6.5
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/yield-table-service/internal/catalog"
	"github.com/couchcryptid/yield-table-service/internal/domain"
	"github.com/couchcryptid/yield-table-service/internal/source"
)

var (
	dataDir    string
	metaFile   string
	tablesFile string
	classOnly  string
)

var rootCmd = &cobra.Command{
	Use:   "yieldctl",
	Short: "Inspect forestry yield tables from the command line",
	Long:  `yieldctl lists yield table metadata, prints full tables, and computes interpolated yield classes from the semicolon-delimited CSV sources.`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all yield tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		metas, err := newCatalog().ListMeta()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tCOUNTRIES\tTYPE\tSOURCE\tTREE TYPE")
		for _, m := range metas {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				m.ID, m.Title, strings.Join(m.CountryCodes, ","), m.Type, m.Source, m.TreeType)
		}
		return w.Flush()
	},
}

var showCmd = &cobra.Command{
	Use:   "show <table-id>",
	Short: "Print a full yield table, or one class with --class",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("table id must be an integer, got %q", args[0])
		}

		table, err := newCatalog().GetTable(id)
		if err != nil {
			return err
		}

		fmt.Printf("%s (id %d, source %s)\n", table.Title, table.ID, table.Source)
		for _, yc := range table.Data.YieldClasses {
			if classOnly != "" && yc.YieldClass.String() != classOnly {
				continue
			}
			fmt.Printf("\nYield class %s\n", yc.YieldClass)
			printRows(yc.Rows)
		}
		return nil
	},
}

var interpolateCmd = &cobra.Command{
	Use:   "interpolate <table-id> <yield-class>",
	Short: "Compute an interpolated yield class",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("table id must be an integer, got %q", args[0])
		}
		target, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("yield class must be a number, got %q", args[1])
		}

		yc, err := newCatalog().GetInterpolated(id, target)
		if err != nil {
			return err
		}

		fmt.Printf("Interpolated yield class %s of table %d\n", yc.YieldClass, id)
		printRows(yc.Rows)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "data", "directory containing the CSV sources")
	rootCmd.PersistentFlags().StringVar(&metaFile, "meta-csv", "yield_tables_meta.csv", "metadata CSV file name")
	rootCmd.PersistentFlags().StringVar(&tablesFile, "tables-csv", "yield_tables.csv", "table data CSV file name")
	showCmd.Flags().StringVar(&classOnly, "class", "", "print only this yield class")

	rootCmd.AddCommand(listCmd, showCmd, interpolateCmd)
}

func newCatalog() *catalog.Catalog {
	src := source.New(filepath.Join(dataDir, metaFile), filepath.Join(dataDir, tablesFile))
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return catalog.New(src, logger, nil)
}

func printRows(rows []domain.YieldClassRow) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "AGE\tDOM.H\tAVG.H\tDBH\tTAPER\tTREES/HA\tBASAL\tVOL/HA\tAAAI\tTGP\tCAI\tMAI\t")
	for _, row := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			row.Age,
			cell(row.DominantHeight), cell(row.AverageHeight), cell(row.DBH), cell(row.Taper),
			cell(row.TreesPerHa), cell(row.BasalArea), cell(row.VolumePerHa),
			cell(row.AverageAnnualAgeIncrement), cell(row.TotalGrowthPerformance),
			cell(row.CurrentAnnualIncrement), cell(row.MeanAnnualIncrement))
	}
	w.Flush()
}

func cell(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

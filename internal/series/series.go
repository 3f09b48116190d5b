// Package series loads (date, value) inputs for the CLI.
package series

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	_ "github.com/mattn/go-sqlite3"
)

// Point is one observation of the input series.
type Point struct {
	Date  time.Time
	Value float64
}

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	time.RFC3339,
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("series: unrecognized date %q", s)
}

// ReadCSV loads date,value rows from path. A single header row is
// tolerated; anything else malformed is an error naming the line.
func ReadCSV(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("series: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("series: read %s: %w", path, err)
	}

	var points []Point
	for i, rec := range records {
		if len(rec) < 2 {
			return nil, fmt.Errorf("series: %s line %d: want date,value, got %d fields", path, i+1, len(rec))
		}
		date, err := parseDate(rec[0])
		if err != nil {
			if i == 0 {
				// Header row.
				continue
			}
			return nil, fmt.Errorf("series: %s line %d: %w", path, i+1, err)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("series: %s line %d: bad value %q", path, i+1, rec[1])
		}
		points = append(points, Point{Date: date, Value: value})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("series: %s holds no data rows", path)
	}
	return points, nil
}

// ReadSQLite runs query against the SQLite database at path and scans
// the first two result columns as date text and numeric value.
func ReadSQLite(path, query string) ([]Point, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("series: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("series: open %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("series: query: %w", err)
	}
	defer rows.Close()

	var points []Point
	for rows.Next() {
		var dateStr string
		var value float64
		if err := rows.Scan(&dateStr, &value); err != nil {
			return nil, fmt.Errorf("series: scan: %w", err)
		}
		date, err := parseDate(dateStr)
		if err != nil {
			return nil, err
		}
		points = append(points, Point{Date: date, Value: value})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("series: rows: %w", err)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("series: query returned no rows")
	}
	return points, nil
}

// Split separates points into the parallel slices the grid builder
// takes.
func Split(points []Point) ([]time.Time, []float64) {
	dates := lo.Map(points, func(p Point, _ int) time.Time { return p.Date })
	values := lo.Map(points, func(p Point, _ int) float64 { return p.Value })
	return dates, values
}

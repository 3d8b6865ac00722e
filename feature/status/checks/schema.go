package checks

import (
	"fmt"
	"sort"
	"strings"

	"catalog-engine/core/database"

	"gorm.io/gorm"
)

// SchemaReport strictly types the result of a cache schema check.
type SchemaReport struct {
	Table          string   `json:"table"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
}

// expectedCacheColumns maps the cache table columns to the type
// fragment their MySQL type must contain.
var expectedCacheColumns = map[string]string{
	"cache_key":  "varchar",
	"data":       "text",
	"expires_at": "datetime",
}

const cacheTable = "api_cache"

// CheckCacheSchema verifies that the persistent cache table matches the
// columns the store reads and writes. A soft type check is enough; the
// store never depends on exact widths.
func CheckCacheSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	actualCols, err := database.GetTableColumns(db, cacheTable)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect table %s: %w", cacheTable, err)
	}

	actualMap := make(map[string]database.ColumnInfo)
	for _, col := range actualCols {
		actualMap[col.Field] = col
	}

	report := &SchemaReport{
		Table:          cacheTable,
		Matched:        true,
		MissingColumns: []string{},
		TypeMismatches: []string{},
	}

	for colName, expType := range expectedCacheColumns {
		actCol, exists := actualMap[colName]
		if !exists {
			report.MissingColumns = append(report.MissingColumns, colName)
			report.Matched = false
			continue
		}

		if !strings.Contains(actCol.Type, expType) {
			mismatch := fmt.Sprintf("%s: expected %s, got %s", colName, expType, actCol.Type)
			report.TypeMismatches = append(report.TypeMismatches, mismatch)
			report.Matched = false
		}
	}

	// Map iteration order is random; keep the report stable.
	sort.Strings(report.MissingColumns)
	sort.Strings(report.TypeMismatches)

	return report, nil
}

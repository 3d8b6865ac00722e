package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestGetTableColumns(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	rows.AddRow("Cache_Key", "VARCHAR(64)", "NO", "PRI", nil, "")
	rows.AddRow("data", "longtext", "YES", "", nil, "")
	rows.AddRow("expires_at", "datetime(3)", "YES", "MUL", nil, "")

	mock.ExpectQuery("SHOW COLUMNS FROM `api_cache`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "api_cache")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	// Field names and types come back lowercased.
	assert.Equal(t, "varchar(64)", colMap["cache_key"])
	assert.Equal(t, "longtext", colMap["data"])
	assert.Equal(t, "datetime(3)", colMap["expires_at"])
}

func TestGetTableColumns_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SHOW COLUMNS FROM `missing`").WillReturnError(gorm.ErrInvalidDB)

	columns, err := GetTableColumns(db, "missing")
	assert.Error(t, err)
	assert.Nil(t, columns)
}

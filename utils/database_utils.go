// database_utils should be the canonical place to put shared DB utils.
// It should not include:
// 1. Any util that doesn't manipulate DB
// 2. Any util that contains business logic
package utils

import (
	"fmt"
	"os"
	"testing"

	"github.com/jdalisay/platebook/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testDBPrefix         = "testonlydb_"
	testDBNameCharLength = 8
)

// GetDBConnection get a connection to the database specified by env
func GetDBConnection() (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASS"), os.Getenv("DB_NAME"), os.Getenv("DB_PORT"))
	return getDB(postgres.Open(dsn))
}

func getDB(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

// DatabaseSetupAndMigration migrates every entity table. Must run before the
// store is used against a fresh database.
func DatabaseSetupAndMigration(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Restaurant{},
		&model.Review{},
		&model.Comment{},
		&model.ReviewReaction{},
	)
}

// NewTestDB creates a private in-memory sqlite database for one test case,
// migrated and ready to use. Each test gets a uniquely named database so
// cases never observe each other's state; connections are closed on test
// cleanup.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache memory database keeps all pooled connections on
	// the same store, unlike a bare ":memory:" which is per-connection.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", testDBPrefix+RandomAlphabetString(testDBNameCharLength))
	db, err := getDB(sqlite.Open(dsn))
	if err != nil {
		t.Fatal("fail to open test database: ", err)
	}
	if err := DatabaseSetupAndMigration(db); err != nil {
		t.Fatal("fail to migrate test database: ", err)
	}

	t.Cleanup(func() {
		conn, err := db.DB()
		if err != nil {
			return
		}
		conn.Close()
	})

	return db
}

package mock

import (
	"database/sql"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Db is an in-memory sqlite database shared by every scenario of a suite.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens a private in-memory database and migrates models into it.
func NewDb(models ...any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:")
	if err != nil {
		panic(err)
	}

	// One connection keeps every query on the same in-memory database
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := dbConn.AutoMigrate(models...); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return &Db{
		DbConn: dbConn,
		models: models,
	}
}

// Reset removes every row, soft-deleted ones included.
func (d *Db) Reset() error {
	for _, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return fmt.Errorf("failed to clear %T: %w", model, err)
		}
	}
	return nil
}

// Close releases the underlying connection.
func (d *Db) Close() error {
	sqlDB, err := d.DbConn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Package db contains things related to the user store
package db

import (
	"bitwise74/dating-api/model"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New opens the database selected by database.driver and migrates the
// schema. With the default sqlite driver the file lives in the instance
// directory, which must be writable or the process refuses to start.
func New() (*gorm.DB, error) {
	var dial gorm.Dialector

	switch viper.GetString("database.driver") {
	case "postgres":
		dial = postgres.Open(viper.GetString("database.dsn"))
	default:
		dir := viper.GetString("app.instance_dir")

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create instance directory, %w", err)
		}

		if err := checkWritable(dir); err != nil {
			return nil, fmt.Errorf("instance directory %q is not writable, %w", dir, err)
		}

		dial = sqlite.Open(filepath.Join(dir, "dating.db"))
	}

	db, err := gorm.Open(dial)
	if err != nil {
		return nil, fmt.Errorf("failed to open database, %w", err)
	}

	err = db.AutoMigrate(model.User{})
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}

func checkWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return err
	}

	f.Close()
	return os.Remove(f.Name())
}

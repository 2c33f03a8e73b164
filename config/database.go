package config

import (
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "laundrypos.db"
	}

	// Busy contention between terminals sharing the file is handled by
	// SQLite's own busy-retry, not by application logic.
	db, err := gorm.Open(sqlite.Open(path+"?_busy_timeout=5000&_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		panic("Failed to connect database")
	}

	DB = db
}

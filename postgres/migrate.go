package postgres

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/urbanfix/urbanfix"
)

// Migration is a single, keyed schema change.
// Keys must be unique across the migration list; each runs at most once.
type Migration struct {
	Executor func(*gorm.DB) error
	Key      string
}

func (m Migration) execute(db *gorm.DB) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := m.Executor(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return err
	}

	return nil
}

// MigrateUp runs every migration not yet recorded in the migrations table,
// in list order, recording each as it completes.
func MigrateUp(db *gorm.DB, schema string, migrations []Migration) error {
	if err := ensureSchema(db, schema); err != nil {
		return err
	}

	if err := ensureMigrationsTable(db); err != nil {
		return err
	}

	pending, err := pendingMigrations(db, migrations)
	if err != nil {
		return err
	}

	for _, m := range pending {
		if err := m.execute(db); err != nil {
			return fmt.Errorf("%w: migration %q: %s", urbanfix.ErrUnexpected, m.Key, err)
		}

		err := db.Exec(`INSERT INTO migrations (key, ran_at) VALUES (?, ?)`, m.Key, time.Now().Unix()).Error
		if err != nil {
			return fmt.Errorf("%w: recording migration %q: %s", urbanfix.ErrUnexpected, m.Key, err)
		}
	}

	return nil
}

func ensureSchema(db *gorm.DB, schema string) error {
	err := db.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schema)).Error
	if err != nil {
		return fmt.Errorf("%w: creating schema %q: %s", urbanfix.ErrUnexpected, schema, err)
	}

	return nil
}

func ensureMigrationsTable(db *gorm.DB) error {
	err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id SERIAL PRIMARY KEY,
			ran_at bigint,
			key text,
			CONSTRAINT migrations_key UNIQUE (key)
		)
	`).Error
	if err != nil {
		return fmt.Errorf("%w: creating migrations table: %s", urbanfix.ErrUnexpected, err)
	}

	return nil
}

type migrationKeyCol struct {
	Key string
}

func pendingMigrations(db *gorm.DB, all []Migration) ([]Migration, error) {
	ran := []migrationKeyCol{}
	r := db.Raw("SELECT key FROM migrations;")
	if r.Error != nil {
		return nil, fmt.Errorf("%w: fetching ran migrations: %s", urbanfix.ErrUnexpected, r.Error)
	}
	r.Scan(&ran)

	ranKeys := make(map[string]bool, len(ran))
	for _, m := range ran {
		ranKeys[m.Key] = true
	}

	pending := []Migration{}
	for _, m := range all {
		if !ranKeys[m.Key] {
			pending = append(pending, m)
		}
	}

	return pending, nil
}

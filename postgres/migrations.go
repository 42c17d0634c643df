package postgres

import "gorm.io/gorm"

// Migrations is the full, ordered schema for an urbanfix database.
func Migrations() []Migration {
	return []Migration{
		{
			Key: "2023-01-10-create-users",
			Executor: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE users (
						id SERIAL PRIMARY KEY,
						created_at timestamptz NOT NULL,
						updated_at timestamptz NOT NULL,
						deleted_at timestamptz,
						username text NOT NULL,
						email text NOT NULL,
						password bytea NOT NULL,
						role text NOT NULL DEFAULT 'user',
						validated boolean NOT NULL DEFAULT false,
						CONSTRAINT users_username UNIQUE (username),
						CONSTRAINT users_email UNIQUE (email)
					)
				`).Error
			},
		},
		{
			Key: "2023-01-10-create-reports",
			Executor: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE reports (
						id SERIAL PRIMARY KEY,
						created_at timestamptz NOT NULL,
						updated_at timestamptz NOT NULL,
						deleted_at timestamptz,
						category text NOT NULL,
						description text NOT NULL,
						severity int NOT NULL DEFAULT 1,
						lat double precision NOT NULL,
						lng double precision NOT NULL,
						locality text NOT NULL DEFAULT 'Unknown',
						county text NOT NULL DEFAULT 'Unknown',
						status text NOT NULL DEFAULT 'submitted',
						username text NOT NULL
					)
				`).Error
			},
		},
		{
			Key: "2023-01-17-create-recycle-points",
			Executor: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE recycle_points (
						id SERIAL PRIMARY KEY,
						created_at timestamptz NOT NULL,
						updated_at timestamptz NOT NULL,
						deleted_at timestamptz,
						name text NOT NULL,
						address text NOT NULL,
						description text NOT NULL DEFAULT '',
						lat double precision NOT NULL,
						lng double precision NOT NULL,
						opening_hour text NOT NULL DEFAULT '',
						closing_hour text NOT NULL DEFAULT '',
						phone text NOT NULL DEFAULT '',
						contact_mail text NOT NULL DEFAULT ''
					)
				`).Error
			},
		},
		{
			Key: "2023-02-02-index-reports-county",
			Executor: func(db *gorm.DB) error {
				return db.Exec(`CREATE INDEX reports_county ON reports (county)`).Error
			},
		},
	}
}

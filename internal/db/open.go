/*
 * Copyright (c) 2023. Anton Starikov -- All Rights Reserved
 *
 * This file is part of HPTHERMO project.
 *
 * HPTHERMO is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as the Free Software Foundation,
 * either version 3 of the License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package db

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS controller_values (
	name  TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sensor_values (
	sensor_name TEXT PRIMARY KEY,
	value       REAL NOT NULL,
	updated_at  TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS performance (
	id                       INTEGER PRIMARY KEY AUTOINCREMENT,
	recorded_at              TIMESTAMP NOT NULL,
	refrigerant              TEXT NOT NULL,
	evaporation_temperature  INTEGER NOT NULL,
	condensation_temperature INTEGER NOT NULL,
	mass_rate                INTEGER NOT NULL,
	evaporation_power        INTEGER NOT NULL,
	condensation_power       INTEGER NOT NULL,
	compressor_power         INTEGER NOT NULL,
	cop                      INTEGER NOT NULL,
	discharge_target         INTEGER NOT NULL,
	condenser_ua             INTEGER,
	evaporator_ua            INTEGER
);

CREATE INDEX IF NOT EXISTS idx_performance_recorded_at ON performance(recorded_at);
`

// Store persists controller state and the computed performance history.
type Store struct {
	db *sqlx.DB
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve home directory")
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func OpenDatabase(dbFile string) (*Store, error) {
	path, err := expandHome(dbFile)
	if err != nil {
		return nil, err
	}

	sqlDB, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, errors.Wrapf(err, "failed to ping %s", path)
	}

	// sqlite serialises writers anyway
	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.Exec(schema); err != nil {
		sqlDB.Close()
		return nil, errors.Wrap(err, "failed to create schema")
	}

	return &Store{db: sqlDB}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

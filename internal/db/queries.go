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
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/antst/hpthermo/internal/thermo"
)

type UpsertControllerValueParams struct {
	Name  string `db:"name"`
	Value string `db:"value"`
}

type UpsertSensorValueParams struct {
	SensorName string    `db:"sensor_name"`
	Value      float64   `db:"value"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// PerformanceRecord is one row of the performance history.
type PerformanceRecord struct {
	ID                      int64     `db:"id"`
	RecordedAt              time.Time `db:"recorded_at"`
	Refrigerant             string    `db:"refrigerant"`
	EvaporationTemperature  int64     `db:"evaporation_temperature"`
	CondensationTemperature int64     `db:"condensation_temperature"`
	MassRate                int64     `db:"mass_rate"`
	EvaporationPower        int64     `db:"evaporation_power"`
	CondensationPower       int64     `db:"condensation_power"`
	CompressorPower         int64     `db:"compressor_power"`
	COP                     int64     `db:"cop"`
	DischargeTarget         int64     `db:"discharge_target"`
	CondenserUA             *int64    `db:"condenser_ua"`
	EvaporatorUA            *int64    `db:"evaporator_ua"`
}

func (s *Store) UpsertControllerValue(ctx context.Context, arg UpsertControllerValueParams) error {
	_, err := s.db.NamedExecContext(ctx,
		`INSERT INTO controller_values (name, value) VALUES (:name, :value)
		ON CONFLICT (name) DO UPDATE SET value = excluded.value`,
		arg,
	)
	return errors.Wrapf(err, "upsert controller value %s", arg.Name)
}

func (s *Store) GetControllerValue(ctx context.Context, name string) (string, error) {
	var value string
	err := s.db.GetContext(ctx, &value, `SELECT value FROM controller_values WHERE name = ?`, name)
	return value, err
}

func (s *Store) UpsertSensorValue(ctx context.Context, arg UpsertSensorValueParams) error {
	if arg.UpdatedAt.IsZero() {
		arg.UpdatedAt = time.Now()
	}
	_, err := s.db.NamedExecContext(ctx,
		`INSERT INTO sensor_values (sensor_name, value, updated_at) VALUES (:sensor_name, :value, :updated_at)
		ON CONFLICT (sensor_name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		arg,
	)
	return errors.Wrapf(err, "upsert sensor value %s", arg.SensorName)
}

func (s *Store) GetSensorValue(ctx context.Context, sensorName string) (float64, error) {
	var value float64
	err := s.db.GetContext(ctx, &value, `SELECT value FROM sensor_values WHERE sensor_name = ?`, sensorName)
	return value, err
}

func optional[T ~uint16](v *T) *int64 {
	if v == nil {
		return nil
	}
	i := int64(*v)
	return &i
}

func (s *Store) InsertPerformance(ctx context.Context, at time.Time, p *thermo.Performance) error {
	rec := PerformanceRecord{
		RecordedAt:              at,
		Refrigerant:             p.Refrigerant,
		EvaporationTemperature:  int64(p.EvaporationTemp),
		CondensationTemperature: int64(p.CondensationTemp),
		MassRate:                int64(p.MassRate),
		EvaporationPower:        int64(p.EvaporationPower),
		CondensationPower:       int64(p.CondensationPower),
		CompressorPower:         int64(p.CompressorPower),
		COP:                     int64(p.COP),
		DischargeTarget:         int64(p.DischargeTarget),
		CondenserUA:             optional(p.CondenserUA),
		EvaporatorUA:            optional(p.EvaporatorUA),
	}
	_, err := s.db.NamedExecContext(ctx,
		`INSERT INTO performance (
			recorded_at, refrigerant, evaporation_temperature, condensation_temperature, mass_rate,
			evaporation_power, condensation_power, compressor_power, cop, discharge_target,
			condenser_ua, evaporator_ua
		) VALUES (
			:recorded_at, :refrigerant, :evaporation_temperature, :condensation_temperature, :mass_rate,
			:evaporation_power, :condensation_power, :compressor_power, :cop, :discharge_target,
			:condenser_ua, :evaporator_ua
		)`,
		rec,
	)
	return errors.Wrap(err, "insert performance")
}

// RecentPerformance returns up to limit records, newest first.
func (s *Store) RecentPerformance(ctx context.Context, limit int) ([]PerformanceRecord, error) {
	var recs []PerformanceRecord
	err := s.db.SelectContext(ctx, &recs,
		`SELECT * FROM performance ORDER BY recorded_at DESC, id DESC LIMIT ?`, limit,
	)
	return recs, errors.Wrap(err, "select performance")
}

// PrunePerformance deletes history older than before.
func (s *Store) PrunePerformance(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM performance WHERE recorded_at < ?`, before)
	if err != nil {
		return 0, errors.Wrap(err, "prune performance")
	}
	return res.RowsAffected()
}

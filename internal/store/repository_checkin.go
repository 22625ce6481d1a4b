// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wellness/internal/logger"
	"github.com/MKhiriev/go-wellness/models"
)

// checkInRepository is the database/sql implementation of [CheckInRepository].
type checkInRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCheckInRepository constructs a [CheckInRepository] backed by db.
func NewCheckInRepository(db *DB, logger *logger.Logger) CheckInRepository {
	logger.Debug().Msg("creating check-in repository")
	return &checkInRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCheckIn inserts checkIn in a single statement and returns the
// stored row. Input validation is the caller's job.
func (c *checkInRepository) CreateCheckIn(ctx context.Context, checkIn models.CheckIn) (models.CheckIn, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.db.queries.createCheckIn(checkIn)
	if err != nil {
		log.Err(err).Str("func", "*checkInRepository.CreateCheckIn").Msg("error building query")
		return models.CheckIn{}, err
	}

	var created models.CheckIn
	if err = scanCheckIn(c.db.QueryRowContext(ctx, query, args...), &created); err != nil {
		log.Err(err).
			Str("func", "*checkInRepository.CreateCheckIn").
			Int64("user_id", checkIn.UserID).
			Msg("error inserting check-in")

		if c.db.errorClassificator.Classify(err) == ForeignKeyViolation {
			return models.CheckIn{}, ErrUnknownCheckInOwner
		}
		return models.CheckIn{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// ListCheckIns returns all check-ins of userID ordered by date, newest
// first; ties are broken by the higher ID.
func (c *checkInRepository) ListCheckIns(ctx context.Context, userID int64) ([]models.CheckIn, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.db.queries.listCheckIns(userID, 0)
	if err != nil {
		log.Err(err).Str("func", "*checkInRepository.ListCheckIns").Msg("error building query")
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*checkInRepository.ListCheckIns").
			Int64("user_id", userID).
			Msg("failed to execute query for listing check-ins")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	checkIns := make([]models.CheckIn, 0)
	for rows.Next() {
		var item models.CheckIn
		if err = rows.Scan(&item.ID, &item.UserID, &item.Mood, &item.Journal, scanTime(&item.Date)); err != nil {
			log.Err(err).
				Str("func", "*checkInRepository.ListCheckIns").
				Int64("user_id", userID).
				Msg("failed to scan check-in row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		checkIns = append(checkIns, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*checkInRepository.ListCheckIns").
			Int64("user_id", userID).
			Msg("error iterating check-in rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return checkIns, nil
}

// GetCheckIn returns the check-in checkInID if it belongs to userID and
// ErrCheckInNotFound otherwise.
func (c *checkInRepository) GetCheckIn(ctx context.Context, userID, checkInID int64) (models.CheckIn, error) {
	query, args, err := c.db.queries.getCheckIn(userID, checkInID)
	if err != nil {
		return models.CheckIn{}, err
	}

	return c.findCheckIn(ctx, "*checkInRepository.GetCheckIn", query, args)
}

// LatestCheckIn returns the most recent check-in of userID or
// ErrCheckInNotFound when the user has none.
func (c *checkInRepository) LatestCheckIn(ctx context.Context, userID int64) (models.CheckIn, error) {
	query, args, err := c.db.queries.listCheckIns(userID, 1)
	if err != nil {
		return models.CheckIn{}, err
	}

	return c.findCheckIn(ctx, "*checkInRepository.LatestCheckIn", query, args)
}

// DeleteCheckIn removes checkInID with a single ownership-scoped statement.
// Zero affected rows means the check-in is missing or not owned by userID.
func (c *checkInRepository) DeleteCheckIn(ctx context.Context, userID, checkInID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := c.db.queries.deleteCheckIn(userID, checkInID)
	if err != nil {
		log.Err(err).Str("func", "*checkInRepository.DeleteCheckIn").Msg("error building query")
		return err
	}

	result, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*checkInRepository.DeleteCheckIn").
			Int64("user_id", userID).
			Int64("check_in_id", checkInID).
			Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCheckInNotFound
	}

	return nil
}

func (c *checkInRepository) findCheckIn(ctx context.Context, funcName, query string, args []any) (models.CheckIn, error) {
	log := logger.FromContext(ctx)

	var checkIn models.CheckIn
	if err := scanCheckIn(c.db.QueryRowContext(ctx, query, args...), &checkIn); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CheckIn{}, ErrCheckInNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error querying check-in")
		return models.CheckIn{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return checkIn, nil
}

func scanCheckIn(row *sql.Row, checkIn *models.CheckIn) error {
	return row.Scan(&checkIn.ID, &checkIn.UserID, &checkIn.Mood, &checkIn.Journal, scanTime(&checkIn.Date))
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tvpss-crew-backend/internal/domain"
	"tvpss-crew-backend/internal/logger"
	"tvpss-crew-backend/internal/repository"
)

const (
	lockCrewByIDQuery     = `SELECT crew_id FROM crew WHERE crew_id = $1 FOR UPDATE`
	updateCrewStatusQuery = `UPDATE crew SET application_status = $1 WHERE crew_id = $2`
)

type crewRepository struct {
	db *sql.DB
}

func NewCrewRepository(db *sql.DB) repository.CrewRepository {
	return &crewRepository{db: db}
}

func (r *crewRepository) FindByApplicationStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.Crew, error) {
	logger.EnterMethod(ctx, "crewRepository.FindByApplicationStatus", "status", status)

	query := selectCrew().RequireUser().Where(fieldApplicationStatus).SQL()
	var crews []domain.Crew
	err := withTx(ctx, r.db, readOnly, func(tx *sql.Tx) error {
		var err error
		crews, err = listCrew(ctx, tx, query, string(status))
		return err
	})
	if err != nil {
		exitWithError(ctx, "crewRepository.FindByApplicationStatus", err, "status", status)
		return nil, err
	}

	logger.ExitMethod(ctx, "crewRepository.FindByApplicationStatus", "status", status, "count", len(crews))
	return crews, nil
}

func (r *crewRepository) FindCrewByID(ctx context.Context, crewID int32) (*domain.Crew, error) {
	logger.EnterMethod(ctx, "crewRepository.FindCrewByID", "crewID", crewID)

	query := selectCrew().Where(fieldCrewID).SQL()
	var crews []domain.Crew
	err := withTx(ctx, r.db, readOnly, func(tx *sql.Tx) error {
		var err error
		crews, err = listCrew(ctx, tx, query, crewID)
		return err
	})
	if err == nil {
		switch {
		case len(crews) == 0:
			err = fmt.Errorf("crew %d: %w", crewID, domain.ErrCrewNotFound)
		case len(crews) > 1:
			err = fmt.Errorf("crew %d: %w", crewID, domain.ErrCrewNotUnique)
		}
	}
	if err != nil {
		exitWithError(ctx, "crewRepository.FindCrewByID", err, "crewID", crewID)
		return nil, err
	}

	logger.ExitMethod(ctx, "crewRepository.FindCrewByID", "crewID", crewID)
	return &crews[0], nil
}

func (r *crewRepository) FindAllApplicants(ctx context.Context) ([]domain.Crew, error) {
	logger.EnterMethod(ctx, "crewRepository.FindAllApplicants")

	query := selectCrew().SQL()
	var crews []domain.Crew
	err := withTx(ctx, r.db, readOnly, func(tx *sql.Tx) error {
		var err error
		crews, err = listCrew(ctx, tx, query)
		return err
	})
	if err != nil {
		exitWithError(ctx, "crewRepository.FindAllApplicants", err)
		return nil, err
	}

	logger.ExitMethod(ctx, "crewRepository.FindAllApplicants", "count", len(crews))
	return crews, nil
}

func (r *crewRepository) FindCrewByUserID(ctx context.Context, userID int32) (*domain.Crew, bool, error) {
	logger.EnterMethod(ctx, "crewRepository.FindCrewByUserID", "userID", userID)

	query := selectCrew().RequireUser().Where(fieldUserID).SQL()
	var crews []domain.Crew
	err := withTx(ctx, r.db, readOnly, func(tx *sql.Tx) error {
		var err error
		crews, err = listCrew(ctx, tx, query, userID)
		return err
	})
	if err == nil && len(crews) > 1 {
		err = fmt.Errorf("crew for user %d: %w", userID, domain.ErrCrewNotUnique)
	}
	if err != nil {
		exitWithError(ctx, "crewRepository.FindCrewByUserID", err, "userID", userID)
		return nil, false, err
	}

	if len(crews) == 0 {
		logger.ExitMethod(ctx, "crewRepository.FindCrewByUserID", "userID", userID, "found", false)
		return nil, false, nil
	}

	logger.ExitMethod(ctx, "crewRepository.FindCrewByUserID", "userID", userID, "found", true)
	return &crews[0], true, nil
}

func (r *crewRepository) UpdateApplicationStatus(ctx context.Context, crewID int32, status domain.ApplicationStatus) error {
	logger.EnterMethod(ctx, "crewRepository.UpdateApplicationStatus", "crewID", crewID, "status", status)

	err := withTx(ctx, r.db, nil, func(tx *sql.Tx) error {
		logger.DatabaseCall(ctx, "SELECT FOR UPDATE", "crew", "crewID", crewID)
		var id int32
		if err := tx.QueryRowContext(ctx, lockCrewByIDQuery, crewID).Scan(&id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("crew %d: %w", crewID, domain.ErrCrewNotFound)
			}
			logger.DatabaseResult(ctx, "SELECT FOR UPDATE", 0, err, "crewID", crewID)
			return err
		}

		logger.DatabaseCall(ctx, "UPDATE", "crew", "crewID", crewID)
		result, err := tx.ExecContext(ctx, updateCrewStatusQuery, string(status), id)
		if err != nil {
			logger.DatabaseResult(ctx, "UPDATE", 0, err, "crewID", crewID)
			return err
		}
		rows, _ := result.RowsAffected()
		logger.DatabaseResult(ctx, "UPDATE", rows, nil, "crewID", crewID)
		return nil
	})
	if err != nil {
		exitWithError(ctx, "crewRepository.UpdateApplicationStatus", err, "crewID", crewID)
		return err
	}

	logger.ExitMethod(ctx, "crewRepository.UpdateApplicationStatus", "crewID", crewID, "status", status)
	return nil
}

// exitWithError keeps a missing crew at debug level; callers answer it with 404.
func exitWithError(ctx context.Context, method string, err error, args ...any) {
	if errors.Is(err, domain.ErrCrewNotFound) {
		logger.ExitMethod(ctx, method, append(args, "result", "not_found")...)
		return
	}
	logger.ExitMethodWithError(ctx, method, err, args...)
}

func listCrew(ctx context.Context, tx *sql.Tx, query string, args ...any) ([]domain.Crew, error) {
	logger.DatabaseCall(ctx, "SELECT", "crew", "args", args)

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		logger.DatabaseResult(ctx, "SELECT", 0, err)
		return nil, err
	}
	defer rows.Close()

	crews := make([]domain.Crew, 0)
	for rows.Next() {
		c, err := scanCrew(rows)
		if err != nil {
			logger.DatabaseResult(ctx, "SELECT", int64(len(crews)), err)
			return nil, err
		}
		crews = append(crews, c)
	}
	if err := rows.Err(); err != nil {
		logger.DatabaseResult(ctx, "SELECT", int64(len(crews)), err)
		return nil, err
	}

	logger.DatabaseResult(ctx, "SELECT", int64(len(crews)), nil)
	return crews, nil
}

// scanCrew reads one projected row. User is nil when the crew has no
// user_id or the referenced user row does not exist.
func scanCrew(rows *sql.Rows) (domain.Crew, error) {
	var (
		c      domain.Crew
		status string
		userID sql.NullInt32
		name   sql.NullString
		email  sql.NullString
	)
	if err := rows.Scan(&c.CrewID, &status, &userID, &name, &email); err != nil {
		return domain.Crew{}, err
	}
	c.ApplicationStatus = domain.ApplicationStatus(status)
	if userID.Valid {
		c.User = &domain.User{UserID: userID.Int32, Name: name.String, Email: email.String}
	}
	return c, nil
}

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-wellness/internal/config"
	"github.com/MKhiriev/go-wellness/models"
)

var (
	userColumns    = []string{"id", "email", "password_hash", "created_at", "is_active"}
	checkInColumns = []string{"id", "user_id", "mood", "journal", "created_at"}
)

// queryBuilder renders the statements of the repositories with the
// placeholder format of one SQL dialect ($1 for PostgreSQL, ? for SQLite).
type queryBuilder struct {
	sb sq.StatementBuilderType
}

func newQueryBuilder(driver string) queryBuilder {
	var placeholder sq.PlaceholderFormat = sq.Question
	if driver == config.DriverPostgres {
		placeholder = sq.Dollar
	}

	return queryBuilder{sb: sq.StatementBuilder.PlaceholderFormat(placeholder)}
}

func (q queryBuilder) createUser(user models.User) (string, []any, error) {
	return wrapBuildErr(q.sb.
		Insert(models.User{}.TableName()).
		Columns("email", "password_hash", "created_at", "is_active").
		Values(user.Email, user.PasswordHash, user.CreatedAt, user.IsActive).
		Suffix(returning(userColumns)).
		ToSql())
}

func (q queryBuilder) findUserByEmail(email string) (string, []any, error) {
	return wrapBuildErr(q.sb.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql())
}

func (q queryBuilder) findUserByID(userID int64) (string, []any, error) {
	return wrapBuildErr(q.sb.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": userID}).
		ToSql())
}

func (q queryBuilder) createCheckIn(checkIn models.CheckIn) (string, []any, error) {
	return wrapBuildErr(q.sb.
		Insert(models.CheckIn{}.TableName()).
		Columns("user_id", "mood", "journal", "created_at").
		Values(checkIn.UserID, checkIn.Mood, checkIn.Journal, checkIn.Date).
		Suffix(returning(checkInColumns)).
		ToSql())
}

// listCheckIns selects the check-ins of userID, most recent first. A
// positive limit keeps only that many rows.
func (q queryBuilder) listCheckIns(userID int64, limit uint64) (string, []any, error) {
	query := q.sb.
		Select(checkInColumns...).
		From(models.CheckIn{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	return wrapBuildErr(query.ToSql())
}

func (q queryBuilder) getCheckIn(userID, checkInID int64) (string, []any, error) {
	return wrapBuildErr(q.sb.
		Select(checkInColumns...).
		From(models.CheckIn{}.TableName()).
		Where(sq.Eq{"id": checkInID, "user_id": userID}).
		ToSql())
}

func (q queryBuilder) deleteCheckIn(userID, checkInID int64) (string, []any, error) {
	return wrapBuildErr(q.sb.
		Delete(models.CheckIn{}.TableName()).
		Where(sq.Eq{"id": checkInID, "user_id": userID}).
		ToSql())
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func wrapBuildErr(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

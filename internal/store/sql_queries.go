package store

import (
	"fmt"

	"github.com/MKhiriev/marmita-api/models"
	sq "github.com/Masterminds/squirrel"
)

// userColumns is the column order shared by every SELECT on users; scanUser
// expects exactly this order.
var userColumns = []string{"id", "name", "email", "password_hash", "role", "company_id", "created_at"}

func (db *DB) insertUserQuery(user models.User) (string, []any, error) {
	columns := []string{"name", "email", "password_hash"}
	values := []any{user.Name, user.Email, user.PasswordHash}

	if user.Role != "" {
		columns = append(columns, "role")
		values = append(values, user.Role)
	}
	if user.CompanyID != nil {
		columns = append(columns, "company_id")
		values = append(values, *user.CompanyID)
	}

	query, args, err := db.builder.
		Insert(user.TableName()).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func (db *DB) selectUserQuery(where sq.Eq) (string, []any, error) {
	query, args, err := db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

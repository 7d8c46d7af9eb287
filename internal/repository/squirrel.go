package repository

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mtlprog/workforce/internal/domain"
)

// psql is the shared Squirrel statement builder configured for PostgreSQL dollar placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// unavailable marks a database failure as a store outage.
func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, op, err)
}

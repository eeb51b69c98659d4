// Package sqlite persists the planner's state in a single SQLite file,
// fitting the single-user deployment model.
package sqlite

import (
	"database/sql"

	"github.com/cockroachdb/errors"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
)

// DictionaryRepository stores the single serialized player dictionary. The
// table holds at most one row, pinned to id 1.
type DictionaryRepository struct {
	db *sqlx.DB
}

func NewDictionaryRepository(db *sqlx.DB) *DictionaryRepository {
	return &DictionaryRepository{db: db}
}

func (r *DictionaryRepository) Load(ctx context.Context) (string, bool, error) {
	const query = `SELECT * FROM team_dictionary WHERE id = 1`

	var row dictionaryTableModel
	if err := r.db.GetContext(ctx, &row, query); err != nil {
		if isNotFound(err) {
			return "", false, nil
		}
		return "", false, crerr.Wrap(err, "get team dictionary")
	}
	return row.Serialized, true, nil
}

func (r *DictionaryRepository) Save(ctx context.Context, serialized string) error {
	const query = `
		INSERT INTO team_dictionary (id, serialized)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET
			serialized = EXCLUDED.serialized,
			updated_at = NOW()`

	if _, err := r.db.ExecContext(ctx, query, serialized); err != nil {
		return crerr.Wrap(err, "save team dictionary")
	}
	return nil
}

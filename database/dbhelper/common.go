package dbhelper

import (
	"database/sql"
)

// requireRow turns an update/delete that matched nothing into sql.ErrNoRows
// so handlers can answer 404.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

package appointment

import (
	"context"
	"database/sql"

	"github.com/fadeline/booking-service/pkg/dbmetrics"
)

// Reuse the dbmetrics interfaces so the repository runs against *sql.DB,
// the instrumented wrapper, or an open transaction alike.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions; satisfied by *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}

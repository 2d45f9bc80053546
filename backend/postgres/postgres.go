// Package postgres provides wrap codecs for PostgreSQL through github.com/lib/pq.
package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/wrap"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	_ "github.com/lib/pq"
)

// Backend identifies PostgreSQL to adapters and outputs.
type Backend struct{}

func (Backend) Name() string       { return "postgres" }
func (Backend) DriverName() string { return "postgres" }

// Open opens dsn with lib/pq and checks the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	const op errors.Op = "postgres.Open"
	db, err := sql.Open(Backend{}.DriverName(), dsn)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.New(op).Err(err)
	}
	return db, nil
}

type base struct{}

func (base) Backend() wrap.Backend { return Backend{} }

var (
	_ wrap.Codec[[]byte]              = Bytea{}
	_ wrap.Codec[int32]               = Int4{}
	_ wrap.Codec[int64]               = Int8{}
	_ wrap.Codec[float64]             = Float8{}
	_ wrap.Codec[bool]                = Bool{}
	_ wrap.Codec[string]              = Text{}
	_ wrap.Codec[time.Time]           = Timestamptz{}
	_ wrap.Codec[boilertypes.Decimal] = Numeric{}
	_ wrap.Codec[boilertypes.JSON]    = JSONB{}
	_ wrap.Codec[[]string]            = TextArray{}
)

// Package sqlite provides wrap codecs for the modernc.org/sqlite driver.
//
// SQLite has dynamic typing, so every codec accepts the handful of storage classes the
// driver can hand back for its column and rejects the rest.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/wrap"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	_ "modernc.org/sqlite"
)

// Backend identifies SQLite to adapters and outputs.
type Backend struct{}

func (Backend) Name() string       { return "sqlite" }
func (Backend) DriverName() string { return "sqlite" }

// Open opens dsn with the modernc driver and checks the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	const op errors.Op = "sqlite.Open"
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

// base is embedded by every codec in this package.
type base struct{}

func (base) Backend() wrap.Backend { return Backend{} }

var (
	_ wrap.Codec[[]byte]  = Blob{}
	_ wrap.Codec[int32]   = Int4{}
	_ wrap.Codec[int64]   = Integer{}
	_ wrap.Codec[float64] = Real{}
	_ wrap.Codec[bool]    = Bool{}
	_ wrap.Codec[string]  = Text{}

	_ wrap.Codec[time.Time]        = Timestamp{}
	_ wrap.Codec[boilertypes.JSON] = JSON{}
)

// Package port declares the interfaces use cases and adapters share.
package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the layout store connection.
type DatabaseProvider interface {
	// DB may open the store on first use.
	DB(ctx context.Context) (*sql.DB, error)
	Close() error
}

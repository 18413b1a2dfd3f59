package sqlite_test

import (
	"context"

	"github.com/bnema/dockpane/internal/logging"
)

func testCtx() context.Context {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel("debug")
	return logging.WithContext(context.Background(), logging.New(cfg))
}

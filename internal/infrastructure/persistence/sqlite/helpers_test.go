package sqlite_test

import (
	"context"

	"github.com/bnema/workbench/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

package testutil

import (
	"context"

	"github.com/deespora/backoffice/internal/types"
)

func SetupContext() context.Context {
	ctx := context.Background()
	ctx = types.SetRequestID(ctx, types.GenerateUUID())
	ctx = types.SetAdminEmail(ctx, "admin@example.com")
	return ctx
}

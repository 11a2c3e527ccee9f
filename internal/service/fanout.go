package service

import (
	"context"
	"time"

	"github.com/deespora/backoffice/internal/domain/record"
	"github.com/deespora/backoffice/internal/logger"
	"github.com/deespora/backoffice/internal/sentry"
	"github.com/deespora/backoffice/internal/types"
	"github.com/sourcegraph/conc/pool"
)

type fetchFunc func(ctx context.Context, kind types.Kind) []record.Record

// fetchKinds runs fetch for every kind concurrently and returns once all of
// them have settled. Each branch writes only its own slot and gets its own
// timeout; a branch that outlives its deadline or the parent context
// contributes an empty slice. The map is assembled after the barrier.
func fetchKinds(
	ctx context.Context,
	name string,
	kinds []types.Kind,
	timeout time.Duration,
	sentrySvc *sentry.Service,
	log *logger.Logger,
	fetch fetchFunc,
) map[types.Kind][]record.Record {
	span, ctx := sentrySvc.StartFanOutSpan(ctx, name, kinds)

	slots := make([][]record.Record, len(kinds))
	p := pool.New().WithMaxGoroutines(len(kinds) + 1)
	for i, kind := range kinds {
		p.Go(func() {
			branchCtx := ctx
			if timeout > 0 {
				var cancel context.CancelFunc
				branchCtx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			recs := fetch(branchCtx, kind)
			if err := branchCtx.Err(); err != nil {
				log.WithContext(ctx).Warnw("discarding late fetch result",
					"fanout", name,
					"kind", kind,
					"error", err,
				)
				recs = nil
			}
			if recs == nil {
				recs = []record.Record{}
			}
			slots[i] = recs
		})
	}
	p.Wait()

	sentry.FinishSpan(span, ctx.Err())

	out := make(map[types.Kind][]record.Record, len(kinds))
	for i, kind := range kinds {
		out[kind] = slots[i]
	}
	return out
}

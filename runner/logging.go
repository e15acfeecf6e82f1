package runner

import (
	"context"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/kr/pretty"

	"github.com/katalvlaran/salesman/graph"
	"github.com/katalvlaran/salesman/tsp"
)

type loggingMiddleware struct {
	logger log.Logger
	next   Service
}

// NewLoggingMiddleware returns Service middleware that logs every Solve call:
// algorithm, instance size, cost, path, error and wall time. The wrapped
// service's options are logged once here.
func NewLoggingMiddleware(s Service, logger log.Logger) Service {
	level.Debug(logger).Log("msg", "solver options", "options", pretty.Sprint(s.Options()))

	return loggingMiddleware{logger: logger, next: s}
}

func (mw loggingMiddleware) Options() tsp.Options { return mw.next.Options() }

func (mw loggingMiddleware) Solve(ctx context.Context, g *graph.Graph, algo tsp.Algorithm) (res tsp.Result, err error) {
	defer func(begin time.Time) {
		lg := level.Info(mw.logger)
		if err != nil {
			lg = level.Error(mw.logger)
		}
		lg.Log(
			"method", "Solve",
			"algorithm", algo,
			"vertices", g.NumVertices(),
			"cost", res.Cost,
			"lower_bound", res.LowerBound,
			"path", pretty.Sprint(res.Path),
			"err", err,
			"took", time.Since(begin),
		)
	}(time.Now())

	res, err = mw.next.Solve(ctx, g, algo)

	return
}

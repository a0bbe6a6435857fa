package scenario

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlsearch/astar"
)

// RunFiles loads and runs every scenario in paths with at most parallel
// searches in flight (parallel < 1 means one). Reports come back in the
// order of paths. The first load or build error cancels the remaining
// runs and is returned; in-flight searches then end as canceled.
//
// opts are shared by all runs, so any hooks they carry must be safe for
// concurrent use.
func RunFiles(ctx context.Context, paths []string, parallel int, opts ...astar.Option) ([]Report, error) {
	if parallel < 1 {
		parallel = 1
	}
	reports := make([]Report, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			sc, err := Load(path)
			if err != nil {
				return err
			}
			rep, err := Run(gctx, sc, opts...)
			if err != nil {
				return err
			}
			reports[i] = rep

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

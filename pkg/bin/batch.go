package bin

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/binkit/pkg/types"
)

// Result is the outcome of decoding one file in a batch.
type Result struct {
	Path string
	Doc  *types.Document
	Err  error
}

// DecodeAll decodes paths concurrently with at most workers files in flight
// (GOMAXPROCS when workers <= 0). Results keep the order of paths.
//
// With failFast, the first decode error cancels the files not yet started and
// is returned; otherwise every file is attempted and per-file errors are only
// reported in the results. A cancelled ctx always stops the batch.
func DecodeAll(ctx context.Context, paths []string, res types.NameResolver, opts types.DecodeOptions, workers int, failFast bool) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		results[i].Path = path
		if gCtx.Err() != nil {
			results[i].Err = gCtx.Err()
			continue
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				results[i].Err = err
				return err
			}
			doc, err := DecodeFile(path, res, opts)
			results[i].Doc, results[i].Err = doc, err
			if failFast {
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

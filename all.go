// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package text

import (
	"context"

	"github.com/z5labs/text/internal/try"

	"golang.org/x/sync/errgroup"
)

// ReadAll evaluates every given [Text] concurrently and returns the
// produced strings in the same order as ts.
//
// The first error is returned as is, and a panic in any [Text] is
// recovered and returned as an error. A [Text] is not started once ctx
// is cancelled but one which is already running is never interrupted,
// since [Text.AsString] has no way of observing cancellation.
func ReadAll(ctx context.Context, ts ...Text) ([]string, error) {
	ss := make([]string, len(ts))

	g, gctx := errgroup.WithContext(ctx)
	for i, t := range ts {
		i, t := i, t
		g.Go(func() (err error) {
			defer try.Recover(&err)

			if err := gctx.Err(); err != nil {
				return err
			}
			ss[i], err = Read(t)
			return err
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}
	return ss, nil
}

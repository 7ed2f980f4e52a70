// Package build compiles many independent sources concurrently.
package build

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"tinyc/pkg/compiler"
	"tinyc/pkg/vfs"
)

const (
	SourceExt = ".lisp"
	OutputExt = ".js"
)

// OutputName maps prog.lisp to prog.js; other names just gain OutputExt.
func OutputName(source string) string {
	return strings.TrimSuffix(source, SourceExt) + OutputExt
}

func newGroup(ctx context.Context, limit int) (*errgroup.Group, context.Context) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	return g, ctx
}

// CompileAll compiles each source with at most limit compilations in flight
// (limit <= 0 means GOMAXPROCS). Outputs are returned in input order. The
// first failure cancels the remaining work and is returned wrapped with the
// source index.
func CompileAll(ctx context.Context, sources []string, limit int) ([]string, error) {
	out := make([]string, len(sources))
	g, ctx := newGroup(ctx, limit)
	for i, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := compiler.Compile(src)
			if err != nil {
				return fmt.Errorf("source %d: %w", i, err)
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Disk compiles every SourceExt file on vd and writes each result next to it
// under OutputName. It returns the written output names, sorted.
func Disk(ctx context.Context, vd *vfs.VirtualDisk, limit int) ([]string, error) {
	names := vd.List(SourceExt)
	outputs := make([]string, len(names))
	g, ctx := newGroup(ctx, limit)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := vd.Read(name)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			res, err := compiler.Compile(string(src))
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			outputs[i] = OutputName(name)
			return vd.WriteString(outputs[i], res)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

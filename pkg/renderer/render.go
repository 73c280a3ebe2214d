package renderer

import (
	"context"
	"image"
	"runtime"
	"time"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/tiwylli/PBR-Engine-sub001/pkg/core"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/integrator"
	"github.com/tiwylli/PBR-Engine-sub001/pkg/scene"
)

// TileSize is the edge length of the square tiles handed to worker tasks,
// clipped at the image boundaries
const TileSize = 32

// Options controls the render scheduler
type Options struct {
	Workers int              // parallel tile tasks, zero means one per CPU
	OnTile  func(TileResult) // invoked from a single goroutine as tiles finish
}

// TileResult reports one finished tile
type TileResult struct {
	Bounds    image.Rectangle // region of the final image covered by this tile
	Pixels    *Image          // the tile's private sub-image
	Stats     core.Stats      // counters for the rays this tile traced
	Completed int             // tiles finished so far, this one included
	Total     int             // total tile count for the render
}

// Tiles partitions a width-by-height image into TileSize-square bounds,
// clipped at the right and bottom edges
func Tiles(width, height int) []image.Rectangle {
	var tiles []image.Rectangle
	for y := 0; y < height; y += TileSize {
		for x := 0; x < width; x += TileSize {
			tiles = append(tiles, image.Rect(x, y, min(x+TileSize, width), min(y+TileSize, height)))
		}
	}
	return tiles
}

// Render draws the scene with the given integrator and returns the film of
// linear radiance values along with the merged ray statistics. Tiles render
// in parallel, each on a private sampler stream derived from its tile index,
// so the result is deterministic for a fixed seed regardless of scheduling
// order. Cancelling the context abandons the render at tile granularity.
func Render(ctx context.Context, sc *scene.Scene, integ integrator.Integrator, sampler core.Sampler, opts Options) (*Image, core.Stats, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	sc.Prepare()

	width, height := sc.Camera.Width(), sc.Camera.Height()
	tiles := Tiles(width, height)
	img := NewImage(width, height)

	glog.Infof("Rendering %dx%d: %d tiles on %d workers, %d samples/pixel",
		width, height, len(tiles), workers, sampler.SamplesPerPixel())
	start := time.Now()

	// The collector owns the film and the aggregate counters: it blits each
	// finished tile into place and dispatches the completion callback from a
	// single goroutine, so callbacks never need their own locking.
	results := make(chan TileResult, workers)
	var total core.Stats
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		completed := 0
		for res := range results {
			completed++
			img.Blit(res.Pixels, res.Bounds.Min)
			total.Merge(res.Stats)
			glog.V(1).Infof("Tile %v done (%d/%d)", res.Bounds, completed, len(tiles))
			if opts.OnTile != nil {
				res.Completed = completed
				res.Total = len(tiles)
				opts.OnTile(res)
			}
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(workers))
	var launchErr error
	for index, bounds := range tiles {
		index, bounds := index, bounds
		if err := sem.Acquire(gctx, 1); err != nil {
			launchErr = err
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			if err := gctx.Err(); err != nil {
				return err
			}
			results <- renderTile(sc, integ, bounds, sampler.Clone(int64(index)))
			return nil
		})
	}
	err := g.Wait()
	close(results)
	<-collected
	if err == nil {
		err = launchErr
	}
	if err != nil {
		return nil, core.Stats{}, err
	}

	elapsed := time.Since(start)
	glog.Infof("Render finished in %v: %d rays traced, %d intersections (%.2f per ray)",
		elapsed.Round(time.Millisecond), total.TracedRays, total.Intersections, total.IntersectionsPerRay())
	if total.DroppedSamples > 0 {
		glog.Warningf("Dropped %d non-finite radiance samples", total.DroppedSamples)
	}
	return img, total, nil
}

// renderTile renders one tile into a private sub-image with task-local
// counters. Each pixel averages the samples that produced a finite estimate;
// non-finite estimates are dropped and counted instead of poisoning the
// pixel.
func renderTile(sc *scene.Scene, integ integrator.Integrator, bounds image.Rectangle, sampler core.Sampler) TileResult {
	sub := NewImage(bounds.Dx(), bounds.Dy())
	var stats core.Stats

	spp := sampler.SamplesPerPixel()
	if spp < 1 {
		spp = 1
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var sum core.Vec3
			kept := 0
			for s := 0; s < spp; s++ {
				jitter := sampler.Next2D()
				lens := sampler.Next2D()
				ray := sc.Camera.RayForPixel(x, y, jitter, lens)
				value := integ.RayColor(ray, sc, sampler, &stats)
				if !value.IsFinite() {
					stats.CountDroppedSample()
					continue
				}
				sum = sum.Add(value)
				kept++
			}
			if kept > 0 {
				sub.Set(x-bounds.Min.X, y-bounds.Min.Y, sum.Multiply(1.0/float64(kept)))
			}
		}
	}

	return TileResult{Bounds: bounds, Pixels: sub, Stats: stats}
}

// Command benchmark drives headless frame-pipeline iterations over
// synthetic entity trees and reports per-iteration latency.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"

	"github.com/GatoImorrivel/vizia/pkg/engine"
	"github.com/GatoImorrivel/vizia/pkg/entity"
	"github.com/GatoImorrivel/vizia/pkg/events"
	"github.com/GatoImorrivel/vizia/pkg/platform"
	"github.com/GatoImorrivel/vizia/pkg/style"
	vtesting "github.com/GatoImorrivel/vizia/pkg/testing"
)

const (
	widthsKey = "widths"
	depthsKey = "depths"
	itersKey  = "iters"
	burstKey  = "burst"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure frame-pipeline iteration latency over synthetic trees",
		Flags: []cli.Flag{
			&cli.IntSliceFlag{
				Name:  widthsKey,
				Usage: "children per entity at each level",
				Value: []int64{1, 10, 100},
			},
			&cli.IntSliceFlag{
				Name:  depthsKey,
				Usage: "tree depths to benchmark",
				Value: []int64{1, 3, 5},
			},
			&cli.IntFlag{
				Name:  itersKey,
				Usage: "pipeline iterations per configuration",
				Value: 100,
			},
			&cli.IntFlag{
				Name:  burstKey,
				Usage: "host events injected per iteration",
				Value: 16,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	widths := cmd.IntSlice(widthsKey)
	depths := cmd.IntSlice(depthsKey)
	iters := int(cmd.Int(itersKey))
	burst := int(cmd.Int(burstKey))

	tbl := table.NewWriter()
	tbl.SetTitle("Frame pipeline")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"tree", "entities", "avg", "min", "p75", "p99", "max"})

	for _, w := range widths {
		for _, d := range depths {
			entities, calc, err := benchmarkTree(int(w), int(d), iters, burst)
			if err != nil {
				return err
			}
			tbl.AppendRows([]table.Row{{
				fmt.Sprintf("%d wide * %d deep", w, d),
				humanize.Comma(int64(entities)),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			}})
		}
	}

	tbl.Render()
	return nil
}

func benchmarkTree(width, depth, iters, burst int) (int, *tachymeter.Metrics, error) {
	tach := tachymeter.New(&tachymeter.Config{Size: iters})

	var leaves []entity.Entity
	app := engine.NewApplication(func(cx *engine.Context) {
		leaves = buildTree(cx, cx.Root(), width, depth)
	}).WithWindow(&vtesting.RecordingWindow{})

	if err := app.Start(); err != nil {
		return 0, nil, err
	}
	defer app.Stop()

	// Settle the initial frame before measuring.
	for app.Step(nil) == engine.Poll {
	}

	cx := app.Context()
	for i := 0; i < iters; i++ {
		batch := make([]platform.WindowEvent, 0, burst)
		for j := 0; j < burst; j++ {
			batch = append(batch, platform.MouseMove{
				X: float64(j % 800),
				Y: float64(j % 600),
			})
		}
		for _, leaf := range leaves {
			cx.EmitTo(leaf, bump{})
		}

		start := time.Now()
		app.Step(batch)
		tach.AddTime(time.Since(start))
	}

	return cx.EntityCount(), tach.Calc(), nil
}

// bump is the synthetic message handlers react to by touching style,
// which exercises the restyle and relayout stages every iteration.
type bump struct{}

func buildTree(cx *engine.Context, parent entity.Entity, width, depth int) []entity.Entity {
	if depth == 0 {
		return nil
	}
	var leaves []entity.Entity
	for i := 0; i < width; i++ {
		e, err := cx.CreateEntity(parent)
		if err != nil {
			continue
		}
		cx.Styles().SetWidth(e, style.Px(float64(10+i)))
		cx.Styles().SetHeight(e, style.Px(10))
		n := 0
		cx.SetView(e, engine.ViewFunc(func(cx *engine.Context, ev events.Event) {
			if _, ok := ev.Message.(bump); ok {
				n++
				cx.Styles().SetHeight(e, style.Px(float64(10+n%4)))
			}
		}))
		if depth == 1 {
			leaves = append(leaves, e)
		}
		leaves = append(leaves, buildTree(cx, e, width, depth-1)...)
	}
	return leaves
}

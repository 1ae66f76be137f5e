// Package main provides a headless verification tool for the slider engine.
//
// Usage:
//
//	go run cmd/verify_slider/main.go [flags]
//
// Flags:
//
//	--width <px>      Container width (default: 220)
//	--value <v>       Initial value in [0,1] (default: 0.5)
//	--deltas <list>   Comma separated drag deltas in pixels (default: "20,-40,500,-1000")
//	--preempt         Run the priority preemption scenario (default: true)
//	--verbose         Enable verbose logging
//
// Purpose:
//   - Print the two-phase layout for a given width/value
//   - Replay drag deltas through a default priority session
//   - Show a high priority request preempting a user drag
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/decker502/customslider/pkg/slider"
)

var (
	widthFlag   = flag.Float64("width", 220, "Container width in pixels")
	valueFlag   = flag.Float64("value", 0.5, "Initial value in [0,1]")
	deltasFlag  = flag.String("deltas", "20,-40,500,-1000", "Comma separated drag deltas in pixels")
	preemptFlag = flag.Bool("preempt", true, "Run the priority preemption scenario")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	deltas, err := parseDeltas(*deltasFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --deltas: %v\n", err)
		os.Exit(2)
	}

	value := *valueFlag
	c := slider.NewController(slider.DefaultOptions(), func(v float64) { value = v })

	p := c.Measure(*widthFlag, value)
	c.SyncToValue(value)
	printPlacement(p)

	fmt.Println("\n== drag ==")
	err = c.Drag(context.Background(), slider.PriorityDefault, func(ctx context.Context, scope slider.DragScope) error {
		for _, d := range deltas {
			if !scope.DragBy(d) {
				return slider.ErrSessionEnded
			}
			fmt.Printf("delta %+8.1f  raw %8.1f  value %.4f\n", d, c.RawOffset(), value)
		}
		return nil
	})
	if err != nil {
		fmt.Printf("drag failed: %v\n", err)
	}

	if *preemptFlag {
		runPreemption(c, &value)
	}
}

// runPreemption 用户拖拽中途被高优先级请求打断
func runPreemption(c *slider.Controller, value *float64) {
	fmt.Println("\n== preemption ==")

	user, ok := c.Arbiter().TryRequest(slider.PriorityDefault)
	if !ok {
		fmt.Println("arbiter busy")
		return
	}
	user.DragBy(10)
	fmt.Printf("user drag     value %.4f\n", *value)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	snap, err := c.Request(ctx, slider.PriorityHigh)
	if err != nil {
		fmt.Printf("high priority request failed: %v\n", err)
		return
	}
	fmt.Printf("user session  active=%v err=%v\n", user.Active(), user.Err())
	fmt.Printf("stale DragBy  accepted=%v\n", user.DragBy(100))

	snap.DragBy(c.SnapDelta(0))
	snap.End()
	fmt.Printf("snap to 0     value %.4f dragging=%v\n", *value, c.IsDragging())
}

func printPlacement(p slider.Placement) {
	fmt.Println("== layout ==")
	fmt.Printf("size          %.0f x %.0f\n", p.Size.Width, p.Size.Height)
	fmt.Printf("thumb         %.0f x %.0f at (%.0f, %.0f)\n", p.Thumb.Width, p.Thumb.Height, p.ThumbOffset.X, p.ThumbOffset.Y)
	fmt.Printf("track         %.0f x %.0f at (%.0f, %.0f)\n", p.Track.Width, p.Track.Height, p.TrackOffset.X, p.TrackOffset.Y)
	fmt.Printf("active track  %.1f -> %.1f\n", p.TrackLine.ActiveStart.X, p.TrackLine.ActiveEnd.X)
}

func parseDeltas(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/heinemichael/geometry2/geomsg"
	"github.com/heinemichael/geometry2/msg"
	"github.com/heinemichael/geometry2/r3msg"
	"github.com/heinemichael/geometry2/registry"
	"github.com/heinemichael/geometry2/static"
	"github.com/heinemichael/geometry2/tf"
)

func main() {
	var (
		sceneFile   = flag.String("scene", "", "Path to a YAML scene of static transforms")
		sourceFrame = flag.String("source", "", "Source frame (the data's own frame)")
		targetFrame = flag.String("target", "", "Target frame to express data in")
		timeout     = flag.Duration("timeout", time.Second, "How long to wait for the transform")
		list        = flag.Bool("list", false, "List frames and registered type support, then exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *sceneFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: tfecho -scene <scene.yaml> -target <frame> -source <frame>")
		fmt.Fprintln(os.Stderr, "       tfecho -scene <scene.yaml> -list")
		fmt.Fprintln(os.Stderr, "       tfecho -scene <scene.yaml> -i  (interactive mode)")
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(*sceneFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*sceneFile, *targetFrame, *sourceFrame, *timeout, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRegistry() *registry.Registry {
	reg := registry.New()
	geomsg.Register(reg)
	r3msg.Register(reg)
	return reg
}

func run(sceneFile, targetFrame, sourceFrame string, timeout time.Duration, listOnly bool) error {
	src, err := static.LoadFile(sceneFile)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}
	reg := newRegistry()

	fmt.Printf("Scene: %s\n", sceneFile)
	fmt.Printf("Frames: %s\n", strings.Join(src.Frames(), ", "))
	fmt.Printf("Transforms: %d\n", len(src.Transforms()))

	if listOnly {
		snap := reg.Snapshot()
		fmt.Printf("\nTransformable types:\n")
		for _, name := range snap.Apply {
			fmt.Printf("  %s\n", name)
		}
		fmt.Printf("\nDirect conversions:\n")
		for _, pair := range snap.Direct {
			fmt.Printf("  %s\n", pair)
		}
		return nil
	}

	if targetFrame == "" || sourceFrame == "" {
		return fmt.Errorf("need both -target and -source (or -list)")
	}

	ctx := context.Background()
	buf := tf.NewWithRegistry(src, reg)

	transform, err := src.LookupTransform(ctx, targetFrame, sourceFrame, time.Time{}, timeout)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s\n", renderTransform(transform, term.IsTerminal(int(os.Stdout.Fd()))))

	// Push the source frame's origin through the facade as a sanity probe.
	origin := tf.Stamp(msg.PointStamped{}, sourceFrame, time.Time{})
	probed, err := tf.TransformAs[msg.PointStamped](ctx, buf, origin, targetFrame, timeout)
	if err != nil {
		return err
	}
	fmt.Printf("\nOrigin of %q in %q: (%.3f, %.3f, %.3f)\n",
		sourceFrame, targetFrame, probed.Point.X, probed.Point.Y, probed.Point.Z)

	return nil
}

func renderTransform(transform msg.TransformStamped, pretty bool) string {
	label := func(s string) string {
		if pretty {
			return typeStyle.Render(s)
		}
		return s
	}
	header := fmt.Sprintf("%s <- %s", transform.FrameID, transform.ChildFrameID)
	if pretty {
		header = funcStyle.Render(header)
	}

	t := transform.Transform.Translation
	q := transform.Transform.Rotation
	roll, pitch, yaw := geomsg.RPY(q)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s (%.3f, %.3f, %.3f)\n", label("translation:"), t.X, t.Y, t.Z)
	fmt.Fprintf(&b, "  %s    (%.3f, %.3f, %.3f, %.3f)\n", label("rotation:"), q.X, q.Y, q.Z, q.W)
	fmt.Fprintf(&b, "  %s         (%.3f, %.3f, %.3f)", label("rpy:"), roll, pitch, yaw)
	return b.String()
}

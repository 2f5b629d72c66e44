// Command wrapgl scrolls a large grid of colored cells in a GLFW window,
// materializing only the rows near the viewport.
//
//	go run ./cmd/wrapgl -items 50000 -columns 8
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/wrapped"
	"github.com/go-theft-auto/wrapped/backend/opengl"
	"github.com/go-theft-auto/wrapped/internal/config"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "wrapped"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", config.DefaultPath(), "TOML config file")
	items := flag.Int("items", 0, "number of items (overrides config)")
	columns := flag.Int("columns", 0, "items per row (overrides config)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *items > 0 {
		cfg.Items = *items
	}
	if *columns > 0 {
		cfg.Columns = *columns
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	wrapped.SetVerbose(cfg.Verbose || *verbose)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: wrapped.LogLevel()}))

	layout, err := wrapped.NewLayout(make([]int, cfg.Items), cfg.Columns, wrapped.FixedHeight[int](cfg.ItemHeight))
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	opts, err := cfg.WindowOptions()
	if err != nil {
		return err
	}
	view, err := wrapped.NewWindow(layout, opts...)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	host := opengl.NewHost(window, view)
	host.BottomLeft = cfg.BottomLeft()

	dl := wrapped.AcquireDrawList()
	defer wrapped.ReleaseDrawList(dl)

	for !window.ShouldClose() {
		glfw.PollEvents()
		if host.Update() {
			if rows := view.Rows(); len(rows) > 0 {
				logger.Debug("rows materialized", "first", rows[0].Index, "count", len(rows))
			}
		}

		w, h := host.Size()
		renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		dl.Clear()
		host.Draw(dl, 2, cellColor)
		if err := renderer.Render(dl); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	s := view.Stats()
	logger.Info("done", "observations", s.Observations, "queries", s.Queries, "updates", s.Updates)
	return nil
}

// cellColor shades cells by absolute index with alternating row tint.
func cellColor(row, index int) uint32 {
	shade := uint8(80 + index*37%120)
	if row%2 == 1 {
		return wrapped.RGBA(shade/2, shade, 200, 255)
	}
	return wrapped.RGBA(200, shade, shade/2, 255)
}

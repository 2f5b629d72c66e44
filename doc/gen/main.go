// Command gen renders the cell grid at a few viewport sizes and scroll
// offsets, captures framebuffer pixels, and saves JPEG screenshots to
// doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/wrapped"
	"github.com/go-theft-auto/wrapped/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type screenshot struct {
	name    string  // filename without extension
	width   int     // viewport width
	height  int     // viewport height
	items   int     // item count
	columns int     // items per row
	rowH    float32 // row height
	scrollY float32 // scroll offset from the top of the content
	frames  int     // frames to render before capturing (0 = default 2)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := []screenshot{
		{name: "grid-top", width: 800, height: 600, items: 50_000, columns: 8, rowH: 24},
		{name: "grid-middle", width: 800, height: 600, items: 50_000, columns: 8, rowH: 24, scrollY: 72_000, frames: 4},
		{name: "grid-narrow", width: 300, height: 600, items: 1_000, columns: 3, rowH: 40, scrollY: 410},
		{name: "grid-partial-row", width: 400, height: 200, items: 10, columns: 4, rowH: 50},
	}

	// One window per screenshot, kept across that screenshot's frames and
	// dropped once a later screenshot stops requesting it.
	views := wrapped.NewStore[struct{}]()
	root := wrapped.IDFor("screenshots")

	for _, s := range shots {
		rows, err := capture(renderer, views, root.Child(s.name), s, outDir)
		if err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d, %d rows materialized)\n", s.name, s.width, s.height, rows)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/ (%d windows live)\n", len(shots), outDir, views.Len())
	return nil
}

func capture(renderer *opengl.Renderer, views *wrapped.Store[struct{}], id wrapped.ID, s screenshot, outDir string) (int, error) {
	layout, err := wrapped.NewLayout(make([]struct{}, s.items), s.columns, wrapped.FixedHeight[struct{}](s.rowH))
	if err != nil {
		return 0, err
	}

	renderer.Resize(s.width, s.height)
	dl := wrapped.AcquireDrawList()
	defer wrapped.ReleaseDrawList(dl)

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	var view *wrapped.Window[struct{}]
	for i := 0; i < frames; i++ {
		views.NextFrame()
		view, err = views.Window(id, layout)
		if err != nil {
			return 0, err
		}
		view.ObserveVisible(wrapped.Rect{Y: s.scrollY, W: float32(s.width), H: float32(s.height)})

		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		dl.Clear()
		wrapped.AddRows(dl, view.Rows(), s.columns, wrapped.Vec2{Y: -s.scrollY}, float32(s.width), 2, cellColor)
		if err := renderer.Render(dl); err != nil {
			return 0, err
		}
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// GL rows are bottom-up.
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return len(view.Rows()), jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// cellColor shades cells by absolute index with alternating row tint.
func cellColor(row, index int) uint32 {
	shade := uint8(80 + index*37%120)
	if row%2 == 1 {
		return wrapped.RGBA(shade/2, shade, 200, 255)
	}
	return wrapped.RGBA(200, shade, shade/2, 255)
}

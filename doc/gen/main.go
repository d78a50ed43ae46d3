// Command gen renders the control panel with sample groups, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
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

	"github.com/go-theft-auto/controls"
	"github.com/go-theft-auto/controls/backend/opengl"
	"github.com/go-theft-auto/controls/ui"
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

// screenshot defines a single panel screenshot to capture.
type screenshot struct {
	name   string   // filename without extension
	width  int      // viewport width
	height int      // viewport height
	style  ui.Style // panel style
	frames int      // frames to render (0 = default 2)

	// input feeds synthetic input before each frame; may be nil.
	input func(frame int, in *ui.InputState)
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
		return fmt.Errorf("ui renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := []screenshot{
		{name: "panel", width: 400, height: 460, style: ui.DefaultStyle()},
		{name: "panel-light", width: 400, height: 460, style: ui.LightStyle()},
		{
			// Hold the mouse on lighting.intensity, below the title, the
			// lighting header and color.x/y/z. The track starts after the
			// 100px title column and is 216px wide in a 392px window.
			name: "panel-drag", width: 400, height: 460, style: ui.DefaultStyle(), frames: 3,
			input: func(_ int, in *ui.InputState) {
				in.SetMousePos(12+100+0.75*216, 12+5*20+8)
				in.SetMouseButton(ui.MouseButtonLeft, true)
			},
		},
	}

	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

// samplePanel builds the panel shown in every screenshot.
func samplePanel() *controls.Panel {
	unit := controls.Range{Min: 0, Max: 1}
	return controls.NewPanel().
		Group("lighting", func(g *controls.Group) {
			g.Vec3("color", [3]float32{1, 0.95, 0.9}, [3]controls.Range{unit, unit, unit}, nil)
			g.Float("intensity", 1.2, controls.Range{Min: 0, Max: 4}, nil)
			g.Bool("shadows", true, nil)
		}).
		Group("material", func(g *controls.Group) {
			g.Float("roughness", 0.4, unit, nil)
			g.Int("steps", 3, controls.Range{Min: 0, Max: 8}, nil)
		}).
		Actions("presets", func(a *controls.ActionGroup) {
			a.Button("noon", controls.ActionFunc(func(*controls.Panel) {}))
			a.Button("sunset", controls.ActionFunc(func(*controls.Panel) {})).
				Condition("sunset", func() bool { return false })
		})
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only update the renderer projection. The hidden window stays at
	// 800x600 (larger than every screenshot).
	renderer.Resize(s.width, s.height)

	// Fresh UI and panel per screenshot to avoid state leaking between captures.
	u := ui.New(renderer, ui.WithStyle(s.style))
	panel := samplePanel()
	in := ui.NewInputState()

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	for i := range frames {
		if s.input != nil {
			s.input(i, in)
		}

		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := u.Begin(in, ui.Vec2{X: float32(s.width), Y: float32(s.height)})
		ctx.Window("Uniforms", 4, 4, float32(s.width-8), func() {
			ui.DrawPanel(ctx, panel)
		})
		if err := u.End(); err != nil {
			return err
		}
		in.Reset()
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
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
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

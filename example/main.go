// Example renders a fullscreen shader whose uniform blocks are driven by a
// control panel.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Settings come from config.toml (or CONTROLS_CONFIG) and CONTROLS_* env
// vars; a .env file in the working directory is loaded first.
package main

import (
	"fmt"
	"math"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/controls"
	"github.com/go-theft-auto/controls/backend/opengl"
	"github.com/go-theft-auto/controls/internal/config"
	"github.com/go-theft-auto/controls/ui"
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

// The fullscreen triangle is generated from gl_VertexID; no vertex buffers.
const sceneVertexShader = `
#version 410 core
out vec2 uv;

void main() {
    vec2 pos = vec2((gl_VertexID << 1) & 2, gl_VertexID & 2);
    uv = pos;
    gl_Position = vec4(pos * 2.0 - 1.0, 0.0, 1.0);
}
` + "\x00"

// Block members are declared in registration order. Each group is laid
// out so the tightly packed bytes coincide with std140.
const sceneFragmentShader = `
#version 410 core
in vec2 uv;
out vec4 FragColor;

layout (std140) uniform Scene {
    vec3 background;
    float timeScale;
};

layout (std140) uniform Lighting {
    vec3 color;
    float intensity;
    vec3 lightDir;
    int shadows;
};

layout (std140) uniform Material {
    vec4 tint;
    float roughness;
    int steps;
    vec2 offset;
};

uniform float time;

void main() {
    vec2 p = (uv - 0.5 - offset) * 2.0;
    float r2 = dot(p, p);
    if (r2 > 1.0) {
        FragColor = vec4(background, 1.0);
        return;
    }
    vec3 n = vec3(p, sqrt(1.0 - r2));
    float a = time * timeScale;
    vec3 l = normalize(vec3(lightDir.x * cos(a) - lightDir.z * sin(a), lightDir.y, lightDir.x * sin(a) + lightDir.z * cos(a)));
    float diffuse = max(dot(n, l), 0.0);
    if (steps > 0) {
        diffuse = floor(diffuse * float(steps)) / float(steps);
    }
    if (shadows != 0 && dot(n, l) < 0.0) {
        diffuse *= 0.2;
    }
    vec3 h = normalize(l + vec3(0.0, 0.0, 1.0));
    float spec = pow(max(dot(n, h), 0.0), mix(64.0, 2.0, roughness)) * (1.0 - roughness);
    FragColor = vec4(tint.rgb * color * intensity * diffuse + spec, tint.a);
}
` + "\x00"

func run() error {
	if err := config.LoadEnv(); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	controls.SetVerbose(cfg.Verbose)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return fmt.Errorf("ui renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewGLFWInputAdapter(window)

	style := ui.DefaultStyle()
	if cfg.Panel.Style == "light" {
		style = ui.LightStyle()
	}
	gui := ui.New(renderer, ui.WithStyle(style))
	window.SetSizeCallback(func(_ *glfw.Window, w, h int) {
		gui.Resize(w, h)
	})

	program, err := opengl.CompileProgram(sceneVertexShader, sceneFragmentShader)
	if err != nil {
		return fmt.Errorf("scene shader: %w", err)
	}
	defer gl.DeleteProgram(program)
	timeLoc := gl.GetUniformLocation(program, gl.Str("time\x00"))

	// Core profile needs a bound VAO even without attributes.
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	defer gl.DeleteVertexArrays(1, &vao)

	var panelOpts []controls.PanelOption
	if cfg.Panel.LegacyPadding {
		panelOpts = append(panelOpts, controls.WithGroupOptions(controls.WithLegacyPadding()))
	}
	panel := controls.NewPanel(panelOpts...)
	registerControls(panel, window)

	blocks := []string{"Scene", "Lighting", "Material"}
	buffers := make(map[string]*opengl.UniformBuffer, len(blocks))
	for i, name := range blocks {
		ub := opengl.NewUniformBuffer(uint32(i))
		defer ub.Delete()
		if err := ub.Bind(program, name); err != nil {
			return err
		}
		buffers[name] = ub
	}

	for !window.ShouldClose() {
		glfw.PollEvents()
		in := input.Update()

		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}

		// Immediate-mode read: registration is a no-op once the name exists.
		var bg [3]float32
		panel.Group("scene", func(g *controls.Group) {
			bg = g.Vec3("background", [3]float32{0.1, 0.1, 0.12}, [3]controls.Range{{Min: 0, Max: 1}, {Min: 0, Max: 1}, {Min: 0, Max: 1}}, nil)
		})

		for name, g := range panel.Groups() {
			if ub, ok := buffers[name]; ok {
				ub.Upload(g)
			}
		}

		fw, fh := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fw), int32(fh))
		gl.ClearColor(bg[0], bg[1], bg[2], 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl.UseProgram(program)
		gl.Uniform1f(timeLoc, float32(glfw.GetTime()))
		gl.BindVertexArray(vao)
		gl.DrawArrays(gl.TRIANGLES, 0, 3)
		gl.BindVertexArray(0)

		w, h := window.GetSize()
		ctx := gui.Begin(in, ui.Vec2{X: float32(w), Y: float32(h)})
		ctx.Window("Uniforms", cfg.Panel.X, cfg.Panel.Y, cfg.Panel.Width, func() {
			ui.DrawPanel(ctx, panel)
		})
		if err := gui.End(); err != nil {
			return fmt.Errorf("ui render: %w", err)
		}
		input.EndFrame()

		window.SwapBuffers()
	}

	return nil
}

// registerControls declares every group with its defaults, in the order
// the shader's uniform blocks expect, plus the preset buttons.
func registerControls(panel *controls.Panel, window *glfw.Window) {
	unit := controls.Range{Min: 0, Max: 1}
	signed := controls.Range{Min: -1, Max: 1}

	panel.
		Group("scene", func(g *controls.Group) {
			g.Vec3("background", [3]float32{0.1, 0.1, 0.12}, [3]controls.Range{unit, unit, unit}, nil)
			g.Float("time_scale", 0.5, controls.Range{Min: -2, Max: 2}, nil)
		}).
		Group("lighting", func(g *controls.Group) {
			g.Vec3("color", [3]float32{1, 0.95, 0.9}, [3]controls.Range{unit, unit, unit}, nil)
			g.Float("intensity", 1.2, controls.Range{Min: 0, Max: 4}, nil)
			g.Vec3("light_dir", [3]float32{0.5, 0.7, 0.5}, [3]controls.Range{signed, signed, signed}, nil)
			g.Bool("shadows", true, nil)
		}).
		Group("material", func(g *controls.Group) {
			g.Vec4("tint", [4]float32{0.8, 0.3, 0.2, 1}, [4]controls.Range{unit, unit, unit, unit}, nil)
			g.Float("roughness", 0.4, unit, nil)
			g.Int("steps", 0, controls.Range{Min: 0, Max: 8}, nil)
			g.Vec2("offset", [2]float32{}, [2]controls.Range{{Min: -0.5, Max: 0.5}, {Min: -0.5, Max: 0.5}}, nil)
		})

	shadowsOn := func() bool {
		return panel.Get("lighting").Bool("shadows", true, nil)
	}

	panel.
		Actions("presets", func(a *controls.ActionGroup) {
			a.Button("noon", setLight([3]float32{1, 0.95, 0.9}, [3]float32{0, 1, 0.3}, 1.5))
			a.Button("sunset", setLight([3]float32{1, 0.5, 0.2}, [3]float32{-0.9, 0.15, 0.4}, 0.9))
			a.Button("toon", controls.ActionFunc(func(p *controls.Panel) {
				steps := int32(4)
				p.Get("material").Int("steps", 0, controls.Range{Min: 0, Max: 8}, &steps)
			}))
			a.Button("disable shadows", controls.ActionFunc(func(p *controls.Panel) {
				off := false
				p.Get("lighting").Bool("shadows", true, &off)
			})).Condition("disable shadows", shadowsOn)
		}).
		Actions("app", func(a *controls.ActionGroup) {
			a.Button("quit", controls.ActionFunc(func(*controls.Panel) {
				window.SetShouldClose(true)
			}))
		})
}

// setLight returns an action that moves the light. dir is normalized here,
// once.
func setLight(color, dir [3]float32, intensity float32) controls.Action {
	n := float32(math.Sqrt(float64(dir[0]*dir[0] + dir[1]*dir[1] + dir[2]*dir[2])))
	for i := range dir {
		dir[i] /= n
	}
	return controls.ActionFunc(func(p *controls.Panel) {
		g := p.Get("lighting")
		g.Vec3("color", color, [3]controls.Range{}, &color)
		g.Float("intensity", intensity, controls.Range{}, &intensity)
		g.Vec3("light_dir", dir, [3]controls.Range{}, &dir)
	})
}

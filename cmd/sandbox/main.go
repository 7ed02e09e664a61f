package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/hazelv/crane/engine/assets"
	"github.com/hazelv/crane/engine/colors"
	"github.com/hazelv/crane/engine/core"
	glbackend "github.com/hazelv/crane/engine/gfx/gl"
	"github.com/hazelv/crane/engine/gfx/renderer2d"
	"github.com/hazelv/crane/engine/platform"
	"github.com/hazelv/crane/engine/profiler"
	"github.com/hazelv/crane/engine/rig"
	"github.com/hazelv/crane/engine/text"
	"golang.org/x/image/font/gofont/goregular"
)

type App struct {
	configPath string
	rigCfg     rig.Config

	lastFrame  time.Time
	r2d        *renderer2d.Renderer2D
	font       *text.Font
	sceneLayer *SceneLayer
	debugLayer *DebugLayer
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(1 << 16)

	vs, err := assets.LoadShader("renderer2d.vert")
	if err != nil {
		panic(err)
	}
	fs, err := assets.LoadShader("renderer2d.frag")
	if err != nil {
		panic(err)
	}
	a.r2d, err = renderer2d.New(e.Renderer, vs, fs, 10000)
	if err != nil {
		panic(err)
	}

	// Prefer a shipped font, fall back to the embedded Go font.
	ttf, err := assets.LoadFont("RobotoMono.ttf")
	if err != nil {
		ttf = goregular.TTF
	}
	a.font, err = text.LoadTTF(e.Renderer, ttf, 16)
	if err != nil {
		panic(err)
	}

	r, err := rig.New(a.rigCfg)
	if err != nil {
		panic(err)
	}
	a.sceneLayer = &SceneLayer{rig: r}
	if a.configPath != "" {
		if w, err := rig.WatchConfig(a.configPath); err == nil {
			a.sceneLayer.watcher = w
		} else {
			log.Println("config watch disabled:", err)
		}
	}
	e.PushLayer(a.sceneLayer)

	a.debugLayer = &DebugLayer{sceneLayer: a.sceneLayer, r2d: a.r2d, font: a.font}
	e.PushLayer(a.debugLayer)

	log.Printf("GPU: %s / %s / %s", e.Renderer.GPUVendor(), e.Renderer.GPURenderer(), e.Renderer.GPUVersion())
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	now := time.Now()
	if a.debugLayer != nil && !a.lastFrame.IsZero() {
		a.debugLayer.frameDuration = float32(now.Sub(a.lastFrame).Seconds() * 1000.0)
	}
	a.lastFrame = now
}

func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event)  {}
func (a *App) OnShutdown(e *core.Engine)              {}

func main() {
	configPath := flag.String("config", "camera.yaml", "rig config file (YAML)")
	vsync := flag.Bool("vsync", true, "enable vsync")
	flag.Parse()

	rigCfg := rig.DefaultConfig()
	path := *configPath
	if cfg, err := rig.LoadConfig(path); err == nil {
		rigCfg = cfg
	} else if errors.Is(err, os.ErrNotExist) {
		log.Printf("no config at %s, using defaults", path)
		path = ""
	} else {
		log.Fatal(err)
	}

	cfg := core.Config{
		Title:      "crane sandbox",
		Width:      1280,
		Height:     720,
		VSync:      *vsync,
		ClearColor: colors.DarkGray,
	}
	app := &App{configPath: path, rigCfg: rigCfg}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(app, cfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}

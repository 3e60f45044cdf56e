// Command orrery renders an animated solar system in a native window and serves a
// browser control panel next to it.
package main

import (
	"context"
	"log"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Carmen-Shannon/oxy-orrery/engine"
	"github.com/Carmen-Shannon/oxy-orrery/engine/camera"
	"github.com/Carmen-Shannon/oxy-orrery/engine/loader"
	"github.com/Carmen-Shannon/oxy-orrery/engine/profiler"
	"github.com/Carmen-Shannon/oxy-orrery/engine/renderer"
	"github.com/Carmen-Shannon/oxy-orrery/engine/scene"
	"github.com/Carmen-Shannon/oxy-orrery/engine/window"
	"github.com/Carmen-Shannon/oxy-orrery/internal/animation"
	"github.com/Carmen-Shannon/oxy-orrery/internal/config"
	"github.com/Carmen-Shannon/oxy-orrery/internal/controls"
	"github.com/Carmen-Shannon/oxy-orrery/internal/input"
	"github.com/Carmen-Shannon/oxy-orrery/internal/panel"
	"github.com/Carmen-Shannon/oxy-orrery/internal/registry"
	"github.com/Carmen-Shannon/oxy-orrery/internal/state"
	"github.com/Carmen-Shannon/oxy-orrery/internal/world"
	"github.com/spf13/cobra"
)

// Camera setup.
const (
	cameraFovDegrees   = 60
	cameraNear         = 0.1
	cameraFar          = 2000
	cameraKeyOrbitStep = 0.02 // radians per arrow-key press

	minWindowWidth  = 320
	minWindowHeight = 240
	maxWindowWidth  = 3840
	maxWindowHeight = 2160
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orrery",
		Short: "Animated solar system with a browser control panel",
		Long: `Renders the sun, the eight planets, Saturn's ring and a starfield in a native window.

Keys: P/Space pause, T theme, +/- size, 1-8 select a planet, Up/Down its speed,
Left/Right orbit the camera, Esc quit. Drag with the middle button to orbit and
scroll to zoom. The same controls are served at --panel-addr.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}
	flags := config.RegisterFlags(cmd.Flags())
	cmd.RunE = func(*cobra.Command, []string) error {
		settings, err := flags.Settings()
		if err != nil {
			return err
		}
		run(settings)
		return nil
	}
	return cmd
}

func run(settings config.Settings) {
	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[Orrery] seed %d", seed)

	// ── Window + Renderer ───────────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle(settings.Title),
		window.WithSize(settings.Width, settings.Height),
		window.WithSizeLimits(minWindowWidth, minWindowHeight, max(maxWindowWidth, settings.Width), max(maxWindowHeight, settings.Height)),
	)

	presentMode := renderer.PresentModeVSync
	if !settings.VSync {
		presentMode = renderer.PresentModeUncapped
	}
	r := renderer.NewRenderer(renderer.BackendTypeWGPU, win,
		renderer.WithPresentMode(presentMode),
		renderer.WithMSAA(renderer.MSAASampleCount(settings.MSAA)),
		renderer.WithForceSoftwareRenderer(settings.SoftwareRenderer),
	)
	sr, err := renderer.NewSceneRenderer(r)
	if err != nil {
		log.Fatalf("[Orrery] %v", err)
	}

	// ── Scene + World ───────────────────────────────────────────────────
	sc := scene.NewScene("orrery", scene.WithCamera(newCamera(win)))

	textures := loader.NewTextureLoader(loader.WithRoot(filepath.Join(settings.AssetsDir, "textures")))
	defer textures.Close()

	speeds := state.NewOrbitalSpeedTable(registry.PlanetNames())
	view := state.NewGlobalViewState()
	w := world.BuildWorld(sc, rand.New(rand.NewSource(seed)), textures)
	sc.SetClearColor(view.ClearColor())

	// ── Engine ──────────────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(sr),
		engine.WithScene(0, sc),
		engine.WithRenderFrameLimit(settings.FrameLimit),
		engine.WithProfiler(profiler.NewProfiler(profiler.WithLogging(settings.Profiling))),
		engine.WithProfiling(true),
	)

	// ── Controls ────────────────────────────────────────────────────────
	var web *panel.Server
	var ctrls *controls.Panel
	ctrls = controls.BindControls(w, speeds, view,
		controls.WithScene(sc),
		controls.WithUpdateHandler(func() {
			if web != nil {
				web.Publish(ctrls.Snapshot())
			}
		}),
	)

	loop := animation.NewLoop(w.Planets(), speeds, view, eng.Render)
	eng.SetFrameCallback(loop.FrameCallback)

	input.NewBindings(eng, ctrls,
		input.WithCamera(sc.Camera().Controller()),
		input.WithQuit(eng.Quit),
	).Attach(win)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	go func() {
		<-ctx.Done()
		eng.Quit()
	}()

	// ── Web panel ───────────────────────────────────────────────────────
	if settings.PanelAddr != "" {
		web = panel.NewServer(eng, ctrls, panel.WithAddr(settings.PanelAddr))
		web.Publish(ctrls.Snapshot())
		go func() {
			if err := web.ListenAndServe(ctx); err != nil {
				log.Printf("[Panel] %v", err)
			}
		}()
	}

	eng.Run()

	loop.Stop()
	cancel()
	sr.Release()
	r.Release()
	if err := win.Close(); err != nil {
		log.Printf("[Orrery] close window: %v", err)
	}
}

func newCamera(win window.Window) camera.Camera {
	return camera.NewCamera(
		camera.WithFov(float32(cameraFovDegrees*math.Pi/180)),
		camera.WithAspect(float32(win.Width())/float32(win.Height())),
		camera.WithClipPlanes(cameraNear, cameraFar),
		camera.WithController(camera.NewCameraController(
			camera.WithTarget(0, 0, 0),
			camera.WithEye(0, 75, 400),
			camera.WithRadiusBounds(20, 1500),
			camera.WithOrbitSpeed(cameraKeyOrbitStep),
		)),
	)
}

package lab

import (
	"log"
	"math/rand"
	"time"

	"github.com/ylc3000/galaxy/audio"
	"github.com/ylc3000/galaxy/cube"
	"github.com/ylc3000/galaxy/engine"
	"github.com/ylc3000/galaxy/events"
	"github.com/ylc3000/galaxy/galaxy"
	"github.com/ylc3000/galaxy/palette"
	"github.com/ylc3000/galaxy/parameter"
	"github.com/ylc3000/galaxy/render"
	"github.com/ylc3000/galaxy/swarm"
	"github.com/ylc3000/galaxy/vmath"
)

// Config carries startup options for the demo controller
type Config struct {
	Width  int
	Height int

	// GalaxyPoints and SwarmCount override the default population sizes
	// when positive
	GalaxyPoints int
	SwarmCount   int

	// CachePath overrides the palette cache file location
	CachePath string

	// Source overrides the underlying clock; tests inject a MockClock
	Source engine.Clock

	// Rand seeds all layer randomness; tests inject a fixed seed
	Rand *rand.Rand
}

// App wires the layers, the bus, the clock, the palette, and the audio
// player into one demo session. All methods run on the frame-tick
// goroutine; only the input loop in cmd feeds it
type App struct {
	bus    *events.Bus
	clock  *engine.PausableClock
	camera *render.Camera

	galaxyL *galaxy.Layer
	swarmL  *swarm.Layer
	cubeL   *cube.Layer

	store  *palette.Store
	cache  *palette.Cache
	player *audio.Player
	timers *engine.TimerSet
	fps    *engine.FPSEstimator

	width  int
	height int

	formationSub events.Subscription
	grownSub     events.Subscription
	paletteSub   events.Subscription
	soundSub     events.Subscription
	growthTimer  *engine.Timer

	disposed bool
}

// New creates a fully wired demo session. The galaxy starts as a
// singularity; the cube stays hidden until formation completes
func New(cfg Config) *App {
	if cfg.GalaxyPoints <= 0 {
		cfg.GalaxyPoints = parameter.GalaxyPointCount
	}
	if cfg.SwarmCount <= 0 {
		cfg.SwarmCount = parameter.SwarmParticleCount
	}
	if cfg.CachePath == "" {
		cfg.CachePath = parameter.PaletteCacheFile
	}
	if cfg.Source == nil {
		cfg.Source = engine.NewMonotonicClock()
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	bus := events.NewBus()
	clock := engine.NewPausableClock(cfg.Source)

	a := &App{
		bus:     bus,
		clock:   clock,
		camera:  render.NewCamera(cfg.Width, cfg.Height),
		galaxyL: galaxy.New(clock, bus, cfg.GalaxyPoints, cfg.Rand),
		swarmL:  swarm.New(bus, cfg.SwarmCount, cfg.Width, cfg.Height, cfg.Rand),
		cubeL:   cube.New(clock, bus),
		store:   palette.NewStore(bus, parameter.PaletteCapacity),
		cache:   palette.NewCache(cfg.CachePath),
		player:  audio.NewPlayer(),
		timers:  engine.NewTimerSet(clock),
		fps:     engine.NewFPSEstimator(clock, parameter.FPSSampleWindow),
		width:   cfg.Width,
		height:  cfg.Height,
	}

	a.formationSub = bus.Subscribe(events.EventFormationComplete, func(events.Event) {
		a.growthTimer = a.timers.After(parameter.GrowthStartDelay, func() {
			a.cubeL.Show()
			a.requestSound(audio.SoundChime)
		})
	})
	a.grownSub = bus.Subscribe(events.EventCubeGrowthComplete, func(events.Event) {
		a.requestSound(audio.SoundPluck)
	})
	a.paletteSub = bus.Subscribe(events.EventPaletteChanged, func(ev events.Event) {
		p := ev.Payload.(*events.PaletteChangedPayload)
		if err := a.cache.Save(p.Samples); err != nil {
			log.Printf("palette cache save failed: %v", err)
		}
	})
	a.soundSub = bus.Subscribe(events.EventSoundRequest, func(ev events.Event) {
		p := ev.Payload.(*events.SoundRequestPayload)
		a.player.Play(p.Sound)
	})

	return a
}

// Galaxy returns the galaxy layer for rendering
func (a *App) Galaxy() *galaxy.Layer { return a.galaxyL }

// Swarm returns the swarm layer for rendering
func (a *App) Swarm() *swarm.Layer { return a.swarmL }

// Cube returns the cube layer for rendering
func (a *App) Cube() *cube.Layer { return a.cubeL }

// Bus returns the session event bus
func (a *App) Bus() *events.Bus { return a.bus }

// Camera returns the shared projection camera
func (a *App) Camera() *render.Camera { return a.camera }

// Player returns the audio player, for Init and Close in cmd
func (a *App) Player() *audio.Player { return a.player }

// Palette returns the picked-color store
func (a *App) Palette() *palette.Store { return a.store }

// Tick advances all layers by one frame in a fixed order, fires due
// timers, and publishes the fps estimate when a sampling window closes
func (a *App) Tick() {
	if a.disposed {
		return
	}
	a.galaxyL.Update()
	a.swarmL.Update()
	a.cubeL.Update()
	a.timers.Tick()

	if fps, ok := a.fps.Frame(); ok {
		a.bus.Publish(events.Event{
			Type:    events.EventFPSSample,
			Payload: &events.FPSSamplePayload{FPS: fps},
		})
	}
}

// PointerMoved routes a pointer position to both particle layers: the
// swarm in screen space, the galaxy through the inverse projection onto
// the disc plane
func (a *App) PointerMoved(x, y int) {
	a.bus.Publish(events.Event{
		Type:    events.EventPointerMoved,
		Payload: &events.PointerPayload{X: x, Y: y},
	})

	a.swarmL.SetPointer(float64(x), float64(y))

	a.camera.Distance = a.galaxyL.CameraDist()
	wx, wz := a.camera.UnprojectToDisc(float64(x), float64(y))
	a.galaxyL.SetPointer(wx, wz)
}

// PointerLeft clears pointer influence on both layers
func (a *App) PointerLeft() {
	a.swarmL.ClearPointer()
	a.galaxyL.ClearPointer()
}

// Click handles a pointer press: the first click ignites the galaxy;
// later clicks pulse the bloom and sample the color under the pointer
func (a *App) Click(x, y int) {
	a.bus.Publish(events.Event{
		Type:    events.EventPointerClicked,
		Payload: &events.PointerPayload{X: x, Y: y},
	})

	if a.galaxyL.Phase() == galaxy.PhaseSingularity {
		a.galaxyL.Ignite()
		a.requestSound(audio.SoundPluck)
		return
	}

	a.galaxyL.PulseBloom(parameter.BloomClickSpike)
	a.bus.Publish(events.Event{
		Type:    events.EventBloomPulse,
		Payload: &events.BloomPulsePayload{Strength: parameter.BloomClickSpike},
	})

	a.camera.Distance = a.galaxyL.CameraDist()
	if i, ok := a.pickGalaxyPoint(float64(x), float64(y)); ok {
		sample := a.galaxyL.Sample(i)
		a.bus.Publish(events.Event{
			Type:    events.EventColorSampled,
			Payload: &events.ColorSampledPayload{Sample: sample},
		})
		a.store.Add(sample)
		a.requestSound(audio.SoundClick)
	}
}

// pickGalaxyPoint returns the cloud point nearest the screen position,
// or false when none projects within the pick radius
func (a *App) pickGalaxyPoint(px, py float64) (int, bool) {
	c := a.galaxyL.Cloud()
	best := -1
	bestDist := parameter.GalaxyPickRadius
	for i := 0; i < c.N; i++ {
		sx, sy, _, ok := a.camera.Project(c.Pos[i])
		if !ok {
			continue
		}
		d := vmath.V2Dist(vmath.Vec2{X: sx, Y: sy}, vmath.Vec2{X: px, Y: py})
		if d <= bestDist {
			best = i
			bestDist = d
		}
	}
	return best, best >= 0
}

// CycleSwarmMode advances the swarm layout and announces the change
func (a *App) CycleSwarmMode() swarm.LayoutMode {
	mode := a.swarmL.CycleMode()
	a.bus.Publish(events.Event{
		Type:    events.EventModeChanged,
		Payload: &events.ModeChangedPayload{Mode: int(mode), Name: mode.String()},
	})
	return mode
}

// CycleCubeSpace advances the cube's layout color space
func (a *App) CycleCubeSpace() cube.ColorSpace {
	return a.cubeL.CycleSpace()
}

// TogglePause freezes or resumes demo time. Input stays live while
// paused so the demo can always be resumed or quit
func (a *App) TogglePause() bool {
	if a.clock.IsPaused() {
		a.clock.Resume()
	} else {
		a.clock.Pause()
	}
	return a.clock.IsPaused()
}

// Resize propagates new screen dimensions to the camera and the swarm
func (a *App) Resize(width, height int) {
	a.width = width
	a.height = height
	a.camera.Resize(width, height)
	a.swarmL.Resize(width, height)
}

// LoadPalette restores the cached palette from disk. Corruption is
// logged and degrades to an empty palette
func (a *App) LoadPalette() {
	samples, err := a.cache.Load()
	if err != nil {
		log.Printf("palette cache load failed: %v", err)
		return
	}
	if len(samples) > 0 {
		a.store.Replace(samples)
	}
}

// ApplyNamedColors merges fetched named colors into the palette,
// skipping entries with malformed hex values
func (a *App) ApplyNamedColors(colors []palette.NamedColor) {
	for _, nc := range colors {
		sample, err := nc.Sample()
		if err != nil {
			log.Printf("named color %q rejected: %v", nc.Name, err)
			continue
		}
		a.store.Add(sample)
	}
}

func (a *App) requestSound(id audio.SoundID) {
	a.bus.Publish(events.Event{
		Type:    events.EventSoundRequest,
		Payload: &events.SoundRequestPayload{Sound: id},
	})
}

// Dispose tears the session down: timers first so no deferred callback
// can touch a disposed layer, then layers, audio, and the bus
func (a *App) Dispose() {
	if a.disposed {
		return
	}
	a.disposed = true

	a.timers.CancelAll()
	a.bus.Unsubscribe(a.formationSub)
	a.bus.Unsubscribe(a.grownSub)
	a.bus.Unsubscribe(a.paletteSub)
	a.bus.Unsubscribe(a.soundSub)

	a.galaxyL.Dispose()
	a.swarmL.Dispose()
	a.cubeL.Dispose()
	a.player.Close()
	a.bus.Clear()
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ylc3000/galaxy/lab"
	"github.com/ylc3000/galaxy/palette"
	"github.com/ylc3000/galaxy/parameter"
	"github.com/ylc3000/galaxy/render"
)

var (
	pointsFlag  = flag.Int("points", parameter.GalaxyPointCount, "galaxy point count")
	swarmFlag   = flag.Int("swarm", parameter.SwarmParticleCount, "swarm particle count")
	cacheFlag   = flag.String("cache", parameter.PaletteCacheFile, "palette cache file path")
	seedFlag    = flag.Int64("seed", 0, "random seed (0 = time-based)")
	noAudioFlag = flag.Bool("no-audio", false, "disable procedural sound")
	noFetchFlag = flag.Bool("no-fetch", false, "skip the named-palette fetch")
	logFlag     = flag.String("log", "", "debug log file path (default: discard)")
)

func main() {
	flag.Parse()

	// Logging cannot go to the terminal while the screen is owned by tcell
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the stack trace prints
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nCRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	width, height := screen.Size()
	app := lab.New(lab.Config{
		Width:        width,
		Height:       height,
		GalaxyPoints: *pointsFlag,
		SwarmCount:   *swarmFlag,
		CachePath:    *cacheFlag,
		Rand:         rand.New(rand.NewSource(seed)),
	})
	defer app.Dispose()

	if !*noAudioFlag {
		if err := app.Player().Init(); err != nil {
			// Non-fatal, the demo runs silent
			log.Printf("audio initialization failed: %v", err)
		}
	}

	app.LoadPalette()

	// One-shot named-palette fetch; the result joins the frame loop
	// through a channel so all state stays on one goroutine
	fetchChan := make(chan []palette.NamedColor, 1)
	if !*noFetchFlag {
		go fetchPalette(fetchChan)
	}

	orch := render.NewOrchestrator(screen, width, height)
	orch.Register(render.NewGalaxyRenderer(app.Galaxy(), app.Camera()), render.PriorityGalaxy)
	orch.Register(render.NewSwarmRenderer(app.Swarm()), render.PrioritySwarm)
	orch.Register(render.NewCubeRenderer(app.Cube(), app.Camera()), render.PriorityCube)

	hud := render.NewHUDRenderer(app.Bus(), app.Galaxy(), app.Swarm(), app.Cube())
	defer hud.Dispose()
	orch.Register(hud, render.PriorityHUD)

	run(screen, app, orch, fetchChan)
}

func fetchPalette(out chan<- []palette.NamedColor) {
	ctx, cancel := context.WithTimeout(context.Background(), parameter.PaletteFetchTimeout)
	defer cancel()

	colors, err := palette.FetchNamed(ctx, http.DefaultClient, parameter.PaletteFetchURL)
	if err != nil {
		// The demo continues with the cached palette
		log.Printf("named palette fetch failed: %v", err)
		return
	}
	out <- colors
}

func run(screen tcell.Screen, app *lab.App, orch *render.Orchestrator, fetchChan <-chan []palette.NamedColor) {
	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !handleInput(screen, app, orch, ev) {
				return
			}

		case colors := <-fetchChan:
			app.ApplyNamedColors(colors)

		case <-ticker.C:
			app.Tick()
			orch.RenderFrame()
		}
	}
}

func handleInput(screen tcell.Screen, app *lab.App, orch *render.Orchestrator, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'm':
				app.CycleSwarmMode()
			case 'c':
				app.CycleCubeSpace()
			case 'p':
				app.TogglePause()
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		if ev.Buttons()&tcell.Button1 != 0 {
			app.Click(x, y)
		} else {
			app.PointerMoved(x, y)
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		app.Resize(w, h)
		orch.Resize(w, h)
	}
	return true
}

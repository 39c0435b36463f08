// Command petterm runs the companion in a terminal. The mouse drives it
// exactly like the hub window: move to lead, click the pet to play, click
// the station boxes to park or feed it.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/automoto/pethub/assets"
	"github.com/automoto/pethub/config"
	"github.com/automoto/pethub/shared/companion"
	"github.com/automoto/pethub/shared/layout"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := config.ApplyEnv(); err != nil {
		log.Printf("Warning: Ignoring environment overrides: %v", err)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "petterm: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	hub, err := assets.LoadHub(config.Hub.MapPath)
	if err != nil {
		screen.Fini()
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApp(screen, hub)
	err = app.run(ctx)
	screen.Fini()
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

var errQuit = errors.New("quit")

// app owns the terminal and the mounted session.
type app struct {
	screen tcell.Screen
	hub    *layout.Hub

	mu       sync.Mutex
	viewport companion.Viewport
	species  companion.Species
	session  *companion.Session
	latest   companion.Snapshot
	mounted  bool

	frames chan companion.Snapshot
	mouse  mouseState
}

func newApp(screen tcell.Screen, hub *layout.Hub) *app {
	w, h := screen.Size()
	return &app{
		screen:   screen,
		hub:      hub,
		viewport: cellsToViewport(w, h),
		species:  config.Pet.DefaultSpecies,
		frames:   make(chan companion.Snapshot, 1),
	}
}

func (a *app) currentViewport() companion.Viewport {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.viewport
}

func (a *app) run(parent context.Context) error {
	g, ctx := errgroup.WithContext(parent)

	if config.Pet.EnabledByDefault {
		a.mount(ctx)
	}
	defer a.unmount()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ev := <-events:
				if err := a.handle(ctx, ev); err != nil {
					return err
				}
			}
		}
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case snap := <-a.frames:
				a.mu.Lock()
				a.latest = snap
				a.mu.Unlock()
				a.draw()
			}
		}
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) && parent.Err() != nil {
		return nil
	}
	return err
}

// mount starts a fresh session; a remount always starts from the spawn point.
func (a *app) mount(ctx context.Context) {
	a.mu.Lock()
	if a.mounted {
		a.mu.Unlock()
		return
	}
	a.mounted = true
	a.mu.Unlock()

	s := companion.Mount(ctx, companion.Options{
		Tuning:   config.Pet.Tuning,
		Viewport: a.currentViewport,
		Anchors:  a.hub.Anchors(a.currentViewport),
		OnFrame:  a.publish,
	})

	a.mu.Lock()
	a.session = s
	a.mu.Unlock()
}

func (a *app) unmount() {
	a.mu.Lock()
	s := a.session
	a.session, a.mounted = nil, false
	a.mu.Unlock()

	if s != nil {
		s.Unmount()
	}
	a.draw()
}

// publish keeps only the newest frame for the renderer.
func (a *app) publish(snap companion.Snapshot) {
	select {
	case a.frames <- snap:
	default:
		select {
		case <-a.frames:
		default:
		}
		select {
		case a.frames <- snap:
		default:
		}
	}
}

func (a *app) send(ev companion.Event) {
	a.mu.Lock()
	s := a.session
	a.mu.Unlock()
	if s != nil {
		s.Send(ev)
	}
}

func (a *app) handle(ctx context.Context, ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := a.screen.Size()
		a.mu.Lock()
		a.viewport = cellsToViewport(w, h)
		a.mu.Unlock()
		a.screen.Sync()
		a.draw()

	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
			return errQuit
		case ev.Rune() == 's':
			a.mu.Lock()
			a.species = a.species.Next()
			a.mu.Unlock()
			a.draw()
		case ev.Rune() == 'p':
			a.mu.Lock()
			mounted := a.mounted
			a.mu.Unlock()
			if mounted {
				a.unmount()
			} else {
				a.mount(ctx)
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		for _, pev := range a.mouse.translate(x, y, ev.Buttons()&tcell.Button1 != 0) {
			a.send(pev)
		}
	}
	return nil
}

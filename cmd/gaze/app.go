package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/gaze/archive"
	"github.com/lixenwraith/gaze/audio"
	"github.com/lixenwraith/gaze/content"
	"github.com/lixenwraith/gaze/core"
	"github.com/lixenwraith/gaze/engine"
	"github.com/lixenwraith/gaze/input"
	"github.com/lixenwraith/gaze/metrics"
	"github.com/lixenwraith/gaze/parameter"
	"github.com/lixenwraith/gaze/render"
)

// app is the interactive session: one screen, one constellation, overlays on top
type app struct {
	screen   tcell.Screen
	renderer *render.Renderer
	vp       render.Viewport
	cellW    float64
	cellH    float64

	gaze  *engine.Gaze
	mouse *input.Mouse
	store *archive.Store

	form         *render.Form
	formOpen     bool
	thread       *content.Item
	threadScroll int

	status    string
	statusErr bool
	statusAt  time.Time

	clock  engine.Clock
	copy   func(string) error
	logger *zap.Logger
}

func newApp(screen tcell.Screen, g *engine.Gaze, store *archive.Store, cellW, cellH float64, logger *zap.Logger) *app {
	a := &app{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		cellW:    cellW,
		cellH:    cellH,
		gaze:     g,
		store:    store,
		form:     render.NewForm(),
		clock:    engine.NewTimeProvider(),
		copy:     clipboard.WriteAll,
		logger:   logger,
	}
	a.vp = render.NewViewport(0, 0, cellW, cellH)
	a.mouse = input.NewMouse(g.Controller(), a.vp)
	a.resize()
	return a
}

func (a *app) resize() {
	cols, rows := a.screen.Size()
	a.vp = render.NewViewport(cols, rows, a.cellW, a.cellH)
	a.mouse.SetProjector(a.vp)
}

func (a *app) setStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
	a.statusAt = a.clock.Now()
}

// handle applies one terminal event, returns false to quit
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()

	case *tcell.EventMouse:
		a.handleMouse(ev)

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		switch {
		case a.formOpen:
			a.handleFormKey(ev)
		case a.thread != nil:
			a.handleThreadKey(ev)
		default:
			return a.handleConstellationKey(ev)
		}
	}
	return true
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	if a.formOpen {
		return
	}
	if a.thread != nil {
		// Clicking anywhere closes the thread, like a backdrop
		if ev.Buttons()&tcell.Button1 != 0 {
			a.thread = nil
		}
		return
	}

	res := a.mouse.Handle(ev, a.gaze.Nodes())
	if res.OpenedID == "" {
		return
	}
	if item, ok := a.gaze.Open(res.OpenedID); ok {
		a.thread = &item
		a.threadScroll = 0
	}
}

func (a *app) handleConstellationKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'n':
			a.formOpen = true
		}
	}
	return true
}

func (a *app) handleThreadKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.thread = nil
	case tcell.KeyUp:
		a.threadScroll = max(a.threadScroll-1, 0)
	case tcell.KeyDown:
		a.threadScroll++
	case tcell.KeyPgUp:
		a.threadScroll = max(a.threadScroll-10, 0)
	case tcell.KeyPgDn:
		a.threadScroll += 10
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			a.thread = nil
		case 'y':
			a.shareThread()
		case 'a':
			a.archiveThread()
		}
	}
}

func (a *app) shareThread() {
	if err := a.copy(content.ThreadText(*a.thread)); err != nil {
		a.logger.Warn("clipboard write failed", zap.Error(err))
		a.setStatus("Clipboard unavailable", true)
		return
	}
	a.setStatus("Thread copied to clipboard", false)
}

func (a *app) archiveThread() {
	if a.store == nil {
		a.setStatus("Archive disabled, set an archive path", true)
		return
	}
	if err := a.store.Archive(context.Background(), *a.thread, a.clock.Now()); err != nil {
		a.logger.Error("archive failed", zap.String("id", a.thread.ID), zap.Error(err))
		a.setStatus("Archive failed", true)
		return
	}
	a.setStatus(fmt.Sprintf("Archived %q", a.thread.Title), false)
}

func (a *app) handleFormKey(ev *tcell.EventKey) {
	switch a.form.HandleKey(ev) {
	case render.FormCancel:
		a.formOpen = false
	case render.FormSubmit:
		a.publish()
	}
}

func (a *app) publish() {
	_, item, err := a.gaze.Publish(a.form.Item(), a.vp.World())
	if err != nil {
		msg := err.Error()
		if errors.Is(err, content.ErrInvalidItem) {
			msg = "Cannot publish: " + msg
		}
		a.setStatus(msg, true)
		return
	}
	a.form.Reset()
	a.formOpen = false
	a.setStatus(fmt.Sprintf("Published %q", item.Title), false)
}

// tick advances one frame and redraws
func (a *app) tick() {
	a.gaze.Frame(a.vp.World())

	if a.status != "" && a.clock.Now().Sub(a.statusAt) > parameter.StatusMessageTimeout {
		a.status = ""
	}

	scene := render.Scene{
		Nodes:        a.gaze.Nodes(),
		Edges:        a.gaze.Edges(),
		HoveredID:    a.gaze.Controller().HoveredID(),
		DraggedID:    a.gaze.Controller().DraggedID(),
		Status:       a.status,
		StatusError:  a.statusErr,
		Thread:       a.thread,
		ThreadScroll: a.threadScroll,
	}
	if a.formOpen {
		scene.Form = a.form
	}
	a.renderer.Draw(a.vp, scene)
}

// runTUI owns the terminal for the life of the session
func runTUI(ctx context.Context, opts *options) error {
	cfg := opts.cfg
	logger := opts.logger

	store, err := opts.openArchive()
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	items, err := opts.loadItems(ctx, store)
	if err != nil {
		return err
	}

	listeners := engine.Listeners{}
	if cfg.Metrics.Addr != "" {
		collector := metrics.NewCollector("gaze")
		srv := metrics.NewServer(collector, logger)
		if err := srv.Start(cfg.Metrics.Addr); err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		listeners = append(listeners, collector)
	}
	if cfg.Audio.Enabled {
		sound := audio.NewSoundManager(cfg.Audio)
		if err := sound.Initialize(); err != nil {
			// Audio is optional
			logger.Warn("audio unavailable", zap.Error(err))
		} else {
			defer sound.Cleanup()
			listeners = append(listeners, sound)
		}
	}
	if store != nil {
		listeners = append(listeners, archive.NewRecorder(store, logger))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	core.RegisterCrashTerminal(screen)
	defer func() {
		core.RegisterCrashTerminal(nil)
		screen.Fini()
	}()
	screen.EnableMouse()
	screen.HideCursor()

	g := engine.New(engine.Options{
		EdgeThreshold:  cfg.Graph.EdgeThreshold,
		ClickThreshold: cfg.Physics.ClickThreshold,
		Rand:           opts.rng(),
		Logger:         logger,
		Listener:       listeners,
	})
	a := newApp(screen, g, store, cfg.Render.CellWidth, cfg.Render.CellHeight, logger)
	if err := g.Seed(items, a.vp.World()); err != nil {
		return err
	}
	logger.Info("session started", zap.Int("nodes", len(items)), zap.Int("cols", a.vp.Cols), zap.Int("rows", a.vp.Rows))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, parameter.EventQueueSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	err = engine.Run(ctx, cfg.FrameInterval(), events, a.handle, a.tick)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	logger.Info("session ended", zap.Uint64("frames", g.FrameCount()), zap.Uint64("skipped", g.SkippedFrames()))
	return err
}

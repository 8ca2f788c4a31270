package main

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/dshills/penstroke/internal/backend"
	"github.com/dshills/penstroke/internal/config"
	"github.com/dshills/penstroke/internal/editor"
	"github.com/dshills/penstroke/internal/geom"
	"github.com/dshills/penstroke/internal/gesture"
	"github.com/dshills/penstroke/internal/hittest"
	"github.com/dshills/penstroke/internal/input/key"
	"github.com/dshills/penstroke/internal/input/mouse"
	"github.com/dshills/penstroke/internal/plugin/lua"
	"github.com/dshills/penstroke/internal/scene"
	"github.com/dshills/penstroke/internal/tool"
)

//go:embed scripts/*.lua
var builtinScripts embed.FS

// builtinKinds are the gestures served by the embedded scripts unless the
// config names a replacement.
var builtinKinds = map[gesture.Kind]string{
	gesture.KindEllipseCreate:   "scripts/ellipse.lua",
	gesture.KindRectangleCreate: "scripts/rectangle.lua",
	gesture.KindPencilCreate:    "scripts/pencil.lua",
}

// errQuit ends the event loop normally.
var errQuit = errors.New("quit")

// app is the demo editor: a tcell terminal driving one dispatcher.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	level  *slog.LevelVar
	logOut io.Closer

	term       *backend.Terminal
	store      *scene.Memory
	state      *editor.Memory
	oracle     *hittest.Geometric
	registry   *gesture.Registry
	dispatcher *tool.Dispatcher
	plugins    *lua.Plugins
	watcher    *config.Watcher

	message string

	// started is set once the terminal has been initialized.
	started bool

	shutdownOnce sync.Once
}

func newApp(cfg *config.Config, path string) (*app, error) {
	term, err := backend.NewTerminal()
	if err != nil {
		return nil, fmt.Errorf("create terminal: %w", err)
	}

	logFile, err := openLog(cfg)
	if err != nil {
		return nil, err
	}

	a, err := newAppWithTerminal(cfg, term, logFile)
	if err != nil {
		_ = logFile.Close()
		return nil, err
	}
	a.logOut = logFile

	w, err := config.NewWatcher(path)
	if err != nil {
		a.logger.Warn("config watcher unavailable", "path", path, "error", err)
	} else {
		a.watcher = w
		go a.forwardReloads(w)
	}

	if err := term.Init(); err != nil {
		a.shutdown()
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	a.started = true
	return a, nil
}

// newAppWithTerminal builds everything except the terminal setup and the
// config watcher.
func newAppWithTerminal(cfg *config.Config, term *backend.Terminal, logOut io.Writer) (*app, error) {
	level := new(slog.LevelVar)
	level.Set(cfg.LogLevel())
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	store := scene.NewMemory()
	if err := seedScene(store); err != nil {
		return nil, fmt.Errorf("seed scene: %w", err)
	}
	state := editor.NewMemory(store)
	state.SetToolMode(cfg.ToolMode())

	oracle := hittest.NewGeometric(store, cfg.HitTestConfig())
	registry := gesture.DefaultRegistry()

	plugins := lua.Install(registry, cfg.PluginScripts(), logger)
	for kind, name := range builtinKinds {
		if slices.Contains(plugins.Kinds(), kind) {
			continue
		}
		code, err := builtinScripts.ReadFile(name)
		if err != nil {
			return nil, err
		}
		s, err := lua.LoadScriptString(name, string(code), lua.WithLogger(logger.With("plugin", name)))
		if err != nil {
			return nil, err
		}
		plugins.Add(registry, kind, s)
	}

	dispatcher := tool.NewDispatcher(state, oracle,
		tool.WithLogger(logger),
		tool.WithRegistry(registry),
		tool.WithClickConfig(cfg.ClickConfig()),
		tool.WithHitPolicy(cfg.HitPolicy()),
	)
	dispatcher.OnChange(func(from, to gesture.Variant) {
		logger.Debug("gesture change", "from", from.Kind().String(), "to", to.Kind().String())
	})

	logger.Info("penstroke started", "version", version, "config", cfg.String())

	return &app{
		cfg:        cfg,
		logger:     logger,
		level:      level,
		term:       term,
		store:      store,
		state:      state,
		oracle:     oracle,
		registry:   registry,
		dispatcher: dispatcher,
		plugins:    plugins,
	}, nil
}

// openLog opens the configured log file, or the XDG state location.
func openLog(cfg *config.Config) (*os.File, error) {
	path := cfg.Log.File
	if path == "" {
		p, err := config.DefaultLogPath()
		if err != nil {
			return nil, fmt.Errorf("locate log file: %w", err)
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// forwardReloads hands watcher results to the event loop.
func (a *app) forwardReloads(w *config.Watcher) {
	for {
		select {
		case r, ok := <-w.Reloads():
			if !ok {
				return
			}
			_ = a.term.PostInterrupt(r)
		case err, ok := <-w.Errors():
			if !ok {
				return
			}
			a.logger.Warn("config watcher error", "error", err)
		}
	}
}

// run is the event loop. It returns nil on quit.
func (a *app) run() error {
	for {
		a.draw()

		ev, ok := a.term.PollEvent()
		if !ok {
			return nil
		}
		if err := a.handle(ev); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
	}
}

// handle processes one event. Fatal dispatcher faults are returned;
// gesture errors are shown on the status line.
func (a *app) handle(ev backend.Event) error {
	var err error
	switch ev.Type {
	case backend.EventMouse:
		err = a.dispatcher.HandleMouse(ev.Mouse)
	case backend.EventKey:
		err = a.handleKey(ev.Key)
	case backend.EventResize:
		a.term.Sync()
	case backend.EventInterrupt:
		switch d := ev.Data.(type) {
		case config.Reload:
			a.applyReload(d)
		case error:
			return d
		}
	}

	if err == nil || errors.Is(err, errQuit) {
		return err
	}
	if fault := a.dispatcher.Fault(); fault != nil {
		return fmt.Errorf("dispatcher stopped: %w", fault)
	}
	a.message = err.Error()
	return nil
}

// handleKey routes keys to an active gesture, and otherwise to the editor
// commands.
func (a *app) handleKey(ev key.Event) error {
	if a.dispatcher.Active() {
		return a.dispatcher.HandleKey(ev)
	}

	if ev.IsEscape() {
		a.state.SetEditPathFocus(nil)
		return nil
	}
	if ev.Modifiers.HasCtrl() && ev.Rune == 'c' {
		return errQuit
	}
	if !ev.IsRune() {
		return a.dispatcher.HandleKey(ev)
	}

	switch ev.Rune {
	case 'v':
		a.state.SetToolMode(editor.ToolSelection)
	case 'e':
		a.state.SetToolMode(editor.ToolEllipse)
	case 'r':
		a.state.SetToolMode(editor.ToolRectangle)
	case 'p':
		a.state.SetToolMode(editor.ToolPencil)
	case 'n':
		// The path is created by the next press.
		a.state.SetToolMode(editor.ToolSelection)
		a.state.SetEditPathFocus(editor.NewFocus(""))
	case 'R':
		a.state.SetRotateInProgress(!a.state.RotateInProgress())
	case 'T':
		a.state.SetTransformInProgress(!a.state.TransformInProgress())
	case 'q':
		return errQuit
	default:
		return a.dispatcher.HandleKey(ev)
	}
	return nil
}

// applyReload installs the settings that can change while running.
func (a *app) applyReload(r config.Reload) {
	if r.Err != nil {
		a.logger.Warn("config reload failed", "error", r.Err)
		a.message = "config: " + r.Err.Error()
		return
	}

	cfg := r.Config
	a.cfg = cfg
	a.level.Set(cfg.LogLevel())
	a.dispatcher.SetClickConfig(cfg.ClickConfig())
	a.dispatcher.SetHitPolicy(cfg.HitPolicy())
	a.oracle.SetConfig(cfg.HitTestConfig())

	a.logger.Info("config reloaded", "config", cfg.String())
	a.message = "config reloaded"
}

func (a *app) draw() {
	a.term.Render(backend.View{
		Scene:     a.store,
		Selection: a.state.Selection(),
		Focus:     a.state.EditPathFocus(),
		Band:      a.band(),
		Status:    a.statusLine(),
	})
}

// band returns the rubber band of an active batch selection.
func (a *app) band() *geom.Rect {
	if !a.dispatcher.Active() {
		return nil
	}
	g := a.dispatcher.Current()
	switch g.Variant().Kind() {
	case gesture.KindBatchSelectItems, gesture.KindBatchSelectSegments:
	default:
		return nil
	}
	tracked, ok := g.(interface{ Drag() *mouse.DragTracker })
	if !ok || !tracked.Drag().Dragged() {
		return nil
	}
	r := tracked.Drag().Rect()
	return &r
}

func (a *app) statusLine() string {
	focus := "-"
	if f := a.state.EditPathFocus(); f != nil {
		focus = string(f.LayerID)
		if focus == "" {
			focus = "(new)"
		}
	}

	flags := ""
	if a.state.RotateInProgress() {
		flags += " rotate"
	}
	if a.state.TransformInProgress() {
		flags += " transform"
	}

	line := fmt.Sprintf(" %s | %s | selected %d | focus %s%s",
		a.state.ToolMode(), a.dispatcher.Current().Variant().Kind(),
		a.state.Selection().Len(), focus, flags)
	if a.message != "" {
		line += " | " + a.message
	}
	return line
}

// quit stops the event loop from another goroutine.
func (a *app) quit() {
	_ = a.term.PostInterrupt(errQuit)
}

func (a *app) shutdown() {
	a.shutdownOnce.Do(func() {
		if a.watcher != nil {
			_ = a.watcher.Close()
		}
		_ = a.plugins.Close()
		if a.started {
			a.term.Shutdown()
		}
		a.logger.Info("penstroke stopped")
		if a.logOut != nil {
			_ = a.logOut.Close()
		}
	})
}

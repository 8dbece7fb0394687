// Package game runs one maze-friend session: the player chats with a friend
// lost in a maze, steering them to the exit before the chaser catches up.
package game

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"maze-friend/internal/chat"
	"maze-friend/internal/command"
	"maze-friend/internal/component"
	"maze-friend/internal/config"
	"maze-friend/internal/gamemap"
	"maze-friend/internal/generate"
	"maze-friend/internal/menu"
	"maze-friend/internal/monologue"
	"maze-friend/internal/render"
	"maze-friend/internal/settings"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Scene tracks the main state machine.
type Scene uint8

const (
	ScenePlaying Scene = iota // chat open, friend in the maze
	SceneWon                  // friend reached the exit
	SceneCaught               // chaser reached the friend
	SceneQuit                 // player left
)

func (s Scene) String() string {
	switch s {
	case ScenePlaying:
		return "playing"
	case SceneWon:
		return "escaped"
	case SceneCaught:
		return "caught"
	case SceneQuit:
		return "quit"
	}
	return "unknown"
}

// Options configures a Game.
type Options struct {
	Config *config.Config // nil uses config.Default()
	Sound  settings.Sound
	// SettingsPath is where sound changes are saved; empty disables saving.
	SettingsPath string
	Seed         int64
	Player       string
	Logger       *slog.Logger // nil discards
	// Limiter throttles chat submits; nil means unlimited.
	Limiter *rate.Limiter
	// SaveRuns appends finished runs to runs.jsonl.
	SaveRuns bool
}

// Game is the top-level orchestrator for one player.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	cfg      *config.Config
	table    command.Table
	opts     Options
	log      *slog.Logger
	rng      *rand.Rand

	gmap   *gamemap.GameMap
	mover  *command.Mover
	chaser *Chaser
	chat   *chat.Log
	input  chat.Input
	menu   *menu.Menu
	sound  settings.Sound
	scene  Scene

	ctx           context.Context
	queue         *monologue.Queue
	lines         <-chan string // monologue; nil once drained
	stopMonologue context.CancelFunc

	runLog  RunLog
	started time.Time
}

// New creates a Game drawing on screen. The screen must already be
// initialized; the caller owns it.
func New(screen tcell.Screen, opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	table, err := command.NewTable(cfg.Commands)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		cfg:      cfg,
		table:    table,
		opts:     opts,
		log:      logger,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		sound:    opts.Sound,
		ctx:      context.Background(),
	}
	g.menu = menu.New(g.sound)
	g.menu.OnVolumeUpdate = func(v float64) {
		g.log.Debug("volume changed", "volume", v)
		g.notify()
	}
	g.menu.OnChange = g.applySound
	g.resetForRun()
	return g, nil
}

// resetForRun generates a fresh maze and clears all per-run state.
func (g *Game) resetForRun() {
	seed := g.rng.Int63()
	gmap := generate.Generate(&generate.Config{
		MapWidth:  g.cfg.Maze.Width,
		MapHeight: g.cfg.Maze.Height,
		Rand:      rand.New(rand.NewSource(seed)),
	})
	g.loadMaze(gmap, seed)
}

// loadMaze places the friend and the chaser on gmap's start cell.
func (g *Game) loadMaze(gmap *gamemap.GameMap, seed int64) {
	g.gmap = gmap
	g.scene = ScenePlaying
	g.chat = chat.NewLog(g.cfg.Chat.MaxMessages)
	g.input.Clear()
	g.input.SetReadOnly(false)
	g.chaser = NewChaser(gmap.Start, g.cfg.Chaser.HeadStart)

	// Past the end of a run every step is refused, so the rest of the
	// instruction stalls in place.
	walls := command.WallsFunc(func(p component.Position) bool {
		return g.scene != ScenePlaying || g.gmap.IsBlocked(p)
	})
	g.mover = command.NewMover(g.table, walls, gmap.Start, command.Config{
		RunLength: gmap.Width,
		MaxCount:  g.cfg.MaxCount,
	}, command.Hooks{
		OnMove:     g.onMove,
		OnResponse: g.onResponse,
	})

	g.runLog = RunLog{
		ID:         uuid.New(),
		Player:     g.opts.Player,
		Seed:       seed,
		MazeWidth:  gmap.Width,
		MazeHeight: gmap.Height,
	}
	g.started = time.Now()
	g.log.Info("run started", "run", g.runLog.ID, "seed", seed, "width", gmap.Width, "height", gmap.Height)
}

// startMonologue schedules the opening lines and locks the input until the
// last one has been said.
func (g *Game) startMonologue() {
	if g.stopMonologue != nil {
		g.stopMonologue()
	}
	ctx, cancel := context.WithCancel(g.ctx)
	g.stopMonologue = cancel
	g.queue = monologue.New(g.cfg.Monologue.Lines, g.cfg.Monologue.Interval)
	g.lines = g.queue.Run(ctx)
	g.input.SetReadOnly(true)
}

// speak delivers one monologue line, unlocking input once the queue closes.
func (g *Game) speak(line string, ok bool) {
	if !ok {
		g.lines = nil
		g.input.SetReadOnly(false)
		return
	}
	if g.chat.Add(chat.Friend, line) {
		g.notify()
	}
}

// holdMonologue stops or restarts the monologue clock.
func (g *Game) holdMonologue(paused bool) {
	if g.queue != nil {
		g.queue.Pause(paused)
	}
}

// Scene returns the current scene.
func (g *Game) Scene() Scene { return g.scene }

// Friend returns the friend's cell.
func (g *Game) Friend() component.Position { return g.mover.Position() }

// Run drives the session until the player quits, the screen closes, or ctx
// is done.
func (g *Game) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g.ctx = ctx
	g.startMonologue()

	events := make(chan tcell.Event, 32)
	// PollEvent only returns nil once the screen is finalized, so the caller
	// must Fini the screen to stop this goroutine.
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	g.draw()
	for {
		// Lines already due wait until the menu closes.
		lines := g.lines
		if g.menu.IsOpen() {
			lines = nil
		}
		select {
		case <-ctx.Done():
			g.log.Info("session ended", "run", g.runLog.ID, "scene", g.scene)
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				g.screen.Sync()
			case *tcell.EventKey:
				if g.HandleKey(ev) {
					return nil
				}
			}
		case line, ok := <-lines:
			g.speak(line, ok)
		}
		g.draw()
	}
}

// HandleKey applies one key press and reports whether the session is over.
func (g *Game) HandleKey(ev *tcell.EventKey) bool {
	if g.scene != ScenePlaying {
		switch endAction(ev) {
		case ActionRestart:
			g.restart()
		case ActionQuit:
			g.scene = SceneQuit
			return true
		}
		return false
	}

	if g.menu.IsOpen() {
		switch g.menu.Handle(keyToMenu(ev)) {
		case menu.ResultResumed:
			g.chat.SetEnabled(true)
			g.holdMonologue(false)
		case menu.ResultQuit:
			g.finish(SceneQuit)
			return true
		}
		return false
	}

	switch keyToAction(ev) {
	case ActionType:
		g.input.Insert(ev.Rune())
	case ActionBackspace:
		g.input.Backspace()
	case ActionSubmit:
		g.submit()
	case ActionMenu:
		g.menu.Open()
		g.chat.SetEnabled(false)
		g.holdMonologue(true)
	case ActionQuit:
		g.finish(SceneQuit)
		return true
	}
	return false
}

// restart begins a new run on a new maze, monologue included.
func (g *Game) restart() {
	g.resetForRun()
	g.startMonologue()
}

// submit sends the typed line to the friend.
func (g *Game) submit() {
	if g.input.ReadOnly() || strings.TrimSpace(g.input.Text()) == "" {
		return
	}
	if g.opts.Limiter != nil && !g.opts.Limiter.Allow() {
		g.log.Debug("submit throttled", "run", g.runLog.ID)
		return
	}
	text, ok := g.input.Submit()
	if !ok {
		return
	}
	g.chat.Add(chat.Player, text)
	g.runLog.Commands++

	results := g.mover.Interpret(text)
	g.log.Debug("command", "run", g.runLog.ID, "text", text, "results", len(results))
	if g.scene != ScenePlaying || len(results) == 0 {
		return
	}
	if last := results[len(results)-1]; last.Outcome != command.Moved {
		if g.chaser.Hesitate(g.mover.Position()) {
			g.finish(SceneCaught)
		}
	}
}

// onMove runs after every successful friend step.
func (g *Game) onMove(p component.Position) {
	if g.scene != ScenePlaying {
		return
	}
	g.runLog.Moves++
	if p == g.gmap.Exit {
		g.finish(SceneWon)
		return
	}
	if g.chaser.Follow(p) {
		g.finish(SceneCaught)
	}
}

// onResponse shows a friend reply as a chat bubble.
func (g *Game) onResponse(msg string) {
	if g.scene != ScenePlaying {
		return
	}
	switch msg {
	case command.MsgBlocked:
		g.runLog.Blocked++
	case command.MsgInvalid:
		g.runLog.Invalid++
	}
	if g.chat.Add(chat.Friend, msg) {
		g.notify()
	}
}

// finish freezes the run at its first ending and records it.
func (g *Game) finish(s Scene) {
	if g.scene != ScenePlaying {
		return
	}
	g.scene = s
	g.chat.SetEnabled(false)
	g.input.SetReadOnly(true)
	if g.stopMonologue != nil {
		g.stopMonologue()
	}
	g.lines = nil

	g.runLog.Outcome = s.String()
	g.runLog.Timestamp = time.Now()
	g.runLog.DurationSec = time.Since(g.started).Seconds()
	g.log.Info("run finished",
		"run", g.runLog.ID,
		"outcome", g.runLog.Outcome,
		"moves", g.runLog.Moves,
		"commands", g.runLog.Commands,
	)
	if g.opts.SaveRuns && s != SceneQuit {
		saveRunLog(g.runLog, g.log)
	}
}

// notify plays the chat notification when sound effects are on.
func (g *Game) notify() {
	if !g.sound.SFX || g.sound.Volume <= 0 {
		return
	}
	if err := g.screen.Beep(); err != nil {
		g.log.Debug("beep failed", "error", err)
	}
}

// applySound adopts new sound settings and persists them.
func (g *Game) applySound(s settings.Sound) {
	g.sound = s
	if g.opts.SettingsPath == "" {
		return
	}
	if err := settings.Save(g.opts.SettingsPath, s); err != nil {
		g.log.Warn("settings: save failed", "path", g.opts.SettingsPath, "error", err)
	}
}

// view collects the frame state for the renderer.
func (g *Game) view() render.View {
	v := render.View{
		Map:         g.gmap,
		Friend:      g.mover.Position(),
		Chaser:      g.chaser.Position(),
		ChaserAwake: g.chaser.Awake(),
		Bubbles:     g.chat.Bubbles(),
		Input:       g.input.Text(),
		InputLocked: g.input.ReadOnly() && g.scene == ScenePlaying,
		Steps:       g.runLog.Moves,
		Menu:        g.menu,
	}
	switch g.scene {
	case SceneWon:
		v.Ending = render.EndingEscaped
	case SceneCaught:
		v.Ending = render.EndingCaught
	}
	return v
}

func (g *Game) draw() {
	g.renderer.DrawFrame(g.view())
}

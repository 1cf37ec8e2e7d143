// Package ui is the interactive catalog: a lesson picker and a live
// lesson screen with tunable parameters and guided walkthroughs.
package ui

import (
	"time"

	"github.com/ananya-v/explorables/internal/canvas"
	"github.com/ananya-v/explorables/internal/config"
	"github.com/ananya-v/explorables/internal/lesson"
	"github.com/ananya-v/explorables/internal/sonify"
	"github.com/ananya-v/explorables/internal/tour"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	boardWidth  = 80
	boardHeight = 24
	seriesLen   = 64
)

type TickMsg time.Time

const (
	stateMenu = iota
	stateLesson
)

// App drives the whole TUI: menu state plus the active lesson screen.
type App struct {
	state  int
	cursor int

	registry *lesson.Registry
	ids      []string

	current lesson.Lesson
	board   *canvas.Canvas
	walk    *tour.Stepper

	paramCursor int
	paused      bool
	fps         int

	sound       *sonify.Engine
	audio       bool
	soundFailed bool

	width, height int
}

func NewApp(reg *lesson.Registry, cfg *config.Config) *App {
	app := &App{
		state:    stateMenu,
		registry: reg,
		ids:      reg.List(),
		board:    canvas.New(boardWidth, boardHeight),
		fps:      cfg.FPS,
		sound:    sonify.NewEngine(),
		width:    120,
		height:   30,
	}
	if app.fps <= 0 {
		app.fps = config.DefaultFPS
	}
	SetTheme(cfg.Theme)

	if cfg.Lesson != "" {
		if l, err := reg.Get(cfg.Lesson); err == nil {
			app.enter(l, cfg)
		}
	}
	return app
}

// enter switches to the lesson screen and applies any config overrides.
func (a *App) enter(l lesson.Lesson, cfg *config.Config) {
	a.current = l
	if cfg != nil {
		if cfg.Mode != "" {
			l.SetMode(cfg.Mode)
		}
		for name, v := range cfg.Params {
			l.SetParam(name, v)
		}
	}
	a.walk = tour.New(l.Tour())
	a.paramCursor = 0
	a.paused = false
	a.state = stateLesson
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(a.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (a *App) Init() tea.Cmd { return a.tick() }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	case TickMsg:
		if a.state == stateLesson && !a.paused {
			a.current.Advance(1.0 / float64(a.fps))
		}
		if a.state == stateLesson && a.audio {
			series := a.current.Series(seriesLen)
			if len(series) > 0 {
				lo, hi := series[0], series[0]
				for _, v := range series {
					if v < lo {
						lo = v
					}
					if v > hi {
						hi = v
					}
				}
				a.sound.SetValue(series[len(series)-1], lo, hi)
			}
		}
		return a, a.tick()
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.state == stateMenu {
		return a.menuKey(msg)
	}
	return a.lessonKey(msg)
}

func (a *App) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		a.sound.Stop()
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.ids)-1 {
			a.cursor++
		}
	case "enter", " ":
		if l, err := a.registry.Get(a.ids[a.cursor]); err == nil {
			a.enter(l, nil)
		}
	}
	return a, nil
}

func (a *App) lessonKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// walkthrough keys work whether or not the overlay is up; esc and
	// digits only mean something while it is open
	switch key {
	case "d":
		a.walk.Open()
		return a, nil
	case "n", "right":
		if a.walk.IsOpen() {
			a.walk.Next()
			return a, nil
		}
	case "p", "left":
		if a.walk.IsOpen() {
			a.walk.Prev()
			return a, nil
		}
	case "esc", "escape":
		if a.walk.IsOpen() {
			a.walk.Close()
		} else {
			a.leave()
		}
		return a, nil
	}
	if a.walk.IsOpen() && len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		a.walk.GoTo(int(key[0] - '1'))
		return a, nil
	}

	switch key {
	case "q", "ctrl+c":
		a.sound.Stop()
		return a, tea.Quit
	case " ":
		a.paused = !a.paused
	case "tab":
		if n := len(a.current.Params()); n > 0 {
			a.paramCursor = (a.paramCursor + 1) % n
		}
	case "up", "k":
		a.nudgeParam(1)
	case "down", "j":
		a.nudgeParam(-1)
	case "m":
		a.cycleMode()
	case "r":
		a.current.Reset()
		a.walk.Close()
	case "t":
		names := ThemeNames()
		for i, name := range names {
			if name == CurrentTheme.Name {
				SetTheme(names[(i+1)%len(names)])
				break
			}
		}
	case "s":
		a.toggleSound()
	}
	return a, nil
}

func (a *App) leave() {
	a.sound.Mute()
	a.state = stateMenu
}

func (a *App) nudgeParam(dir float64) {
	params := a.current.Params()
	if a.paramCursor >= len(params) {
		return
	}
	p := params[a.paramCursor]
	a.current.SetParam(p.Name, p.Value+dir*p.Step)
}

func (a *App) cycleMode() {
	modes := a.current.Modes()
	if len(modes) < 2 {
		return
	}
	cur := a.current.Mode()
	for i, m := range modes {
		if m == cur {
			a.current.SetMode(modes[(i+1)%len(modes)])
			return
		}
	}
	a.current.SetMode(modes[0])
}

func (a *App) toggleSound() {
	if a.audio {
		a.sound.Mute()
		a.audio = false
		return
	}
	if !a.sound.Active {
		if err := a.sound.Start(); err != nil {
			a.soundFailed = true
			return
		}
	}
	a.soundFailed = false
	a.audio = true
}

// Run starts the full-screen program.
func Run(reg *lesson.Registry, cfg *config.Config) error {
	_, err := tea.NewProgram(NewApp(reg, cfg), tea.WithAltScreen()).Run()
	return err
}

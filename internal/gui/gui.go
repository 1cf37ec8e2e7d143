// Package gui is the windowed front end: the same lessons as the TUI,
// rendered as anti-aliased curves instead of braille dots.
package gui

import (
	"fmt"
	"os"

	"github.com/ananya-v/explorables/internal/lesson"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)    // Deep Black
	ColAccent  = rl.NewColor(180, 180, 180, 255) // Soft White
	ColSelect  = rl.NewColor(255, 255, 255, 255) // Bright White
	ColText    = rl.NewColor(140, 140, 140, 255) // Neutral Gray
	ColTextDim = rl.NewColor(60, 60, 60, 255)    // Dark Gray (Subtle)
	ColGrid    = rl.NewColor(30, 30, 30, 255)    // Barely visible grid
)

const (
	winWidth    = 1280
	winHeight   = 720
	plotSamples = 400
)

type App struct {
	Registry *lesson.Registry
	Ids      []string

	Current  lesson.Lesson
	InMenu   bool
	Selected int
	ParamSel int
	Running  bool
}

func initWindow() {
	rl.InitWindow(winWidth, winHeight, "explorables")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func NewApp(reg *lesson.Registry, startLesson string) *App {
	app := &App{
		Registry: reg,
		Ids:      reg.List(),
		InMenu:   startLesson == "",
		Running:  true,
	}
	if startLesson != "" {
		if l, err := reg.Get(startLesson); err == nil {
			app.Current = l
			app.InMenu = false
		} else {
			app.InMenu = true
		}
	}
	return app
}

// Run opens the window on the named lesson, or on the picker when the
// name is empty, and blocks until the window closes.
func Run(reg *lesson.Registry, startLesson string) {
	initWindow()
	defer rl.CloseWindow()
	app := NewApp(reg, startLesson)
	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) {
		os.Exit(0)
	}

	if a.InMenu {
		if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
			a.Selected = (a.Selected + 1) % len(a.Ids)
		}
		if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
			a.Selected--
			if a.Selected < 0 {
				a.Selected = len(a.Ids) - 1
			}
		}
		if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) {
			if l, err := a.Registry.Get(a.Ids[a.Selected]); err == nil {
				a.Current = l
				a.ParamSel = 0
				a.InMenu = false
			}
		}
		return
	}

	if rl.IsKeyPressed(rl.KeyEscape) {
		a.InMenu = true
		return
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Current.Reset()
	}
	if rl.IsKeyPressed(rl.KeyM) {
		a.cycleMode()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		if n := len(a.Current.Params()); n > 0 {
			a.ParamSel = (a.ParamSel + 1) % n
		}
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
		a.nudgeParam(1)
	}
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
		a.nudgeParam(-1)
	}

	if a.Running {
		a.Current.Advance(1.0 / 60.0)
	}
}

func (a *App) cycleMode() {
	modes := a.Current.Modes()
	if len(modes) < 2 {
		return
	}
	cur := a.Current.Mode()
	for i, m := range modes {
		if m == cur {
			a.Current.SetMode(modes[(i+1)%len(modes)])
			return
		}
	}
}

func (a *App) nudgeParam(dir float64) {
	params := a.Current.Params()
	if a.ParamSel >= len(params) {
		return
	}
	p := params[a.ParamSel]
	a.Current.SetParam(p.Name, p.Value+dir*p.Step)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	if a.InMenu {
		a.drawMenu()
	} else {
		a.drawLesson()
	}

	rl.EndDrawing()
}

func (a *App) drawMenu() {
	rl.DrawText("explorables", 50, 50, 40, ColSelect)
	rl.DrawText("Select Lesson", 50, 100, 16, ColTextDim)

	y := int32(160)
	for i, id := range a.Ids {
		l, err := a.Registry.Get(id)
		if err != nil {
			continue
		}
		line := fmt.Sprintf("%-12s %s", id, l.Title())
		if i == a.Selected {
			rl.DrawText("> "+line, 50, y, 20, ColSelect)
		} else {
			rl.DrawText("  "+line, 50, y, 20, ColText)
		}
		y += 28
	}

	rl.DrawText("ARROWS: NAVIGATE  ENTER: SELECT  Q: QUIT", 850, 680, 14, ColTextDim)
}

func (a *App) drawLesson() {
	a.drawCurve()
	a.drawHUD()
}

// drawCurve plots the sampled series across the main viewport.
func (a *App) drawCurve() {
	series := a.Current.Series(plotSamples)
	if len(series) < 2 {
		return
	}

	minV, maxV := series[0], series[0]
	for _, v := range series {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	if maxV == minV {
		maxV = minV + 1
	}

	left, top := float32(60), float32(80)
	plotW, plotH := float32(winWidth-420), float32(winHeight-180)

	// faint frame and midline
	rl.DrawRectangleLines(int32(left), int32(top), int32(plotW), int32(plotH), ColGrid)
	if minV < 0 && maxV > 0 {
		zeroY := top + plotH - float32((0-minV)/(maxV-minV))*plotH
		rl.DrawLineV(rl.NewVector2(left, zeroY), rl.NewVector2(left+plotW, zeroY), ColGrid)
	}

	var prev rl.Vector2
	for i, v := range series {
		x := left + float32(i)/float32(len(series)-1)*plotW
		y := top + plotH - float32((v-minV)/(maxV-minV))*plotH
		pt := rl.NewVector2(x, y)
		if i > 0 {
			rl.DrawLineEx(prev, pt, 2, ColSelect)
		}
		prev = pt
	}
}

func (a *App) drawHUD() {
	rl.DrawText("explorables", 30, 30, 24, ColSelect)
	rl.DrawText(fmt.Sprintf(":: %s", a.Current.Title()), 200, 34, 16, ColText)

	status := "LIVE"
	col := ColSelect
	if !a.Running {
		status = "PAUSED"
		col = ColTextDim
	}
	rl.DrawText(status, 1180, 30, 16, col)

	x := int32(winWidth - 340)
	y := int32(100)

	if modes := a.Current.Modes(); len(modes) > 0 {
		rl.DrawText(fmt.Sprintf("mode: %s", a.Current.Mode()), x, y, 16, ColAccent)
		y += 30
	}

	for i, p := range a.Current.Params() {
		line := fmt.Sprintf("%-12s %.3g", p.Name, p.Value)
		if i == a.ParamSel {
			rl.DrawText("> "+line, x, y, 16, ColSelect)
		} else {
			rl.DrawText("  "+line, x, y, 16, ColText)
		}
		y += 24
	}

	y += 20
	for _, line := range a.Current.Readout() {
		rl.DrawText(line, x, y, 14, ColAccent)
		y += 20
	}

	rl.DrawText("[TAB] PARAM  [UP/DN] TUNE  [M] MODE  [R] RESET  [ESC] MENU  [Q] QUIT", 340, 680, 14, ColTextDim)
}

package game

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"coinarena/internal/camera"
	"coinarena/internal/physics"
)

const (
	minimapMargin = 10
	hudFontSize   = 20
)

// HUDControls bounds the clickable HUD widgets.
var HUDControls = rl.Rectangle{X: 0, Y: 55, Width: 200, Height: 55}

var (
	playerColor = rl.NewColor(200, 60, 60, 255)
	hudText     = rl.NewColor(20, 20, 30, 255)
)

// MinimapRect is the minimap viewport in the top-right corner: a fifth of
// the screen in each direction.
func MinimapRect(screenW, screenH int32) rl.Rectangle {
	w := float32(screenW) / 5
	h := float32(screenH) / 5
	return rl.Rectangle{
		X:      float32(screenW) - w - minimapMargin,
		Y:      minimapMargin,
		Width:  w,
		Height: h,
	}
}

// MinimapProject maps a world point onto the minimap so that the floor
// fills rect. World -Z is the top of the map.
func MinimapProject(rect rl.Rectangle, floor physics.AABB, p rl.Vector3) rl.Vector2 {
	size := floor.Size()
	return rl.Vector2{
		X: rect.X + (p.X-floor.Min.X)/size.X*rect.Width,
		Y: rect.Y + (p.Z-floor.Min.Z)/size.Z*rect.Height,
	}
}

// Draw renders the arena, the player and the HUD. Main thread only.
func (g *Game) Draw() {
	if !g.styled {
		initHUDStyle()
		g.styled = true
	}

	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())
	cam := g.rig.Camera3D()

	rl.BeginDrawing()
	rl.ClearBackground(g.renderer.Palette.Sky)

	rl.BeginMode3D(cam)
	g.renderer.Draw(g.Level, g.Coins, cam, float32(w)/float32(h), rl.GetTime())
	if g.ready {
		g.drawPlayer()
	}
	rl.EndMode3D()

	g.drawMinimap(MinimapRect(w, h))
	g.drawHUD(w, h)
	rl.EndDrawing()
}

func (g *Game) drawPlayer() {
	p := g.Player
	if g.character != nil {
		s := g.character.Scale
		rl.DrawModelEx(g.character.Model, p.Position, rl.Vector3{Y: 1}, p.Facing*rl.Rad2deg, rl.Vector3{X: s, Y: s, Z: s}, rl.White)
		return
	}

	// Capsule stand-in with a nose marking the facing.
	r := (p.Box.Max.X - p.Box.Min.X) / 2
	base := rl.Vector3{X: p.Position.X, Y: p.Box.Min.Y + r, Z: p.Position.Z}
	top := rl.Vector3{X: p.Position.X, Y: p.Box.Max.Y - r, Z: p.Position.Z}
	rl.DrawCylinderEx(base, top, r, r, 12, playerColor)
	rl.DrawSphere(base, r, playerColor)
	rl.DrawSphere(top, r, playerColor)

	sin, cos := math.Sincos(float64(p.Facing))
	nose := rl.Vector3Add(top, rl.Vector3{X: float32(sin) * r, Z: float32(cos) * r})
	rl.DrawSphere(nose, r/3, rl.Black)
}

func (g *Game) drawMinimap(rect rl.Rectangle) {
	pal := g.renderer.Palette
	floor := g.Level.Floor

	rl.BeginScissorMode(int32(rect.X), int32(rect.Y), int32(rect.Width), int32(rect.Height))
	rl.DrawRectangleRec(rect, rl.Fade(pal.Floor, 0.85))
	for _, c := range g.Level.Columns {
		a := MinimapProject(rect, floor, c.Box.Min)
		b := MinimapProject(rect, floor, c.Box.Max)
		rl.DrawRectangleRec(rl.Rectangle{X: a.X, Y: a.Y, Width: b.X - a.X, Height: b.Y - a.Y}, pal.Column)
	}
	for _, c := range g.Coins.Coins() {
		rl.DrawCircleV(MinimapProject(rect, floor, c.Position), 2, pal.Coin)
	}
	if g.ready {
		at := MinimapProject(rect, floor, g.Player.Position)
		sin, cos := math.Sincos(float64(g.Player.Facing))
		ahead := rl.Vector3Add(g.Player.Position, rl.Vector3{X: float32(sin) * 2, Z: float32(cos) * 2})
		rl.DrawLineV(at, MinimapProject(rect, floor, ahead), rl.Black)
		rl.DrawCircleV(at, 4, playerColor)
	}
	rl.EndScissorMode()

	rl.DrawRectangleLinesEx(rect, 2, pal.Wall)
}

func (g *Game) drawHUD(w, h int32) {
	total := g.Coins.Collected() + g.Coins.Remaining()
	rl.DrawText(fmt.Sprintf("Coins: %d / %d", g.Coins.Collected(), total), 10, 10, hudFontSize, hudText)
	rl.DrawFPS(10, 35)
	rl.DrawText(fmt.Sprintf("culled %d", g.renderer.Culled), 110, 37, hudFontSize-4, hudText)

	freeLook := g.Mode() == camera.ModeFreeLook
	if gui.CheckBox(rl.Rectangle{X: 10, Y: 62, Width: 18, Height: 18}, "Free look (C)", freeLook) != freeLook {
		g.ToggleMode()
	}
	if freeLook {
		s := g.Sensitivity()
		g.SetSensitivity(gui.Slider(rl.Rectangle{X: 60, Y: 88, Width: 120, Height: 16}, "Look", fmt.Sprintf("%.4f", s), s, 0.0005, 0.01))
	}

	if !rl.IsCursorHidden() {
		rl.DrawText("Click to capture the mouse, Tab to release", 10, h-30, hudFontSize, hudText)
	}
	if msg, col, ok := g.banner(); ok {
		tw := rl.MeasureText(msg, 2*hudFontSize)
		rl.DrawText(msg, (w-tw)/2, h/2-hudFontSize, 2*hudFontSize, col)
	}
}

// banner is the centred message shown once every coin has been picked up.
func (g *Game) banner() (string, rl.Color, bool) {
	if !g.ready || g.Coins.Remaining() > 0 || g.Coins.Collected() == 0 {
		return "", rl.Color{}, false
	}
	return "All coins collected!", g.renderer.Palette.Coin, true
}

func initHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 16)
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(hudText))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(hudText))
}

package game

import (
	"fmt"
	"log"

	"chosenoffset.com/hunt67/internal/core/vision"
	"chosenoffset.com/hunt67/internal/render"
	"chosenoffset.com/hunt67/internal/render/lighting"
	"chosenoffset.com/hunt67/internal/simulation"
	"chosenoffset.com/hunt67/internal/ui/hud"
	"chosenoffset.com/hunt67/internal/world/level"
)

// Window titles double as the win/lose announcement.
const (
	titleBase = "67 Hunt"
	titleWon  = "67 Hunt - YOU MADE 67!"
	titleLost = "67 Hunt - TIME'S UP"
)

// Game holds all game state and logic.
type Game struct {
	Renderer render.Renderer
	InputMgr render.InputManager
	Engine   render.Engine

	Level      level.Level
	LevelIndex int

	Player Player
	State  State

	// TimeLeft counts down while the round is in play.
	TimeLeft float64

	// Visible is this frame's visibility polygon around the player.
	Visible []vision.Point

	Light *lighting.Flashlight
	HUD   *hud.HUD

	// Spotted is set once the target has entered the lit area this round.
	Spotted bool

	// UI state
	Messages []Message

	// Debug
	ShowOutline bool
}

// New creates a game starting at the configured level.
func New(renderer render.Renderer, input render.InputManager, engine render.Engine, cfg *simulation.Config) *Game {
	g := &Game{
		Renderer: renderer,
		InputMgr: input,
		Engine:   engine,
		Player: Player{
			Radius: cfg.Player.Radius,
			Speed:  cfg.Player.Speed,
		},
		Light: lighting.New(renderer, cfg.Lighting()),
		HUD:   hud.New(nil, renderer),
	}
	g.loadLevel(cfg.Rules.StartLevel)
	return g
}

// Update handles game logic updates.
func (g *Game) Update() error {
	// Delta time for timers (assuming 60 FPS)
	dt := 1.0 / 60.0

	// Update message timers
	g.updateMessages(dt)

	if g.State == StatePlaying {
		g.updatePlaying(dt)
	}

	// R restarts the round; after a win it advances to the next level.
	if g.InputMgr.IsKeyJustPressed(render.KeyR) {
		next := g.LevelIndex
		if g.State == StateWon {
			next++
		}
		g.loadLevel(next)
	}

	return nil
}

// updatePlaying advances one frame of an active round.
func (g *Game) updatePlaying(dt float64) {
	g.movePlayer(dt)

	// Reaching the target ends the round and freezes everything in place.
	if g.Player.Pos.Distance(g.Level.Target.Pos) < g.Player.Radius+g.Level.Target.Radius {
		g.State = StateWon
		g.Engine.SetWindowTitle(titleWon)
		return
	}

	g.TimeLeft -= dt
	if g.TimeLeft <= 0 {
		g.TimeLeft = 0
		g.State = StateLost
		g.Engine.SetWindowTitle(titleLost)
		return
	}

	// Recompute what the flashlight reveals from the new position.
	g.Visible = vision.Polygon(g.Player.Pos, g.Level.Segments, g.Light.Config().Range)

	if !g.Spotted && vision.PointInPolygon(g.Level.Target.Pos, g.Visible) {
		g.Spotted = true
		g.ShowMessage("7 spotted!")
	}
}

// movePlayer applies WASD/arrow movement. Each axis resolves on its own
// so the player slides along walls instead of sticking to them.
func (g *Game) movePlayer(dt float64) {
	var dir vision.Point
	if g.keyDown(render.KeyW, render.KeyUp) {
		dir.Y--
	}
	if g.keyDown(render.KeyS, render.KeyDown) {
		dir.Y++
	}
	if g.keyDown(render.KeyA, render.KeyLeft) {
		dir.X--
	}
	if g.keyDown(render.KeyD, render.KeyRight) {
		dir.X++
	}
	if dir.X == 0 && dir.Y == 0 {
		return
	}

	step := dir.Normalize().Mul(g.Player.Speed * dt)

	next := vision.Pt(g.Player.Pos.X+step.X, g.Player.Pos.Y)
	if !g.Level.CircleHitsWall(next, g.Player.Radius) {
		g.Player.Pos.X = next.X
	}
	next = vision.Pt(g.Player.Pos.X, g.Player.Pos.Y+step.Y)
	if !g.Level.CircleHitsWall(next, g.Player.Radius) {
		g.Player.Pos.Y = next.Y
	}
}

func (g *Game) keyDown(keys ...render.Key) bool {
	for _, key := range keys {
		if g.InputMgr.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// loadLevel starts a fresh round on the level at index. Everything derived
// from the previous level is replaced, including the occluder segments.
func (g *Game) loadLevel(index int) {
	g.LevelIndex = index
	g.Level = level.Load(index)
	g.Player.Pos = g.Level.Spawn
	g.TimeLeft = g.Level.TimeLimit
	g.State = StatePlaying
	g.Spotted = false
	g.Visible = nil
	g.Messages = nil
	g.Engine.SetWindowTitle(titleBase)
	g.ShowMessage(fmt.Sprintf("Level: %s", g.Level.Name))
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 3.0,
		MaxTime:  3.0,
	})

	log.Printf("Message: %s", text)
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Level.Width, g.Level.Height
}

// Package game implements the screen state machine that sequences the
// presentation: boot logo, title, objective card, active play, and level
// complete. Each state owns a per-frame handler and resets exactly the
// simulation state relevant to the screen being entered.
package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/Pharap/arduboy-ravine-despoiler/internal/audio"
	"github.com/Pharap/arduboy-ravine-despoiler/internal/core"
	"github.com/Pharap/arduboy-ravine-despoiler/internal/sim"
)

// Screen timing, in ticks at the nominal 60/s rate.
const (
	logoTicks      = 90  // Logo hold before the title screen
	promptTick     = 180 // Title tick at which the start prompt appears
	objectiveTicks = 120 // Objective card hold before play
	completeTicks  = 150 // Minimum level-complete hold
)

// Options are platform toggles for game flow. Physics constants are not
// configurable; these only route between screens.
type Options struct {
	// ShowObjective routes the title screen through the objective card
	// instead of straight into play.
	ShowObjective bool

	// Debug maps a bare B press during play to the level-complete screen,
	// which otherwise has no entry point.
	Debug bool
}

// EntropySource yields seeds for the run RNG. Production reads the
// operating system's entropy pool; tests inject fixed values.
type EntropySource func() int64

// SystemEntropy reads a seed from crypto/rand, falling back to the clock if
// the entropy pool is unavailable.
func SystemEntropy() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// Game owns all simulation state: the active screen state, the per-state
// frame counter, both bodies, the scenery, and the display buffer. The
// frame driver holds the only reference and calls Step once per tick, so no
// locking is needed.
type Game struct {
	cfg     core.RuntimeConfig
	opts    Options
	sound   audio.Player
	entropy EntropySource

	state StateID
	frame int // Ticks since entering the current state

	screen   *core.Screen
	buttons  *core.Buttons
	rng      *rand.Rand
	ravine   *Ravine
	plane    *sim.Plane
	zeppelin *sim.Zeppelin

	passes int // Screen crossings this flight
	ticks  int // Ticks flown this flight
}

// New creates a game. A nil player or entropy source gets a silent player
// and the system entropy pool.
func New(opts Options, sound audio.Player, entropy EntropySource) *Game {
	if sound == nil {
		sound = audio.NullPlayer{}
	}
	if entropy == nil {
		entropy = SystemEntropy
	}
	return &Game{
		opts:    opts,
		sound:   sound,
		entropy: entropy,
	}
}

// Reset initializes the game for the given screen dimensions and enters the
// logo state. Bodies are constructed here with bounds fixed for the life of
// the run; they are reused across rounds, never rebuilt.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg

	seed := cfg.Seed
	if seed == 0 {
		seed = g.entropy()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.screen = core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.buttons = core.NewButtons()
	g.ravine = NewRavine(cfg.ScreenW, cfg.ScreenH)
	g.plane = sim.NewPlane(cfg.ScreenW, g.ravine.Top, PlaneSprite.Width(), PlaneSprite.Height(), g.rng)
	g.zeppelin = sim.NewZeppelin(cfg.ScreenW, ZeppelinSprite.Width())

	g.Enter(StateLogo)
}

// Enter transitions to a new state: frame counter back to zero, any playing
// tone silenced, then the state-specific entry actions. Entering the
// current state again is valid and repeats all of it.
func (g *Game) Enter(s StateID) {
	g.frame = 0
	g.sound.NoTone()
	g.state = s

	switch s {
	case StateTitle:
		// reserved: reset game state for a new game
	case StatePlaying:
		g.rng = rand.New(rand.NewSource(g.entropy()))
		g.plane.Reseed(g.rng)
		g.plane.Reset()
		g.passes = 0
		g.ticks = 0
	case StateLevelComplete:
		g.sound.Play(fanfare...)
	}
}

// CompleteLevel is the explicit entry point into the level-complete screen.
func (g *Game) CompleteLevel() {
	g.Enter(StateLevelComplete)
}

// Current returns the active state.
func (g *Game) Current() StateID {
	return g.state
}

// Step runs one logical tick: bump the frame counter, latch this tick's
// input, and dispatch to the active state's handler.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++
	g.buttons.Poll(in)

	switch g.state {
	case StateLogo:
		g.stepLogo()
	case StateTitle:
		g.stepTitle()
	case StateObjective:
		g.stepObjective()
	case StatePlaying:
		g.stepPlaying()
	case StateLevelComplete:
		g.stepLevelComplete()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepLogo() {
	if g.frame == 1 {
		g.screen.Clear()
		x := (g.cfg.ScreenW - LogoSprite.Width()) / 2
		y := (g.cfg.ScreenH - LogoSprite.Height()) / 2
		g.screen.DrawOverwrite(x, y, LogoSprite, core.ColorWhite)
	}
	if g.frame > logoTicks {
		g.Enter(StateTitle)
	}
}

func (g *Game) stepTitle() {
	if g.frame == 1 {
		g.zeppelin.Reset()
		g.screen.Clear()
		g.ravine.Draw(g.screen)
		x := (g.cfg.ScreenW - TitleSprite.Width()) / 2
		g.screen.DrawOverwrite(x, 1, TitleSprite, core.ColorWhite)
		g.sound.Play(titleJingle...)
	}
	if g.frame == promptTick {
		x := (g.cfg.ScreenW - PressASprite.Width()) / 2
		y := g.ravine.Top - 2
		g.screen.FillRect(core.NewRect(x, y, PressASprite.Width(), PressASprite.Height()), ' ')
		g.screen.DrawSprite(x, y, PressASprite, false, core.ColorGreen)
	}

	// The zeppelin animates continuously regardless of the sub-phase:
	// erase its previous footprint, advance, redraw.
	g.screen.FillRect(core.NewRect(
		g.zeppelin.X.Int(), g.zeppelin.Y.Int(),
		ZeppelinSprite.Width(), ZeppelinSprite.Height()), ' ')
	g.zeppelin.StepX()
	g.drawZeppelin()

	if g.buttons.JustPressed(core.ButtonA) {
		if g.opts.ShowObjective {
			g.Enter(StateObjective)
		} else {
			g.Enter(StatePlaying)
		}
	}
}

func (g *Game) stepObjective() {
	if g.frame == 1 {
		g.screen.Clear()
		// objective card not drawn; the asset never shipped
	}
	if g.frame > objectiveTicks {
		g.Enter(StatePlaying)
	}
}

func (g *Game) stepPlaying() {
	// Direction input nudges the plane asymmetrically: holding against the
	// current direction slows it to half speed, holding with it speeds it
	// to one and a half. The sign never flips from input alone.
	if g.plane.XVel < 0 {
		g.plane.XVel = -core.BigOne
	} else {
		g.plane.XVel = core.BigOne
	}
	if g.buttons.Pressed(core.ButtonLeft) {
		if g.plane.XVel < 0 {
			g.plane.XVel = core.BigRatio(-3, 2)
		} else {
			g.plane.XVel = core.BigRatio(1, 2)
		}
	}
	if g.buttons.Pressed(core.ButtonRight) {
		if g.plane.XVel < 0 {
			g.plane.XVel = core.BigRatio(-1, 2)
		} else {
			g.plane.XVel = core.BigRatio(3, 2)
		}
	}

	// Only the horizontal step runs during play; the plane holds altitude
	// until it wraps.
	if g.plane.StepX() {
		g.passes++
	}
	g.ticks++

	g.screen.Clear()
	g.ravine.Draw(g.screen)
	g.drawPlane()

	// A held plus a fresh B is the reset escape hatch.
	if g.buttons.Pressed(core.ButtonA) && g.buttons.JustPressed(core.ButtonB) {
		g.Enter(StateLogo)
	} else if g.opts.Debug && g.buttons.JustPressed(core.ButtonB) {
		g.CompleteLevel()
	}
}

func (g *Game) stepLevelComplete() {
	if g.frame > completeTicks && !g.sound.Playing() {
		g.Enter(StateTitle)
	}
}

func (g *Game) drawPlane() {
	g.screen.DrawSprite(g.plane.X.Int(), g.plane.Y.Int(),
		PlaneSprite, g.plane.XVel < 0, core.ColorCyan)
}

func (g *Game) drawZeppelin() {
	g.screen.DrawSprite(g.zeppelin.X.Int(), g.zeppelin.Y.Int(),
		ZeppelinSprite, g.zeppelin.XVel > 0, core.ColorGray)
}

// Render copies the game's display buffer into the destination screen.
func (g *Game) Render(dst *core.Screen) {
	dst.CopyFrom(g.screen)
}

// State returns the platform-visible summary of this tick.
func (g *Game) State() core.GameState {
	return core.GameState{
		Flying: g.state == StatePlaying,
		Passes: g.passes,
		Ticks:  g.ticks,
	}
}

// Tone sequences for screen transitions.
var (
	titleJingle = []audio.Tone{
		{Freq: 523, Duration: 90 * time.Millisecond},
		{Freq: 659, Duration: 90 * time.Millisecond},
		{Freq: 784, Duration: 180 * time.Millisecond},
	}
	fanfare = []audio.Tone{
		{Freq: 523, Duration: 120 * time.Millisecond},
		{Freq: 523, Duration: 60 * time.Millisecond},
		{Freq: 659, Duration: 120 * time.Millisecond},
		{Freq: 784, Duration: 240 * time.Millisecond},
		{Freq: 0, Duration: 60 * time.Millisecond},
		{Freq: 1047, Duration: 300 * time.Millisecond},
	}
)

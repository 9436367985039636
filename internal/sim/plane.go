package sim

import (
	"math/rand"

	"github.com/Pharap/arduboy-ravine-despoiler/internal/core"
)

// Off-screen margins: how far beyond the visible edge a body travels before
// it reflects. Wide enough for the sprite to fully exit the screen first.
const (
	planeMargin    = 10
	zeppelinMargin = 20
)

// Plane is the player-controlled body. Its x-bounds extend past both screen
// edges, and every time it reflects off one it re-enters at a new random
// altitude.
type Plane struct {
	Body
	rng *rand.Rand
}

// NewPlane builds a plane for a screen of the given width, constrained
// vertically between the top of the screen and the ravine graphic.
func NewPlane(screenW, ravineTop, spriteW, spriteH int, rng *rand.Rand) *Plane {
	p := &Plane{rng: rng}
	p.XMin = core.BigInt(-(planeMargin + spriteW))
	p.XMax = core.BigInt(screenW + planeMargin)
	p.YMin = 0
	p.YMax = core.NumInt(core.Max(ravineTop-spriteH-2, 0))
	return p
}

// StepX advances the plane horizontally. Reaching either margin assigns a
// new random altitude within the vertical bounds, so each pass re-enters at
// an unpredictable height. Landing exactly on a margin counts as reaching
// it even though the travel direction only reverses on the following step.
// Returns whether a bounce occurred.
func (p *Plane) StepX() bool {
	bounced := p.Body.StepX()
	if bounced || p.X == p.XMin || p.X == p.XMax {
		p.Y = randNum(p.rng, p.YMin, p.YMax)
	}
	return bounced
}

// Reset puts the plane at its fixed starting position and speed.
func (p *Plane) Reset() {
	p.X = core.BigInt(10)
	p.Y = core.NumInt(2)
	p.XVel = core.BigInt(1)
}

// Reseed swaps the RNG used for altitude re-randomization.
func (p *Plane) Reseed(rng *rand.Rand) {
	p.rng = rng
}

// Zeppelin is the non-interactive background body. It drifts horizontally
// at constant speed and never moves vertically: its y-bounds are pinned to
// zero, and it only ever takes the horizontal step.
type Zeppelin struct {
	Body
}

// NewZeppelin builds a zeppelin for a screen of the given width.
func NewZeppelin(screenW, spriteW int) *Zeppelin {
	z := &Zeppelin{}
	z.XMin = core.BigInt(-(zeppelinMargin + spriteW))
	z.XMax = core.BigInt(screenW + zeppelinMargin)
	z.YMin = 0
	z.YMax = 0
	return z
}

// Reset places the zeppelin at the right margin, drifting left at half
// speed.
func (z *Zeppelin) Reset() {
	z.X = z.XMax
	z.Y = 0
	z.XVel = core.BigRatio(-1, 2)
}

// randNum returns a uniformly random fixed-point value in [lo, hi],
// inclusive of both ends.
func randNum(rng *rand.Rand, lo, hi core.Num) core.Num {
	if hi <= lo {
		return lo
	}
	return lo + core.Num(rng.Intn(int(hi-lo)+1))
}

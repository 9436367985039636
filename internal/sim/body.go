// Package sim holds the fixed-point physics for the game's moving bodies.
// It is deliberately low precision and tuned for visual plausibility on a
// small screen, not for realism.
package sim

import (
	"github.com/Pharap/arduboy-ravine-despoiler/internal/core"
)

// Physics constants, all compile-time fixed point.
const (
	// Gravity is added to the vertical velocity once per vertical step.
	// Real gravity is far too strong for a screen this size.
	Gravity core.Num = core.NumOne / 2 // 0.5

	// Restitution scales the vertical velocity on a floor bounce. 179/256,
	// roughly 0.7.
	Restitution core.Num = 179

	// RestitutionThreshold is the bounce speed below which a body settles
	// instead of micro-bouncing forever.
	RestitutionThreshold core.Num = core.NumEpsilon * 16

	// Friction would bleed horizontal speed each step. It is defined but
	// not applied in the live path; the tuning felt better without it.
	Friction core.Num = 243 // 0.95

	// InputForce is how hard the player pushes the plane per tick.
	InputForce core.Num = core.NumOne / 4 // 0.25
)

// Body is one simulated entity: position, velocity, and inclusive per-axis
// bounds. The horizontal axis uses the wide scalar because bodies travel
// beyond the visible screen margin; the vertical axis fits the narrow one.
//
// Bounds are fixed at construction. Position and velocity are set by the
// owner's reset logic and then mutated once per tick. Bodies are long-lived
// and reused across rounds.
type Body struct {
	X, XMin, XMax, XVel core.BigNum
	Y, YMin, YMax, YVel core.Num
}

// Move sets the position, clamping each axis independently into its bounds.
func (b *Body) Move(newX core.BigNum, newY core.Num) {
	b.X = core.ClampBig(newX, b.XMin, b.XMax)
	b.Y = core.ClampNum(newY, b.YMin, b.YMax)
}

// Adjust moves the body by a delta, with the same clamping as Move.
func (b *Body) Adjust(dx core.BigNum, dy core.Num) {
	b.Move(b.X+dx, b.Y+dy)
}

// StepX advances x by the horizontal velocity. Crossing either bound clamps
// the position onto the bound and reflects the velocity without energy
// loss. Returns whether a bounce occurred so variants can react without
// re-deriving it from the position.
func (b *Body) StepX() bool {
	b.X += b.XVel
	if b.X < b.XMin {
		b.X = b.XMin
		b.XVel = -b.XVel
		return true
	}
	if b.X > b.XMax {
		b.X = b.XMax
		b.XVel = -b.XVel
		return true
	}
	// b.XVel = b.XVel.Mul(Friction.Big())
	return false
}

// StepY advances y by the vertical velocity when it is nonzero. Hitting the
// top bound reflects losslessly; hitting the bottom bound reflects scaled
// by Restitution, and a post-bounce speed under RestitutionThreshold snaps
// to rest. Gravity is added to the velocity unconditionally every call,
// bounce or not.
func (b *Body) StepY() {
	if b.YVel != 0 {
		b.Y += b.YVel
		if b.Y < b.YMin {
			b.Y = b.YMin
			b.YVel = -b.YVel
		} else if b.Y > b.YMax {
			b.Y = b.YMax
			b.YVel = (-b.YVel).Mul(Restitution)
			if b.YVel.Abs() < RestitutionThreshold {
				b.YVel = 0
			}
		}
	}
	b.YVel += Gravity
}

// Step runs one full integration tick: horizontal first, then vertical.
// The axes are resolved independently; there is no diagonal collision.
func (b *Body) Step() {
	b.StepX()
	b.StepY()
}

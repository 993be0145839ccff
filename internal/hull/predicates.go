package hull

import (
	"math"
	"math/big"

	"github.com/golang/geo/r3"
)

// Both predicates are evaluated in floating point first. When the result is
// too close to zero to trust its sign, they are recomputed exactly with
// rationals, so degenerate configurations (collinear or cocircular points)
// always get the same, correct answer.

const (
	orientErrBound   = 1e-14
	inCircleErrBound = 1e-13
)

// Orient returns +1 if c lies to the left of the directed line a→b, -1 if it
// lies to the right, and 0 if the three points are collinear.
func Orient(ax, ay, bx, by, cx, cy float64) int {
	left := (bx - ax) * (cy - ay)
	right := (by - ay) * (cx - ax)
	det := left - right
	bound := orientErrBound * (math.Abs(left) + math.Abs(right))
	if det > bound {
		return 1
	}
	if det < -bound {
		return -1
	}
	if !finite(ax, ay, bx, by, cx, cy) {
		return 0
	}
	return orientExact(ax, ay, bx, by, cx, cy)
}

func orientExact(ax, ay, bx, by, cx, cy float64) int {
	abx := sub(bx, ax)
	aby := sub(by, ay)
	acx := sub(cx, ax)
	acy := sub(cy, ay)
	left := new(big.Rat).Mul(abx, acy)
	right := new(big.Rat).Mul(aby, acx)
	return left.Cmp(right)
}

// InCircle returns +1 if d lies strictly inside the circle through a, b and c
// (given counter-clockwise), -1 if it lies outside, and 0 if the four points
// are cocircular.
//
// This is the orientation of the four points lifted onto the paraboloid
// z = x² + y², taken relative to d.
func InCircle(ax, ay, bx, by, cx, cy, dx, dy float64) int {
	a := lift(ax-dx, ay-dy)
	b := lift(bx-dx, by-dy)
	c := lift(cx-dx, cy-dy)
	det := a.Dot(b.Cross(c))

	permanent := (math.Abs(b.X*c.Y)+math.Abs(c.X*b.Y))*a.Z +
		(math.Abs(c.X*a.Y)+math.Abs(a.X*c.Y))*b.Z +
		(math.Abs(a.X*b.Y)+math.Abs(b.X*a.Y))*c.Z
	bound := inCircleErrBound * permanent
	if det > bound {
		return 1
	}
	if det < -bound {
		return -1
	}
	if !finite(ax, ay, bx, by, cx, cy, dx, dy) {
		return 0
	}
	return inCircleExact(ax, ay, bx, by, cx, cy, dx, dy)
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func lift(x, y float64) r3.Vector {
	return r3.Vector{X: x, Y: y, Z: x*x + y*y}
}

func inCircleExact(ax, ay, bx, by, cx, cy, dx, dy float64) int {
	adx, ady := sub(ax, dx), sub(ay, dy)
	bdx, bdy := sub(bx, dx), sub(by, dy)
	cdx, cdy := sub(cx, dx), sub(cy, dy)

	alift := liftExact(adx, ady)
	blift := liftExact(bdx, bdy)
	clift := liftExact(cdx, cdy)

	// det = alift*(bdx*cdy - cdx*bdy) + blift*(cdx*ady - adx*cdy) + clift*(adx*bdy - bdx*ady)
	det := new(big.Rat).Mul(alift, cross(bdx, bdy, cdx, cdy))
	det.Add(det, new(big.Rat).Mul(blift, cross(cdx, cdy, adx, ady)))
	det.Add(det, new(big.Rat).Mul(clift, cross(adx, ady, bdx, bdy)))
	return det.Sign()
}

func sub(a, b float64) *big.Rat {
	r := new(big.Rat).SetFloat64(a)
	return r.Sub(r, new(big.Rat).SetFloat64(b))
}

func liftExact(x, y *big.Rat) *big.Rat {
	r := new(big.Rat).Mul(x, x)
	return r.Add(r, new(big.Rat).Mul(y, y))
}

// cross returns ux*vy - vx*uy.
func cross(ux, uy, vx, vy *big.Rat) *big.Rat {
	r := new(big.Rat).Mul(ux, vy)
	return r.Sub(r, new(big.Rat).Mul(vx, uy))
}

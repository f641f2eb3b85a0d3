package generator

import (
	"golang.org/x/exp/rand"
)

// /////////////////////////////////////////////////////////////////////////////
//  ___
// / __| __ _ _  _ __ _ _ _ ___
// \__ \/ _` | || / _` | '_/ -_)
// |___/\__, |\_,_\__,_|_| \___|
//         |_|
// /////////////////////////////////////////////////////////////////////////////

// SquarePattern places resting points in four bands of width DQuadrant
// along the edges of the [LowerX, UpperX] x [LowerY, UpperY] square.
type SquarePattern struct {
	BasePattern
}

func (sp *SquarePattern) Name() string {
	return "square"
}

func (sp *SquarePattern) Generate(src rand.Source) *PointIterator {
	rnd := rand.New(src)
	return sp.iterate(N, func() Point {
		var x, y int
		switch UniformInt(rnd, 1, 4) {
		case 1: // top
			x = UniformInt(rnd, LowerX, UpperX)
			y = UniformInt(rnd, UpperY-DQuadrant, UpperY)
		case 2: // right
			x = UniformInt(rnd, UpperX-DQuadrant, UpperX)
			y = UniformInt(rnd, LowerY, UpperY)
		case 3: // bottom
			x = UniformInt(rnd, LowerX, UpperX)
			y = UniformInt(rnd, LowerY, LowerY+DQuadrant)
		default: // left
			x = UniformInt(rnd, LowerX, LowerX+DQuadrant)
			y = UniformInt(rnd, LowerY, UpperY)
		}
		return Point{X: x, Y: y}
	})
}

// InBand reports whether (x, y) lies in at least one of the square's edge
// bands. Corner cells belong to two bands.
func InBand(x int, y int) bool {
	if x < LowerX || x > UpperX || y < LowerY || y > UpperY {
		return false
	}
	return y >= UpperY-DQuadrant ||
		x >= UpperX-DQuadrant ||
		y <= LowerY+DQuadrant ||
		x <= LowerX+DQuadrant
}

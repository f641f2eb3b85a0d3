package generator

import (
	"golang.org/x/exp/rand"
)

// /////////////////////////////////////////////////////////////////////////////
//  ___              _
// | _ \__ _ _ _  __| |___ _ __
// |   / _` | ' \/ _` / _ \ '  \
// |_|_\__,_|_||_\__,_\___/_|_|_|
//
// /////////////////////////////////////////////////////////////////////////////

// RandomPattern scatters resting points over the full coordinate range.
type RandomPattern struct {
	BasePattern
}

func (rp *RandomPattern) Name() string {
	return "random"
}

func (rp *RandomPattern) Generate(src rand.Source) *PointIterator {
	rnd := rand.New(src)
	return rp.iterate(N, func() Point {
		return Point{
			X: UniformInt(rnd, -RangeX, RangeX),
			Y: UniformInt(rnd, -RangeY, RangeY),
		}
	})
}

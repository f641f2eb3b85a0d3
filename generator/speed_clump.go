package generator

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// /////////////////////////////////////////////////////////////////////////////
//  ___                  _    ___ _
// / __|_ __  ___ ___ __| |  / __| |_  _ _ __  _ __
// \__ \ '_ \/ -_) -_) _` | | (__| | || | '  \| '_ \
// |___/ .__/\___\___\__,_|  \___|_|\_,_|_|_|_| .__/
//     |_|                                    |_|
// /////////////////////////////////////////////////////////////////////////////

// SpeedClumpPattern packs the points into a small square around the origin
// and gives each of them a random velocity.
type SpeedClumpPattern struct {
	BasePattern
}

func (scp *SpeedClumpPattern) Name() string {
	return "speed_clump"
}

func (scp *SpeedClumpPattern) Generate(src rand.Source) *PointIterator {
	rnd := rand.New(src)
	velocity := distuv.Uniform{
		Min: -VMax,
		Max: VMax,
		Src: src,
	}
	return scp.iterate(N, func() Point {
		return Point{
			X:  UniformInt(rnd, -DQuadrant, DQuadrant),
			Y:  UniformInt(rnd, -DQuadrant, DQuadrant),
			VX: velocity.Rand(),
			VY: velocity.Rand(),
		}
	})
}

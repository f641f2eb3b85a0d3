package generator

import (
	"fmt"

	"golang.org/x/exp/rand"
)

const (
	// N is the number of points every pattern produces
	N = 1000

	RangeX = 1000
	RangeY = 1000

	UpperX = 100
	LowerX = -100
	UpperY = 100
	LowerY = -100

	// DQuadrant is the half width of the speed clump and the width of
	// each square band
	DQuadrant = 10

	VMax = 100
)

// Point is a single sampled body: integer position, real velocity.
type Point struct {
	X  int
	Y  int
	VX float64
	VY float64
}

// Pattern is a named sampling routine producing exactly N points from the
// supplied source.
type Pattern interface {
	Name() string
	Generate(src rand.Source) *PointIterator
}

// /////////////////////////////////////////////////////////////////////////////
//  ___     _     _   ___ _                _
// | _ \___(_)_ _| |_|_ _| |_ ___ _ _ __ _| |_ ___ _ _
// |  _/ _ \ | ' \  _|| ||  _/ -_) '_/ _` |  _/ _ \ '_|
// |_| \___/_|_||_\__|___|\__\___|_| \__,_|\__\___/_|
//
// /////////////////////////////////////////////////////////////////////////////

// PointIterator lazily draws a fixed number of points. It can't be rewound:
// once Next has returned false it keeps returning false.
type PointIterator struct {
	remaining int
	current   Point
	draw      func() Point
}

// Next draws the next point. It returns false once every point has been
// drawn.
func (pi *PointIterator) Next() bool {
	if pi.remaining <= 0 || pi.draw == nil {
		pi.draw = nil
		return false
	}
	pi.current = pi.draw()
	pi.remaining--
	return true
}

// Point returns the point drawn by the last call to Next.
func (pi *PointIterator) Point() Point {
	return pi.current
}

// Len returns the number of points not yet drawn.
func (pi *PointIterator) Len() int {
	return pi.remaining
}

// /////////////////////////////////////////////////////////////////////////////
//  ___                ___      _   _
// | _ ) __ _ ___ ___ | _ \__ _| |_| |_ ___ _ _ _ _
// | _ \/ _` (_-</ -_)|  _/ _` |  _|  _/ -_) '_| ' \
// |___/\__,_/__/\___||_| \__,_|\__|\__\___|_| |_||_|
//
// /////////////////////////////////////////////////////////////////////////////

type BasePattern struct {
}

func (bp *BasePattern) iterate(count int, draw func() Point) *PointIterator {
	return &PointIterator{
		remaining: count,
		draw:      draw,
	}
}

// UniformInt returns an integer in the closed range [lower, upper].
func UniformInt(rnd *rand.Rand, lower int, upper int) int {
	return lower + rnd.Intn(upper-lower+1)
}

// /////////////////////////////////////////////////////////////////////////////
// Registry
// /////////////////////////////////////////////////////////////////////////////

var patternMap map[string]Pattern

// patternNames preserves registration order for the usage text
var patternNames []string

func register(pattern Pattern) {
	patternMap[pattern.Name()] = pattern
	patternNames = append(patternNames, pattern.Name())
}

func init() {
	patternMap = make(map[string]Pattern)
	register(&SpeedClumpPattern{})
	register(&RandomPattern{})
	register(&SquarePattern{})
}

// Names returns the supported pattern names in registration order.
func Names() []string {
	names := make([]string, len(patternNames))
	copy(names, patternNames)
	return names
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, error) {
	pattern, patternExists := patternMap[name]
	if !patternExists {
		return nil, fmt.Errorf("unsupported pattern name: %s. Supported patterns: %v", name, patternNames)
	}
	return pattern, nil
}

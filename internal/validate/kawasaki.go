package validate

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/irfansharif/foldlock/internal/geom"
	"github.com/irfansharif/foldlock/internal/vertex"
)

// AngleTolerance is how far, in radians, an alternating angle sum may stray
// from π.
const AngleTolerance = 0.01

// KawasakiVertex is the angle data of one interior vertex.
type KawasakiVertex struct {
	Point     geom.Point `json:"point"`
	Creases   int        `json:"creases"`
	EvenSum   float64    `json:"evenSum"`
	OddSum    float64    `json:"oddSum"`
	Deviation float64    `json:"deviation"` // largest |sum - π|
	Valid     bool       `json:"valid"`
}

// KawasakiDetails is the Details payload of the Kawasaki-Justin result.
type KawasakiDetails struct {
	Interior int              `json:"interior"`
	Exempt   int              `json:"exempt"`
	Vertices []KawasakiVertex `json:"vertices"`
}

// AlternatingSums returns the sums of the even- and odd-indexed sectors.
func AlternatingSums(sectors []float64) (even, odd float64) {
	for i, s := range sectors {
		if i%2 == 0 {
			even += s
		} else {
			odd += s
		}
	}
	return even, odd
}

func kawasakiAt(v vertex.Vertex) KawasakiVertex {
	even, odd := AlternatingSums(vertex.Sectors(v.Star()))
	kv := KawasakiVertex{
		Point:     v.Point,
		Creases:   v.Creases(),
		EvenSum:   even,
		OddSum:    odd,
		Deviation: math.Max(math.Abs(even-math.Pi), math.Abs(odd-math.Pi)),
	}
	kv.Valid = scalar.EqualWithinAbs(even, math.Pi, AngleTolerance) &&
		scalar.EqualWithinAbs(odd, math.Pi, AngleTolerance) &&
		scalar.EqualWithinAbs(even+odd, 2*math.Pi, AngleTolerance)
	return kv
}

// KawasakiJustin checks that at every interior vertex the alternating sector
// sums are each π. Perimeter vertices are exempt with a warning.
func KawasakiJustin(vs []vertex.Vertex) Result {
	res := newResult("kawasaki-justin")
	details := KawasakiDetails{Vertices: []KawasakiVertex{}}

	outcomes := eachVertex(vs, func(v vertex.Vertex) *KawasakiVertex {
		if !v.Interior() {
			return nil
		}
		kv := kawasakiAt(v)
		return &kv
	})
	for i, kv := range outcomes {
		if kv == nil {
			details.Exempt++
			res.warnf("vertex %v: perimeter vertex with %d creases, exempt", vs[i].Point, vs[i].Creases())
			continue
		}
		details.Interior++
		details.Vertices = append(details.Vertices, *kv)
		if !kv.Valid {
			res.errorf("vertex %v: alternating angle sums %.4f and %.4f rad deviate from π by %.4f rad",
				kv.Point, kv.EvenSum, kv.OddSum, kv.Deviation)
		}
	}
	res.Details = details
	return res.finish()
}

// eachVertex runs check over every vertex concurrently. Results come back in
// vertex order regardless of completion order.
func eachVertex[T any](vs []vertex.Vertex, check func(vertex.Vertex) T) []T {
	out := make([]T, len(vs))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range vs {
		g.Go(func() error {
			out[i] = check(vs[i])
			return nil
		})
	}
	_ = g.Wait() // checks never fail
	return out
}

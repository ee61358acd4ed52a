package iterator

import (
	g "github.com/anacrolix/generics"
	"golang.org/x/exp/constraints"
)

// RangeConfig describes an ascending integer range. A missing End means the
// largest value of N and a missing Step means 1.
type RangeConfig[N constraints.Integer] struct {
	Start N
	End   g.Option[N]
	Step  g.Option[N]
}

// Range yields start, start+step, ... while the value is below end. It takes up
// to three bounds in the order start, end, step:
//
//	Range[int]()         // 0, 1, 2, ... up to the largest int
//	Range(3)             // 3, 4, 5, ...
//	Range(1, 7, 2)       // 1, 3, 5
func Range[N constraints.Integer](bounds ...N) *Sequence[N] {
	var cfg RangeConfig[N]
	switch len(bounds) {
	case 3:
		cfg.Step = g.Some(bounds[2])
		fallthrough
	case 2:
		cfg.End = g.Some(bounds[1])
		fallthrough
	case 1:
		cfg.Start = bounds[0]
	case 0:
	default:
		panic(&ArgumentError{Op: "range", Value: len(bounds), Want: "at most 3 bounds"})
	}
	return RangeOf(cfg)
}

func RangeOf[N constraints.Integer](cfg RangeConfig[N]) *Sequence[N] {
	end := maxOf[N]()
	if cfg.End.Ok {
		end = cfg.End.Value
	}
	step := N(1)
	if cfg.Step.Ok {
		step = cfg.Step.Value
	}
	if step < 0 {
		panic(&ArgumentError{Op: "range", Value: step, Want: "non-negative"})
	}
	if step == 0 {
		panic(&ArgumentError{Op: "range", Value: step, Want: "non-zero"})
	}

	start := cfg.Start
	return New(func() Iterator[N] {
		return &RangeIterator[N]{
			next: start,
			end:  end,
			step: step,
		}
	})
}

type RangeIterator[N constraints.Integer] struct {
	next, end, step N
	done            bool
}

func (r *RangeIterator[N]) Move() (N, bool) {
	if r.done || r.next >= r.end {
		r.done = true
		return 0, false
	}

	v := r.next
	r.next += r.step
	// Overflow wraps below v; the range ends instead of starting over.
	if r.next < v {
		r.done = true
	}
	return v, true
}

// maxOf returns the largest value of N without reflection: it keeps setting the
// next bit while the value still grows.
func maxOf[N constraints.Integer]() N {
	m := N(1)
	for m<<1|1 > m {
		m = m<<1 | 1
	}
	return m
}

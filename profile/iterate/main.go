// Profiling:
// go build ./profile/iterate
// go tool pprof -http=":8000" -nodefraction=0.001 ./iterate cpu.pprof

package main

import (
	"github.com/packdrift/pallet"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	iters := 10000
	entities := 1000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(iters, entities)
	p.Stop()
}

func run(iters, numEntities int) {
	s := pallet.Factory.NewStorage()
	c1, _ := pallet.RegisterComponent[comp1](s, "comp1")
	c2, _ := pallet.RegisterComponent[comp2](s, "comp2")

	first, end := s.NewEntities(numEntities)
	for en := first; en < end; en++ {
		pallet.Set(s, en, c1, comp1{V: 1, W: 2})
		pallet.Set(s, en, c2, comp2{V: 3, W: 4})
	}

	for i := 0; i < iters; i++ {
		pallet.ForEach2(s, c1, c2, func(rec *pallet.Record, a pallet.Ref[comp1], b pallet.Ref[comp2]) {
			v1, v2 := a.Get(), b.Get()
			v1.V += v2.V
			v1.W += v2.W
			a.Set(v1)
		})
	}
}

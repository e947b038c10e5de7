// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/packdrift/pallet"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type label struct {
	Text string
}

func main() {
	rounds := 50
	entities := 10000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, entities)
	p.Stop()
}

func run(rounds, numEntities int) {
	for i := 0; i < rounds; i++ {
		s := pallet.Factory.NewStorage()
		c1, _ := pallet.RegisterComponent[comp1](s, "comp1")
		lbl, _ := pallet.RegisterComponent[label](s, "label")

		first, end := s.NewEntities(numEntities)
		for en := first; en < end; en++ {
			pallet.Set(s, en, c1, comp1{V: 1})
			pallet.Set(s, en, lbl, label{Text: "entity"})
		}

		var doomed []pallet.Entity
		pallet.ForEach(s, c1, func(rec *pallet.Record, a pallet.Ref[comp1]) {
			doomed = append(doomed, rec.Entity())
		})
		for _, en := range doomed {
			s.DeleteEntity(en)
		}
	}
}

package pallet_test

import (
	"fmt"

	"github.com/packdrift/pallet"
)

// Position is a simple component for 2D coordinates
type Position struct {
	X float64
	Y float64
}

// Velocity is a simple component for 2D movement
type Velocity struct {
	X float64
	Y float64
}

// Name is a simple component for entity identification
type Name struct {
	Value string
}

// Example shows basic pallet usage with entity creation and iteration
func Example_basic() {
	// Create storage and register components
	storage := pallet.Factory.NewStorage()
	position, _ := pallet.RegisterComponent[Position](storage, "position")
	velocity, _ := pallet.RegisterComponent[Velocity](storage, "velocity")
	name, _ := pallet.RegisterComponent[Name](storage, "name")

	// Entities carry whatever subset of components they need
	for i := 0; i < 5; i++ {
		en := storage.NewEntity()
		pallet.Set(storage, en, position, Position{X: float64(i)})
	}
	for i := 0; i < 3; i++ {
		en := storage.NewEntity()
		pallet.Set(storage, en, position, Position{})
		pallet.Set(storage, en, velocity, Velocity{X: 1, Y: 2})
	}

	player := storage.NewEntity()
	pallet.Set(storage, player, position, Position{X: 10, Y: 20})
	pallet.Set(storage, player, velocity, Velocity{X: 1, Y: 2})
	pallet.Set(storage, player, name, Name{Value: "Player"})

	// Advance every entity that has both position and velocity
	matched := 0
	pallet.ForEach2(storage, position, velocity,
		func(rec *pallet.Record, pos pallet.Ref[Position], vel pallet.Ref[Velocity]) {
			p, v := pos.Get(), vel.Get()
			p.X += v.X
			p.Y += v.Y
			pos.Set(p)
			matched++
		})

	playerPos, _ := pallet.Get[Position](storage, player, position)
	playerName, _ := pallet.Get[Name](storage, player, name)

	fmt.Println("Entities with position and velocity:", matched)
	fmt.Printf("%s moved to (%.0f, %.0f)\n", playerName.Value, playerPos.X, playerPos.Y)
	// Output:
	// Entities with position and velocity: 4
	// Player moved to (11, 22)
}

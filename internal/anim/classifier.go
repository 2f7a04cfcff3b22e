package anim

import (
	"coinarena/internal/input"
	"coinarena/internal/locomotion"
)

// Classify maps contact, movement and speed tier to a locomotion state.
// Being airborne always wins.
func Classify(grounded, moving bool, tier input.Tier) locomotion.State {
	switch {
	case !grounded:
		return locomotion.Jump
	case moving && tier == input.Run:
		return locomotion.Run
	case moving:
		return locomotion.Walk
	default:
		return locomotion.Idle
	}
}

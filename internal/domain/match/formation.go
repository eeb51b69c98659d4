package match

import "github.com/haakonrs/kampplan/internal/domain/player"

// Formation is one of the four supported topologies. The digits describe
// defense-midfield-attack for a full eleven-a-side lineup; targets scale
// down for smaller headcounts.
type Formation string

const (
	Formation442 Formation = "4-4-2"
	Formation433 Formation = "4-3-3"
	Formation343 Formation = "3-4-3"
	Formation352 Formation = "3-5-2"
)

var AllFormations = map[Formation]struct{}{
	Formation442: {},
	Formation433: {},
	Formation343: {},
	Formation352: {},
}

var formationShape = map[Formation][3]int{
	Formation442: {4, 4, 2},
	Formation433: {4, 3, 3},
	Formation343: {3, 4, 3},
	Formation352: {3, 5, 2},
}

func (f Formation) Valid() bool {
	_, ok := AllFormations[f]
	return ok
}

// PositionTargets distributes an on-field headcount over the position
// groups. The keeper slot is always one; the outfield slots are split
// proportionally to the formation shape with leftovers assigned from
// defense forwards, so the result is deterministic and sums to headcount.
func (f Formation) PositionTargets(headcount int) map[player.Position]int {
	targets := map[player.Position]int{
		player.PositionKeeper:   1,
		player.PositionDefense:  0,
		player.PositionMidfield: 0,
		player.PositionAttack:   0,
	}
	if headcount <= 1 {
		return targets
	}

	shape, ok := formationShape[f]
	if !ok {
		shape = formationShape[Formation442]
	}
	shapeTotal := shape[0] + shape[1] + shape[2]
	outfield := headcount - 1

	groups := []player.Position{player.PositionDefense, player.PositionMidfield, player.PositionAttack}
	assigned := 0
	for i, pos := range groups {
		n := outfield * shape[i] / shapeTotal
		targets[pos] = n
		assigned += n
	}
	for i := 0; assigned < outfield; i++ {
		targets[groups[i%len(groups)]]++
		assigned++
	}

	return targets
}

package main

import (
	"fmt"
	"time"

	"github.com/udisondev/statusfx/internal/game/area"
	"github.com/udisondev/statusfx/internal/game/status"
	"github.com/udisondev/statusfx/internal/model"
	"github.com/udisondev/statusfx/internal/world"
)

// Characters stand on a square lattice around the origin.
const spawnSpacing = 120

func spawnCharacters(w *world.World, ids *world.ObjectIDGenerator, n int) ([]*world.Character, error) {
	side := 1
	for side*side < n {
		side++
	}

	chars := make([]*world.Character, 0, n)
	for i := range n {
		x := int32((i%side)-side/2) * spawnSpacing
		y := int32((i/side)-side/2) * spawnSpacing
		loc := model.NewLocation(x, y, 0, uint16(i*4096))

		player := i%2 == 0
		var id uint32
		if player {
			id = ids.NextPlayerID()
		} else {
			id = ids.NextMonsterID()
		}
		sex := model.SexMale
		if i%4 >= 2 {
			sex = model.SexFemale
		}
		c := world.NewCharacter(id, fmt.Sprintf("char-%d", i), loc, player).
			WithAppearance(model.JobID(i%8), sex)
		if err := w.AddCharacter(c); err != nil {
			return nil, err
		}
		chars = append(chars, c)
	}
	return chars, nil
}

// seedMessages builds the opening batch: a mounted leader, poisoned
// monsters, a stun wave around the leader and one catalog status per
// character.
func seedMessages(chars []*world.Character, catalog *status.Catalog, now time.Time) ([]status.Message, error) {
	if len(chars) == 0 {
		return nil, nil
	}
	leader := chars[0]
	msgs := []status.Message{
		status.NewApplyMain(leader.ID(), leader.ID(), status.MainMounted),
	}

	for _, c := range chars[1:] {
		if !c.IsPlayer() {
			msgs = append(msgs, status.NewApplyMain(leader.ID(), c.ID(), status.MainPoison))
		}
	}

	msgs = append(msgs, status.ApplyStatusInArea{
		SourceID: leader.ID(),
		Payload:  status.MainPayload(status.MainStun),
		Shape:    area.Circle{R: 2 * spawnSpacing},
		Pose:     area.PoseAt(leader.Location()),
		ExceptID: leader.ID(),
	})

	names := catalog.Names()
	if len(names) == 0 {
		return msgs, nil
	}
	for i, c := range chars {
		caster := chars[(i+1)%len(chars)]
		st, err := catalog.New(names[i%len(names)], caster.ID(), now)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, status.NewApplySecondary(caster.ID(), c.ID(), st))
	}
	return msgs, nil
}

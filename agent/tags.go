package agent

import (
	"fmt"

	"github.com/katalvlaran/lvlplan/model"
)

// tagTable maps element tags to snapshot ids. Walls are W1..Wn, doors
// D1.., windows Win1.., rooms R1.., each numbered in authoring order;
// doors and windows count independently even though they share the
// wall's opening list.
type tagTable struct {
	wall map[string]string
	open map[string]string
	room map[string]string
}

func newTagTable(b *model.Building) tagTable {
	tt := tagTable{
		wall: make(map[string]string, len(b.Walls)),
		open: make(map[string]string),
		room: make(map[string]string, len(b.Rooms)),
	}
	doors, wins := 0, 0
	for i := range b.Walls {
		w := &b.Walls[i]
		tt.wall[fmt.Sprintf("W%d", i+1)] = w.ID
		for _, o := range w.Openings {
			if o.Kind == model.OpeningDoor {
				doors++
				tt.open[fmt.Sprintf("D%d", doors)] = o.ID
			} else {
				wins++
				tt.open[fmt.Sprintf("Win%d", wins)] = o.ID
			}
		}
	}
	for i := range b.Rooms {
		tt.room[fmt.Sprintf("R%d", i+1)] = b.Rooms[i].ID
	}
	return tt
}

package registry

import "github.com/vovakirdan/tui-snake/internal/game"

func init() {
	Register(Variant{
		ID:          "classic",
		Title:       "Classic",
		Description: "Walls are deadly; rules as configured",
	})
	Register(Variant{
		ID:          "wrap",
		Title:       "Wrap-around",
		Description: "Leaving the board re-enters on the opposite edge",
		Apply: func(r *game.Rules) {
			r.Wall = game.WallWraparound
		},
	})
	Register(Variant{
		ID:          "lethal",
		Title:       "Lethal walls",
		Description: "Forces deadly walls even if the config enables wrapping",
		Apply: func(r *game.Rules) {
			r.Wall = game.WallLethal
		},
	})
}

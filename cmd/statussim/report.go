package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/udisondev/statusfx/internal/game/status"
	"github.com/udisondev/statusfx/internal/model"
	"github.com/udisondev/statusfx/internal/world"
)

// spriteTable names sprites after job and sex.
type spriteTable struct{}

func (spriteTable) Character(job model.JobID, sex model.Sex) *model.SpriteResource {
	return &model.SpriteResource{Name: fmt.Sprintf("job%d_%s", job, sex)}
}

func (spriteTable) Mounted(job model.JobID, sex model.Sex) *model.SpriteResource {
	return &model.SpriteResource{Name: fmt.Sprintf("job%d_%s_mounted", job, sex)}
}

func (spriteTable) Transformed(transformID int32, sex model.Sex) *model.SpriteResource {
	return &model.SpriteResource{Name: fmt.Sprintf("transform%d_%s", transformID, sex)}
}

// overlayCounter is a headless render sink.
type overlayCounter struct {
	texts   map[string]int
	sprites int
}

func (o *overlayCounter) DrawText(text string, _ model.Location, _ time.Time) {
	o.texts[text]++
}

func (o *overlayCounter) DrawSprite(*model.SpriteResource, model.Location, float32, status.Color) {
	o.sprites++
}

func report(w *world.World, steps uint64) {
	var mounted, stunned, poisoned, rooted, dead, secondary, overridden int
	overlay := &overlayCounter{texts: make(map[string]int)}
	table := spriteTable{}

	w.ForEachCharacter(func(c *world.Character) bool {
		set := c.Statuses()
		if set.IsMounted() {
			mounted++
		}
		if set.IsStunned() {
			stunned++
		}
		if set.IsPoisoned() {
			poisoned++
		}
		if !set.CanMove() {
			rooted++
		}
		if c.IsDead() {
			dead++
		}
		secondary += set.SecondaryLen()

		base := table.Character(c.Job(), c.Sex())
		if sprite := set.SpriteOverride(c.Job(), 0, c.Sex(), table); sprite != nil && sprite.Name != base.Name {
			overridden++
		}
		set.Render(c.Location(), w, overlay)
		return true
	})

	slog.Info("status report",
		"steps", steps,
		"characters", w.Count(),
		"mounted", mounted,
		"stunned", stunned,
		"poisoned", poisoned,
		"immobile", rooted,
		"secondary", secondary,
		"sprite_overrides", overridden,
		"overlays", overlay.texts,
		"dead", dead)
}

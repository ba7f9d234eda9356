package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeySpace:   core.ActionFlap,
	ebiten.KeyArrowUp: core.ActionFlap,
	ebiten.KeyW:       core.ActionFlap,
	ebiten.KeyM:       core.ActionMute,
	ebiten.KeyEnter:   core.ActionRestart,
	ebiten.KeyR:       core.ActionRestart,
	ebiten.KeyEscape:  core.ActionQuit,
	ebiten.KeyQ:       core.ActionQuit,
}

// frameFor maps the keys pressed this tick, plus any new click or touch.
func frameFor(keys []ebiten.Key, pointer bool) core.InputFrame {
	var f core.InputFrame
	for _, k := range keys {
		f.Add(keyActions[k])
	}
	if pointer {
		f.Add(core.ActionFlap)
	}
	return f
}

func readInput() core.InputFrame {
	keys := inpututil.AppendJustPressedKeys(nil)
	pointer := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	return frameFor(keys, pointer)
}

package main

import (
	"flag"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"github.com/plus3/blockfall/core"
	"github.com/plus3/blockfall/render"
)

func main() {
	seed := flag.Uint64("seed", 0, "Seed for a reproducible piece sequence; 0 uses the global generator.")
	debug := flag.Bool("debug", false, "Show the ImGui session inspector overlay.")
	flag.Parse()

	src := core.NewSource()
	if *seed != 0 {
		src = core.NewSeededSource(*seed)
	}

	game := render.NewGame(src)

	if *debug {
		backend := ebitenbackend.NewEbitenBackend()
		backend.CreateWindow("blockfall", render.ScreenWidth*2, render.ScreenHeight*2)
		imgui.CurrentIO().SetIniFilename("")
		game.WithInspector(&render.ImguiBackend{EbitenBackend: backend}, render.NewInspector(100))
	} else {
		ebiten.SetWindowSize(render.ScreenWidth*2, render.ScreenHeight*2)
		ebiten.SetWindowTitle("blockfall")
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalln(err)
	}
}

package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"

	"github.com/gucio321/meshy/pkg/tess"
	"github.com/gucio321/meshy/pkg/viewer"
)

func main() {
	inputFile := flag.String("i", "", "Input file (mesh JSON exported by cmd/meshy)")
	flag.Parse()

	if *inputFile == "" {
		flag.Usage()
		glg.Fatal("Input file is required")
	}

	// load file
	data, err := os.ReadFile(*inputFile)
	if err != nil {
		glg.Fatal(err)
	}

	// parse file
	var mesh tess.Mesh
	if err := json.Unmarshal(data, &mesh); err != nil {
		glg.Fatal(err)
	}

	if err := mesh.Validate(); err != nil {
		glg.Fatal(err)
	}

	ebiten.SetWindowSize(800, 600)
	if err := ebiten.RunGame(viewer.NewViewer(&mesh)); err != nil {
		glg.Fatal(err)
	}
}

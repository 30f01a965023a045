package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	inkscape "github.com/galihrivanto/go-inkscape"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"

	pkg "github.com/gucio321/meshy/pkg"
	"github.com/gucio321/meshy/pkg/assets"
	"github.com/gucio321/meshy/pkg/presets"
	"github.com/gucio321/meshy/pkg/tess"
	"github.com/gucio321/meshy/pkg/viewer"
)

type Flags struct {
	InputFilePath  string
	OutputFilePath string
	Scale          float64
	Tolerance      float64
	Origin         string
	FillRule       string
	View           bool
	DebugRegions   bool
	Inkscape       bool
	ShowStats      bool
	preset         string
	makePreset     bool
}

func main() {
	var f Flags
	flag.StringVar(&f.InputFilePath, "i", "", "input SVG file path")
	flag.StringVar(&f.OutputFilePath, "o", "", "output mesh JSON file path")
	flag.Float64Var(&f.Scale, "s", 1.0, "scale factor")
	flag.Float64Var(&f.Tolerance, "t", tess.DefaultTolerance, "curve flattening tolerance (document units)")
	flag.StringVar(&f.Origin, "origin", "topleft", "mesh origin: topleft or center")
	flag.StringVar(&f.FillRule, "fill-rule", "", "override fill rule: nonzero or evenodd")
	flag.BoolVar(&f.View, "v", false, "view the mesh")
	flag.BoolVar(&f.DebugRegions, "debug-regions", false, "recolor each draw-call region (use with -v)")
	flag.BoolVar(&f.Inkscape, "inkscape", false, "pre-process the input with inkscape (object-to-path)")
	flag.BoolVar(&f.ShowStats, "stats", false, "print mesh statistics")
	flag.StringVar(&f.preset, "preset", "", "JSON preset file path. This will override all other flags")
	flag.BoolVar(&f.makePreset, "make-preset", false, "auto-generate preset")
	flag.Parse()

	if f.makePreset {
		out, err := json.MarshalIndent(f, "", "\t")
		if err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}
		fmt.Println(string(out))
		glg.Infof("Presets generated")
		return
	}

	if f.preset != "" {
		if data, err := os.ReadFile(f.preset); err == nil {
			if err := json.Unmarshal(data, &f); err != nil {
				glg.Fatalf("Unable to parse preset from %s: %v", f.preset, err)
			}
		} else if p, perr := presets.Get(f.preset); perr == nil && p != nil {
			glg.Infof("using embedded preset %s: %s", p.Name, p.Description)
			f.Tolerance, f.Scale = p.Tolerance, p.Scale
		} else {
			names, _ := presets.Names()
			glg.Fatalf("Unable to read preset %s: not a file and not one of %v", f.preset, names)
		}
	}

	if _, err := os.Stat(f.InputFilePath); os.IsNotExist(err) {
		flag.Usage()
		os.Exit(1)
	}

	inputFile := f.InputFilePath
	if f.Inkscape {
		inkscapeProxy := inkscape.NewProxy(inkscape.Verbose(true))
		if err := inkscapeProxy.Run(); err != nil {
			glg.Fatalf("Cannot run inkscape: %v", err)
		}

		defer inkscapeProxy.Close()

		glg.Infof("running inkscape pre-processing")
		convertedFile := f.InputFilePath + ".meshy.svg"
		inkscapeProxy.RawCommands(
			fmt.Sprintf("file-open:%s", f.InputFilePath),
			fmt.Sprintf("export-filename:%s", convertedFile),
			"export-type:svg",
			"select-all",
			"object-to-path",
			"path-simplify",
			"export-do",
		)

		glg.Info("inkscape done.")
		inputFile = convertedFile
	}

	data, err := os.ReadFile(inputFile)
	if err != nil {
		glg.Fatalf("Cannot read file %s: %v", inputFile, err)
	}

	result, err := pkg.Parse(data)
	if err != nil {
		glg.Fatalf("Cannot parse file %s: %v", inputFile, err)
	}

	result.Scale(f.Scale).Tolerance(f.Tolerance)

	switch f.Origin {
	case "topleft":
		result.Origin(pkg.OriginTopLeft)
	case "center":
		result.Origin(pkg.OriginCenter)
	default:
		glg.Fatalf("Unknown origin %q (want topleft or center)", f.Origin)
	}

	if f.FillRule != "" {
		rule, ok := tess.FillRuleEnum[f.FillRule]
		if !ok {
			glg.Fatalf("Unknown fill rule %q (want nonzero or evenodd)", f.FillRule)
		}

		result.FillRule(rule)
	}

	registry := assets.NewRegistry()
	mesh, err := result.RegisterTo(registry, f.InputFilePath)
	if err != nil {
		glg.Fatalf("Cannot tessellate %s: %v", inputFile, err)
	}

	if f.ShowStats {
		fmt.Printf("vertices:  %d\n", len(mesh.Vertices))
		fmt.Printf("indices:   %d\n", len(mesh.Indices))
		fmt.Printf("triangles: %d\n", mesh.TriangleCount())
		fmt.Printf("regions:   %d\n", len(mesh.Regions))
	}

	if f.OutputFilePath != "" {
		out, err := json.MarshalIndent(mesh, "", "\t")
		if err != nil {
			glg.Fatalf("Cannot encode mesh: %v", err)
		}

		if err := os.WriteFile(f.OutputFilePath, out, 0644); err != nil {
			glg.Fatalf("Cannot write file %s: %v", f.OutputFilePath, err)
		}
	}

	if f.View {
		v := viewer.NewViewer(mesh)
		if f.DebugRegions {
			v.DebugRegions()
		}

		ebiten.SetWindowSize(800, 600)
		if err := ebiten.RunGame(v); err != nil {
			glg.Fatalf("Cannot run viewer: %v", err)
		}
	}
}

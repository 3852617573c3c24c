package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/irfansharif/foldlock/internal/app"
	"github.com/irfansharif/foldlock/internal/pattern"
)

const logFlags = log.Ltime | log.Lshortfile

var runtimeLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	log.SetFlags(logFlags)

	if os.Getenv("FOLDLOCK_DEBUG_RUNTIME") == "1" {
		runtimeLogger = log.New(os.Stdout, "[runtime] ", log.Ltime|log.Lmsgprefix)
	}
}

var (
	shapeFlag     = flag.String("shape", "box", "shape to unfold: box, pyramid, envelope, prism or cylinder")
	widthFlag     = flag.Float64("width", 5, "width in cm (diameter for prism and cylinder)")
	heightFlag    = flag.Float64("height", 3, "height in cm")
	depthFlag     = flag.Float64("depth", 5, "depth in cm")
	thicknessFlag = flag.Float64("thickness", 0.5, "material thickness in mm")
	designsFlag   = flag.String("designs", "", "YAML design file; overrides the shape flags")
	jsonFlag      = flag.Bool("json", false, "print reports as JSON")
	verboseFlag   = flag.Bool("v", false, "print warnings and mesh statistics")
)

func main() {
	flag.Parse()

	specs, err := designSpecs()
	if err != nil {
		log.Fatalf("Invalid input: %v", err)
	}
	runtimeLogger.Printf("building %d designs", len(specs))

	application := app.New()
	built, buildErr := application.BuildAll(specs)

	var out output = textOutput{verbose: *verboseFlag}
	if *jsonFlag {
		out = jsonOutput{}
	}
	if err := out.write(os.Stdout, built); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}

	failed := application.Failed()
	runtimeLogger.Printf("%d built, %d failed validation", len(built), len(failed))
	if buildErr != nil || len(failed) > 0 {
		os.Exit(1)
	}
}

func designSpecs() ([]app.DesignSpec, error) {
	if *designsFlag != "" {
		return app.LoadFile(*designsFlag)
	}
	shape, err := pattern.ParseShape(*shapeFlag)
	if err != nil {
		return nil, err
	}
	return []app.DesignSpec{{
		Name: shape.String(),
		Config: pattern.Config{
			Shape:     shape,
			Width:     *widthFlag,
			Height:    *heightFlag,
			Depth:     *depthFlag,
			Thickness: *thicknessFlag,
		},
	}}, nil
}

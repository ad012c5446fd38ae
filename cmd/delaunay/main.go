package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay/animate"
	"github.com/osuushi/delaunay/bowyerwatson"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Headless driver for the step engine. Input on stdin should be newline
// separated points in the form "x y". Blank lines and lines starting with #
// are skipped. Points should have non-negative coordinates (screen space), and
// should not repeat; neither is validated.
var (
	app = kingpin.New("delaunay", "Incrementally triangulate points read from stdin.")

	configPath = app.Flag("config", "YAML settings file.").String()
	trace      = app.Flag("trace", "Print every step.").Bool()
	noColor    = app.Flag("no-color", "Disable colored output.").Bool()
	framesDir  = app.Flag("frames", "Write a PNG of every step into this directory.").String()
	outPath    = app.Flag("out", "Write a PNG of the finished triangulation.").String()
	showImage  = app.Flag("imgcat", "Print the finished triangulation to the terminal (iTerm only).").Bool()
	scale      = app.Flag("scale", "Pixels per unit in saved images. Overrides the config file.").Float64()
	maxSteps   = app.Flag("max-steps", "Give up after this many steps (0 for no limit).").Default("0").Int()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	log.SetFlags(0)

	config, err := animate.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}
	if *scale > 0 {
		config.Scale = *scale
	}

	points, err := readPoints(os.Stdin)
	if err != nil {
		log.Fatalf("Could not read points: %v", err)
	}
	log.Printf("Read %d points", len(points))

	if err := run(points, config); err != nil {
		log.Fatal(err)
	}
}

func run(points []bowyerwatson.Point, config animate.Config) error {
	colors := aurora.NewAurora(!*noColor)
	opts := bowyerwatson.FrameOptions{Scale: config.Scale}

	if *framesDir != "" {
		if err := os.MkdirAll(*framesDir, 0o755); err != nil {
			return errors.Wrapf(err, "creating frames directory %q", *framesDir)
		}
	}

	engine := bowyerwatson.NewEngine()
	engine.SetPoints(points)
	var hint bowyerwatson.Hint
	for !engine.Done() {
		if *maxSteps > 0 && engine.Steps() >= *maxSteps {
			return errors.Errorf("gave up after %d steps", engine.Steps())
		}

		var err error
		hint, err = engine.Step()
		if err != nil {
			return errors.Wrapf(err, "step %d", engine.Steps())
		}
		if *trace {
			fmt.Println(formatHint(colors, engine.Steps(), hint))
		}
		if *framesDir != "" {
			path := filepath.Join(*framesDir, fmt.Sprintf("step%05d.png", engine.Steps()))
			if err := bowyerwatson.SaveFrame(path, engine, hint, opts); err != nil {
				return err
			}
		}
	}

	triangles := engine.CurrentTriangles()
	log.Printf("%s %d triangles in %d steps", colors.Green("Finished:"), len(triangles), engine.Steps())
	for _, t := range triangles {
		fmt.Println(t)
	}

	if *outPath != "" || *showImage {
		path := *outPath
		if path == "" {
			path = filepath.Join(os.TempDir(), "delaunay.png")
		}
		if err := bowyerwatson.SaveFrame(path, engine, hint, opts); err != nil {
			return err
		}
		if *showImage {
			imgcat.CatFile(path, os.Stdout)
		}
	}
	return nil
}

func formatHint(colors aurora.Aurora, step int, hint bowyerwatson.Hint) string {
	line := fmt.Sprintf("%5d %s", step, colors.Cyan(hint.Phase))
	if hint.HasPoint {
		line += fmt.Sprintf(" %v", hint.Point)
	}
	if hint.Scanned {
		verdict := colors.Green("good")
		if hint.Bad {
			verdict = colors.Red("bad")
		}
		line += fmt.Sprintf(" %v %s", hint.Triangle, verdict)
	}
	if hint.Finished {
		line += " " + colors.Bold("finished").String()
	}
	return line
}

func readPoints(in io.Reader) ([]bowyerwatson.Point, error) {
	var points []bowyerwatson.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return points, nil
}

func parsePoint(line string) (bowyerwatson.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return bowyerwatson.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return bowyerwatson.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return bowyerwatson.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return bowyerwatson.Point{X: x, Y: y}, nil
}

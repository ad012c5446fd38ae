package main

import (
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/osuushi/delaunay/animate"
	"github.com/osuushi/delaunay/bowyerwatson"
	"gopkg.in/alecthomas/kingpin.v2"
)

const helpText = `Click anywhere on screen to add vertices

<Space> to start delaunay triangulation
<Space> to pause animation (if started and running)
<Space> to continue animation (if paused)
<Esc> to stop animation
<f> to make animation faster
<s> to make animation slower
<c> to go frame by frame (if paused)
<r> to remove all vertices
<h> to hide/show help text`

var (
	background   = color.RGBA{10, 10, 10, 255}
	meshColor    = color.RGBA{255, 255, 255, 255}
	badColor     = color.RGBA{255, 0, 0, 255}
	goodColor    = color.RGBA{0, 255, 0, 255}
	circleColor  = color.RGBA{255, 215, 0, 50}
	vertexColor  = color.RGBA{255, 255, 0, 255}
	currentColor = color.RGBA{0, 255, 255, 255}
)

// Viewer is the interactive driver. It owns the cadence and the points the
// user is placing; the engine owns everything about the triangulation.
type Viewer struct {
	engine  *bowyerwatson.Engine
	cadence *animate.Cadence

	vertices  []bowyerwatson.Point
	animating bool
	hideHelp  bool
	lastHint  bowyerwatson.Hint
}

func NewViewer(config animate.Config) *Viewer {
	return &Viewer{
		engine:  bowyerwatson.NewEngine(),
		cadence: animate.NewCadence(config),
	}
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if !v.animating {
			v.engine.SetPoints(v.vertices)
			v.animating = true
		}
		v.cadence.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		v.stop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		v.cadence.Faster()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		v.cadence.Slower()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		v.cadence.SingleStep()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		v.hideHelp = !v.hideHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.vertices = nil
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !v.animating {
		x, y := ebiten.CursorPosition()
		v.vertices = append(v.vertices, bowyerwatson.Point{X: float64(x), Y: float64(y)})
	}

	if v.cadence.Tick() && v.animating {
		hint, err := v.engine.Step()
		if err != nil {
			log.Printf("Triangulation stopped: %v", err)
			v.stop()
			return nil
		}
		v.lastHint = hint
	}
	return nil
}

func (v *Viewer) stop() {
	v.animating = false
	v.cadence.SetPaused(true)
	v.engine.Reset()
	v.lastHint = bowyerwatson.Hint{}
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	if v.animating {
		v.drawEngine(screen)
	} else {
		for _, p := range v.vertices {
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 2, vertexColor, true)
		}
	}

	if !v.hideHelp {
		ebitenutil.DebugPrint(screen, helpText)
	}
}

func (v *Viewer) drawEngine(screen *ebiten.Image) {
	hint := v.lastHint
	if hint.Scanned && hint.Circle.IsFinite() {
		c := hint.Circle
		vector.DrawFilledCircle(screen, float32(c.Center.X), float32(c.Center.Y), float32(c.Radius), circleColor, true)
	}

	for t := range v.engine.Triangles() {
		strokeTriangle(screen, t, meshColor)
	}
	for _, t := range v.engine.BadTriangles() {
		strokeTriangle(screen, t, badColor)
	}
	if hint.Scanned && !hint.Bad {
		strokeTriangle(screen, hint.Triangle, goodColor)
	}

	for _, p := range v.engine.Points() {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 2, vertexColor, true)
	}
	if p, ok := v.engine.CurrentPoint(); ok {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 5, currentColor, true)
	}
}

func strokeTriangle(screen *ebiten.Image, t bowyerwatson.Triangle, clr color.Color) {
	for _, e := range t.Edges() {
		vector.StrokeLine(screen, float32(e.Start.X), float32(e.Start.Y), float32(e.End.X), float32(e.End.Y), 1, clr, true)
	}
}

// Keep one game pixel per screen pixel, so clicks land where the points are
// drawn at any window size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	app := kingpin.New("viewer", "Watch Bowyer-Watson build a Delaunay triangulation.")
	configPath := app.Flag("config", "YAML settings file.").String()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	config, err := animate.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Delaunay Triangulation")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewViewer(config)); err != nil {
		log.Fatal(err)
	}
}

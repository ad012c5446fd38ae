package animate

// Cadence decides on which frames the engine should step. The driver calls
// Tick once per frame and steps when it returns true. Frames are only counted
// while running, so a paused cadence never becomes due on its own.
type Cadence struct {
	framesPerStep int
	speedStep     int
	sinceLast     int
	paused        bool
}

func NewCadence(config Config) *Cadence {
	c := &Cadence{
		framesPerStep: config.FramesPerStep,
		speedStep:     config.SpeedStep,
		paused:        config.StartPaused,
	}
	if c.framesPerStep < 1 {
		c.framesPerStep = 1
	}
	if c.speedStep < 1 {
		c.speedStep = 1
	}
	return c
}

func (c *Cadence) Tick() bool {
	due := c.sinceLast >= c.framesPerStep
	if due {
		c.sinceLast = 0
	}
	if !c.paused {
		c.sinceLast++
	}
	return due
}

// Make the next Tick due, even while paused.
func (c *Cadence) SingleStep() {
	c.sinceLast = c.framesPerStep + 1
}

func (c *Cadence) Faster() {
	c.framesPerStep -= c.speedStep
	if c.framesPerStep < 1 {
		c.framesPerStep = 1
	}
}

func (c *Cadence) Slower() {
	c.framesPerStep += c.speedStep
}

func (c *Cadence) TogglePause() {
	c.paused = !c.paused
}

func (c *Cadence) SetPaused(paused bool) {
	c.paused = paused
}

func (c *Cadence) Paused() bool {
	return c.paused
}

func (c *Cadence) FramesPerStep() int {
	return c.framesPerStep
}

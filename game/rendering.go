package game

import (
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evosim/inspector"
	"github.com/pthm-cable/evosim/simulation"
)

// Viewer colors
var (
	colorBackground = rl.Color{R: 18, G: 22, B: 30, A: 255}
	colorFood       = rl.Color{R: 120, G: 220, B: 110, A: 255}
	colorAgent      = rl.Color{R: 240, G: 200, B: 80, A: 255}
	colorSelected   = rl.Color{R: 250, G: 110, B: 90, A: 255}
	colorFOV        = rl.Color{R: 255, G: 255, B: 255, A: 28}
	colorPanel      = rl.Color{R: 236, G: 236, B: 236, A: 255}
)

// Update handles input and advances the simulation for one frame.
func (g *Game) Update() error {
	g.handleInput()
	if g.paused {
		return nil
	}
	return g.UpdateHeadless()
}

// Draw renders the world and the control panel. It returns an error if a
// Train request from the panel failed.
func (g *Game) Draw() error {
	g.perfCollector.RecordFrame()

	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(colorBackground)

	world := g.sim.World()
	foodRadius := float32(g.cfg.Agent.FeedRadius)
	for _, food := range world.Foods() {
		g.drawCircle(food.Position, foodRadius/2, colorFood)
	}

	for i, agent := range world.Agents() {
		color := colorAgent
		if i == g.selected {
			color = colorSelected
			if g.showFOV {
				g.drawFOV(agent)
			}
		}
		g.drawAgent(agent, color)
	}

	return g.drawPanel()
}

// drawCircle draws a world-space circle, repeated across wrap seams.
func (g *Game) drawCircle(p simulation.Position, radius float32, color rl.Color) {
	if !g.camera.IsVisible(p.X, p.Y, radius) {
		return
	}
	r := radius * g.camera.Scale()
	sx, sy := g.camera.WorldToScreen(p.X, p.Y)
	rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, r, color)
	for _, ghost := range g.camera.GhostPositions(p.X, p.Y, radius) {
		rl.DrawCircleV(rl.Vector2{X: ghost[0], Y: ghost[1]}, r, color)
	}
}

// drawAgent renders an agent as a triangle pointing along its heading.
func (g *Game) drawAgent(agent *simulation.Agent, color rl.Color) {
	p := agent.Position()
	radius := float32(0.012)
	if !g.camera.IsVisible(p.X, p.Y, radius) {
		return
	}
	sx, sy := g.camera.WorldToScreen(p.X, p.Y)
	drawOrientedTriangle(sx, sy, agent.Heading(), radius*g.camera.Scale(), color)
}

// drawFOV draws the selected agent's vision sectors.
func (g *Game) drawFOV(agent *simulation.Agent) {
	eye := agent.Eye()
	p := agent.Position()
	sx, sy := g.camera.WorldToScreen(p.X, p.Y)
	center := rl.Vector2{X: sx, Y: sy}
	radius := eye.FOVRange() * g.camera.Scale()

	vision := eye.ProcessVision(p, agent.Heading(), g.sim.World().Foods())
	sector := eye.FOVAngle() / float32(eye.Cells())
	start := agent.Heading() - eye.FOVAngle()/2

	for i, v := range vision {
		// Screen y points down, so angles are mirrored.
		from := -(start + float32(i+1)*sector) * 180 / math.Pi
		to := -(start + float32(i)*sector) * 180 / math.Pi
		color := colorFOV
		color.A += uint8(min(v, 1) * 120)
		rl.DrawCircleSector(center, radius, from, to, 8, color)
	}
}

// drawPanel renders stats and the raygui controls in the side panel.
func (g *Game) drawPanel() error {
	x := g.camera.ViewportW
	rl.DrawRectangle(int32(x), 0, PanelWidth, int32(g.screenHeight), colorPanel)

	px := x + 15
	y := float32(15)
	for _, line := range g.hudLines() {
		rl.DrawText(line, int32(px), int32(y), 16, rl.DarkGray)
		y += 20
	}
	y += 10

	pauseLabel := "Pause"
	if g.paused {
		pauseLabel = "Resume"
	}
	if gui.Button(rl.Rectangle{X: px, Y: y, Width: 125, Height: 30}, pauseLabel) {
		g.paused = !g.paused
	}
	train := gui.Button(rl.Rectangle{X: px + 135, Y: y, Width: 125, Height: 30}, "Train")
	y += 45

	rl.DrawText("Steps per frame", int32(px), int32(y), 14, rl.Gray)
	y += 18
	steps := gui.SliderBar(
		rl.Rectangle{X: px + 20, Y: y, Width: PanelWidth - 80, Height: 20},
		"1", "200",
		float32(g.stepsPerUpdate), 1, MaxStepsPerUpdate,
	)
	g.stepsPerUpdate = max(1, int(steps))
	y += 35

	g.drawHistory(px, y, PanelWidth-30, 100)
	y += 115

	if g.selected >= 0 {
		world := g.sim.World()
		inspector.Draw(int32(x)+5, int32(y), PanelWidth-10, world.Agents()[g.selected], world.Foods())
	} else {
		rl.DrawText("Click an agent to inspect it", int32(px), int32(y), 14, rl.Gray)
	}

	if train {
		return g.Train()
	}
	return nil
}

// drawHistory plots average fitness per generation.
func (g *Game) drawHistory(x, y, w, h float32) {
	rl.DrawRectangleLines(int32(x), int32(y), int32(w), int32(h), rl.Gray)
	rl.DrawText("avg fitness / generation", int32(x+5), int32(y+5), 12, rl.Gray)
	if len(g.history) < 2 {
		return
	}

	var top float64 = 1
	for _, v := range g.history {
		top = max(top, v)
	}

	n := len(g.history)
	step := w / float32(n-1)
	for i := 1; i < n; i++ {
		x0 := x + float32(i-1)*step
		x1 := x + float32(i)*step
		y0 := y + h - float32(g.history[i-1]/top)*(h-20)
		y1 := y + h - float32(g.history[i]/top)*(h-20)
		rl.DrawLineV(rl.Vector2{X: x0, Y: y0}, rl.Vector2{X: x1, Y: y1}, colorSelected)
	}
}

// drawOrientedTriangle draws a triangle pointing in the heading direction.
// Heading is in world orientation; screen y is flipped.
func drawOrientedTriangle(x, y, heading, radius float32, color rl.Color) {
	point := func(angle, r float32) rl.Vector2 {
		return rl.Vector2{
			X: x + float32(math.Cos(float64(angle)))*r,
			Y: y - float32(math.Sin(float64(angle)))*r,
		}
	}

	front := point(heading, radius*1.5)
	backLeft := point(heading+math.Pi*0.8, radius)
	backRight := point(heading-math.Pi*0.8, radius)

	// DrawTriangle requires counter-clockwise winding on screen
	rl.DrawTriangle(front, backLeft, backRight, color)
	rl.DrawTriangleLines(front, backLeft, backRight, rl.White)
}

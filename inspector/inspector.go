// Package inspector draws the selected agent's senses and brain.
package inspector

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evosim/simulation"
)

// OutputLabels names the brain outputs in order.
var OutputLabels = []string{"Speed", "Turn"}

// Panel colors
var (
	ColorPanelBg = rl.Color{R: 25, G: 25, B: 32, A: 235}
	ColorHeader  = rl.Color{R: 255, G: 200, B: 100, A: 255}
)

// Draw renders the agent's state, vision and network in the given box and
// returns the height used.
func Draw(x, y, width int32, agent *simulation.Agent, foods []simulation.Food) int32 {
	if agent == nil {
		return 0
	}

	eye := agent.Eye()
	vision := eye.ProcessVision(agent.Position(), agent.Heading(), foods)

	const networkHeight = 220
	height := int32(4*18 + 40 + 18 + networkHeight + 24)
	rl.DrawRectangle(x, y, width, height, ColorPanelBg)

	cy := y + 6
	rl.DrawText("AGENT", x+8, cy, 14, ColorHeader)
	cy += 20

	p := agent.Position()
	cy += DrawLabel(x+8, cy, "Position", fmt.Sprintf("%.3f, %.3f", p.X, p.Y))
	cy += DrawAngle(x+8, cy, "Heading", agent.Heading())
	cy += DrawBar(x+8, cy, "Speed", agent.Speed(), 0.01)
	cy += DrawLabel(x+8, cy, "Eaten", fmt.Sprint(agent.Satiation()))

	cy += DrawBarGroup(x+8, cy, "Vision", vision, 1, sectorLabels(eye.Cells()))

	trace, err := agent.Brain().Network().Trace(vision)
	if err != nil {
		rl.DrawText(err.Error(), x+8, cy, 12, ColorTextDim)
		return height
	}
	DrawNetworkDiagram(x+8, cy, width-16, networkHeight, agent.Brain().Network(), trace)

	return height
}

// sectorLabels marks the outermost and center sectors of the eye.
// Sector 0 is the rightmost edge of the field of view.
func sectorLabels(cells int) []string {
	labels := make([]string, cells)
	if cells == 0 {
		return labels
	}
	labels[0] = "R"
	labels[cells-1] = "L"
	if cells%2 == 1 {
		labels[cells/2] = "F"
	}
	return labels
}

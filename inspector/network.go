package inspector

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evosim/neural"
)

// NetworkColors for activation visualization.
var (
	ColorNodePositive = rl.Color{R: 255, G: 100, B: 100, A: 255}
	ColorNodeNegative = rl.Color{R: 100, G: 100, B: 255, A: 255}
	ColorEdgePositive = rl.Color{R: 200, G: 80, B: 80, A: 100}
	ColorEdgeNegative = rl.Color{R: 80, G: 80, B: 200, A: 100}
	ColorLabelDim     = rl.Color{R: 120, G: 120, B: 120, A: 255}
)

// edgeThreshold hides weights too small to matter visually.
const edgeThreshold = 0.1

// DrawNetworkDiagram renders the network one column per layer, with node
// colors from trace (one activation slice per topology entry).
func DrawNetworkDiagram(x, y, width, height int32, nn *neural.Network, trace [][]float32) {
	if nn == nil {
		rl.DrawText("No network data", x+10, y+10, 14, ColorLabelDim)
		return
	}

	nodes := layoutNodes(nn.Topology(), float32(x), float32(y), float32(width), float32(height))
	nodeRadius := float32(5)

	// Edges first so nodes draw on top
	for li, layer := range nn.Layers() {
		for ni, neuron := range layer.Neurons {
			for wi, weight := range neuron.Weights {
				if absFloat(weight) < edgeThreshold {
					continue
				}
				drawEdge(nodes[li][wi], nodes[li+1][ni], weight)
			}
		}
	}

	for li, column := range nodes {
		for ni, pos := range column {
			var activation float32
			if li < len(trace) && ni < len(trace[li]) {
				activation = trace[li][ni]
			}
			drawNode(pos, nodeRadius, activation)
		}
	}

	last := nodes[len(nodes)-1]
	for i, pos := range last {
		if i < len(OutputLabels) {
			rl.DrawText(OutputLabels[i], int32(pos.X+nodeRadius+6), int32(pos.Y)-5, 10, ColorLabelDim)
		}
	}
}

// layoutNodes places each layer in its own column, vertically centered.
func layoutNodes(topology neural.Topology, x, y, width, height float32) [][]rl.Vector2 {
	cols := float32(len(topology))
	colWidth := width / cols

	var widest int
	for _, n := range topology {
		widest = max(widest, n)
	}
	spacing := (height - 20) / float32(max(widest, 1))

	nodes := make([][]rl.Vector2, len(topology))
	for li, n := range topology {
		cx := x + colWidth*float32(li) + colWidth/2
		offset := (height - 20 - float32(n)*spacing) / 2
		nodes[li] = make([]rl.Vector2, n)
		for i := range nodes[li] {
			nodes[li][i] = rl.Vector2{
				X: cx,
				Y: y + 10 + offset + float32(i)*spacing + spacing/2,
			}
		}
	}
	return nodes
}

// drawNode renders a single neuron node.
func drawNode(pos rl.Vector2, radius, activation float32) {
	rl.DrawCircleV(pos, radius, activationColor(activation))
	rl.DrawCircleLinesV(pos, radius, rl.Color{R: 100, G: 100, B: 100, A: 255})
}

// drawEdge renders a connection between nodes.
func drawEdge(from, to rl.Vector2, weight float32) {
	thickness := min(max(absFloat(weight)*1.5, 0.5), 3)

	color := ColorEdgePositive
	if weight < 0 {
		color = ColorEdgeNegative
	}
	color.A = uint8(min(40+int(absFloat(weight)*40), 150))

	rl.DrawLineEx(from, to, thickness, color)
}

// activationColor returns a color based on activation value.
// Negative = blue, Zero = gray, Positive = red.
func activationColor(activation float32) rl.Color {
	t := min(absFloat(activation), 1)
	if activation > 0 {
		return rl.Color{R: uint8(60 + t*195), G: uint8(60 - t*30), B: uint8(60 - t*30), A: 255}
	}
	return rl.Color{R: uint8(60 - t*30), G: uint8(60 - t*30), B: uint8(60 + t*195), A: 255}
}

func absFloat(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

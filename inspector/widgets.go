package inspector

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Widget colors
var (
	ColorBarBg       = rl.Color{R: 40, G: 40, B: 40, A: 255}
	ColorBarFill     = rl.Color{R: 100, G: 180, B: 100, A: 255}
	ColorBarLow      = rl.Color{R: 180, G: 80, B: 80, A: 255}
	ColorText        = rl.Color{R: 220, G: 220, B: 220, A: 255}
	ColorTextDim     = rl.Color{R: 150, G: 150, B: 150, A: 255}
	ColorAngleBg     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorAngleNeedle = rl.Color{R: 255, G: 200, B: 100, A: 255}
)

// DrawLabel renders a text value.
func DrawLabel(x, y int32, name, value string) int32 {
	rl.DrawText(fmt.Sprintf("%s: %s", name, value), x, y, 14, ColorText)
	return 18
}

// DrawBar renders a horizontal progress bar.
func DrawBar(x, y int32, name string, value, maxVal float32) int32 {
	ratio := clampUnit(value / maxVal)

	barWidth := int32(120)
	barHeight := int32(14)

	rl.DrawText(name, x, y, 14, ColorTextDim)

	barX := x + 80
	rl.DrawRectangle(barX, y, barWidth, barHeight, ColorBarBg)
	rl.DrawRectangle(barX, y, int32(float32(barWidth)*ratio), barHeight, lerpColor(ColorBarLow, ColorBarFill, ratio))
	rl.DrawText(fmt.Sprintf("%.4f", value), barX+barWidth+5, y, 14, ColorTextDim)

	return 18
}

// DrawBarGroup renders one mini-bar per value, such as eye sectors.
// labels may be nil or hold one (possibly empty) label per value.
func DrawBarGroup(x, y int32, name string, values []float32, maxVal float32, labels []string) int32 {
	barWidth := int32(14)
	barHeight := int32(30)
	gap := int32(2)
	labelHeight := int32(0)
	if len(labels) != len(values) {
		labels = nil
	}
	if labels != nil {
		labelHeight = 10
	}

	rl.DrawText(name, x, y, 14, ColorTextDim)

	// Sector 0 is on the agent's right, so draw right to left.
	barX := x + 60
	n := int32(len(values))
	for i, v := range values {
		ratio := clampUnit(v / maxVal)
		bx := barX + (n-1-int32(i))*(barWidth+gap)

		rl.DrawRectangle(bx, y, barWidth, barHeight, ColorBarBg)

		// Fill from bottom
		fillHeight := int32(float32(barHeight) * ratio)
		rl.DrawRectangle(bx, y+barHeight-fillHeight, barWidth, fillHeight, lerpColor(ColorBarLow, ColorBarFill, ratio))

		if labels != nil && labels[i] != "" {
			textW := rl.MeasureText(labels[i], 8)
			rl.DrawText(labels[i], bx+barWidth/2-textW/2, y+barHeight+2, 8, ColorTextDim)
		}
	}

	return barHeight + labelHeight + 4
}

// DrawAngle renders a compass-style angle indicator. Angles grow
// counter-clockwise on screen.
func DrawAngle(x, y int32, name string, radians float32) int32 {
	size := int32(32)
	centerX := x + 80 + size/2
	centerY := y + size/2

	rl.DrawText(name, x, y+size/2-7, 14, ColorTextDim)

	rl.DrawCircle(centerX, centerY, float32(size/2), ColorAngleBg)
	rl.DrawCircleLines(centerX, centerY, float32(size/2), ColorTextDim)

	needleLen := float32(size/2 - 4)
	endX := float32(centerX) + needleLen*float32(math.Cos(float64(radians)))
	endY := float32(centerY) - needleLen*float32(math.Sin(float64(radians)))
	rl.DrawLineEx(
		rl.Vector2{X: float32(centerX), Y: float32(centerY)},
		rl.Vector2{X: endX, Y: endY},
		2,
		ColorAngleNeedle,
	)

	degrees := radians * 180 / math.Pi
	rl.DrawText(fmt.Sprintf("%.0f deg", degrees), x+80+size+5, y+size/2-7, 14, ColorTextDim)

	return size + 4
}

func clampUnit(v float32) float32 {
	if v < 0 || v != v {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lerpColor interpolates between two colors.
func lerpColor(a, b rl.Color, t float32) rl.Color {
	return rl.Color{
		R: uint8(float32(a.R) + (float32(b.R)-float32(a.R))*t),
		G: uint8(float32(a.G) + (float32(b.G)-float32(a.G))*t),
		B: uint8(float32(a.B) + (float32(b.B)-float32(a.B))*t),
		A: 255,
	}
}

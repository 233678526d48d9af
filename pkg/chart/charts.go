package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/aretw0/capstone/pkg/project"
)

const (
	overviewTitle    = "SpaceX Falcon 9 Landing Prediction - Complete Project Pipeline"
	methodologyTitle = "Comprehensive Data Science Methodology Applied"
	stackTitle       = "SpaceX Project - Technical Stack Architecture"
)

// Chart is one of the generated figures.
type Chart struct {
	Name     string // file name without extension
	Title    string
	Progress string // printed before the chart is generated
	Width    float64
	Height   float64
	draw     func(c Canvas, facts *project.Facts) error
}

// Draw renders the chart onto c.
func (ch Chart) Draw(c Canvas, facts *project.Facts) error {
	return ch.draw(c, facts)
}

// Charts returns the generated charts in generation order.
func Charts() []Chart {
	return []Chart{
		{
			Name:     "spacex_project_overview",
			Title:    overviewTitle,
			Progress: "📊 Creating project overview diagram...",
			Width:    16, Height: 10,
			draw: drawOverview,
		},
		{
			Name:     "notebook_analysis_breakdown",
			Title:    "Notebook Analysis Breakdown",
			Progress: "📈 Creating notebook analysis chart...",
			Width:    16, Height: 8,
			draw: drawBreakdown,
		},
		{
			Name:     "spacex_methodology_summary",
			Title:    methodologyTitle,
			Progress: "🔬 Creating methodology summary...",
			Width:    14, Height: 10,
			draw: drawMethodology,
		},
		{
			Name:     "spacex_technical_stack",
			Title:    stackTitle,
			Progress: "🛠 Creating technical stack overview...",
			Width:    14, Height: 8,
			draw: drawStack,
		},
	}
}

func title(c Canvas, at Point, s string, size float64) {
	Text(c, at, s, TextStyle{
		Font:   Font{Size: size, Bold: true},
		Color:  Black,
		VAlign: VAlignBottom,
	})
}

// drawOverview draws the pipeline stages as stacked boxes joined by arrows.
func drawOverview(c Canvas, facts *project.Facts) error {
	stages := facts.Pipeline
	if len(stages) == 0 {
		return fmt.Errorf("no pipeline stages")
	}
	f := UnitFrame(0.5, 0.4, 15, 8.6)

	ys := make([]float64, len(stages))
	for i := range stages {
		ys[i] = 0.8
		if len(stages) > 1 {
			ys[i] = 0.8 - float64(i)*0.7/float64(len(stages)-1)
		}
	}

	for i, stage := range stages {
		col, err := ParseColor(stage.Color)
		if err != nil {
			return fmt.Errorf("stage %s: %w", stage.Name, err)
		}
		y := ys[i]
		f.Rect(c, 0.1, y-0.05, 0.8, 0.08, col, 0.7)
		f.RectEdge(c, 0.1, y-0.05, 0.8, 0.08, Black, 1)

		Text(c, f.P(0.5, y), stage.Name, TextStyle{
			Font:  Font{Size: 14, Bold: true},
			Color: White,
		})
		for j, component := range stage.Components {
			Text(c, f.P(0.05+float64(j)*0.45, y-0.02), "• "+component, TextStyle{
				Font:   Font{Size: 10},
				Color:  Black,
				HAlign: AlignLeft,
			})
		}
	}

	for i := 0; i < len(stages)-1; i++ {
		Arrow(c, f.P(0.5, ys[i]-0.05), f.P(0.5, ys[i+1]+0.05), Gray, 2)
	}

	title(c, Point{X: f.Top().X, Y: f.Top().Y + 0.28}, overviewTitle, 18)
	return nil
}

// drawBreakdown draws notebook cell counts as bars next to a pie of project focus.
func drawBreakdown(c Canvas, facts *project.Facts) error {
	if err := drawCellBars(c, facts.Notebooks, Frame{X: 1.1, Y: 1.3, W: 6.3, H: 5.7}); err != nil {
		return err
	}
	return drawFocusPie(c, facts.FocusDistribution, Point{X: 12, Y: 3.9}, 2.6)
}

func drawCellBars(c Canvas, notebooks []project.NotebookStat, box Frame) error {
	if len(notebooks) == 0 {
		return fmt.Errorf("no notebook statistics")
	}
	maxCells := 0
	for _, nb := range notebooks {
		maxCells = max(maxCells, nb.Cells)
	}
	if maxCells <= 0 {
		return fmt.Errorf("notebook cell counts are all zero")
	}
	ticks := niceTicks(float64(maxCells)*1.08, 5)

	f := box
	f.XMin, f.XMax = -0.6, float64(len(notebooks))-0.4
	f.YMin, f.YMax = 0, ticks[len(ticks)-1]

	colors := sampleSet3(len(notebooks))
	tick := Font{Size: 10}
	for i, nb := range notebooks {
		x := float64(i)
		f.Rect(c, x-0.4, 0, 0.8, float64(nb.Cells), colors[i], 1)
		Text(c, f.P(x, float64(nb.Cells)+1), fmt.Sprintf("%d", nb.Cells), TextStyle{
			Font: tick, Color: Black, VAlign: VAlignBottom,
		})
		Text(c, Point{X: f.P(x, 0).X, Y: f.Y - 0.12}, fmt.Sprintf("NB%d", i+1), TextStyle{
			Font: tick, Color: Black, VAlign: VAlignTop, Rotation: 45,
		})
	}

	for _, v := range ticks {
		p := f.P(f.XMin, v)
		Line(c, p, Point{X: p.X - 0.05, Y: p.Y}, Black, 0.8, 1)
		Text(c, Point{X: p.X - 0.1, Y: p.Y}, fmt.Sprintf("%g", v), TextStyle{
			Font: tick, Color: Black, HAlign: AlignRight,
		})
	}
	RectEdge(c, f.X, f.Y, f.W, f.H, Black, 0.8)

	label := Font{Size: 12}
	Text(c, Point{X: f.X + f.W/2, Y: f.Y - 0.65}, "Notebooks", TextStyle{
		Font: label, Color: Black, VAlign: VAlignTop,
	})
	Text(c, Point{X: f.X - 0.6, Y: f.Y + f.H/2}, "Number of Cells", TextStyle{
		Font: label, Color: Black, VAlign: VAlignBottom, Rotation: 90,
	})
	title(c, Point{X: f.Top().X, Y: f.Top().Y + 0.12}, "Notebook Complexity Analysis", 14)
	return nil
}

func drawFocusPie(c Canvas, shares []project.Share, center Point, r float64) error {
	var total float64
	specs := make([]string, len(shares))
	for i, s := range shares {
		total += s.Value
		specs[i] = s.Color
	}
	if total <= 0 {
		return fmt.Errorf("focus distribution is empty")
	}
	colors, err := parseColors(specs...)
	if err != nil {
		return err
	}

	// Wedges start at twelve o'clock and run counter-clockwise.
	start := math.Pi / 2
	for i, s := range shares {
		sweep := 2 * math.Pi * s.Value / total
		Wedge(c, center, r, start, start+sweep, colors[i], 1)

		mid := start + sweep/2
		cos, sin := math.Cos(mid), math.Sin(mid)
		Text(c, Point{X: center.X + 0.6*r*cos, Y: center.Y + 0.6*r*sin},
			fmt.Sprintf("%.1f%%", 100*s.Value/total), TextStyle{
				Font: Font{Size: 10}, Color: Black,
			})

		align := AlignLeft
		if cos < 0 {
			align = AlignRight
		}
		Text(c, Point{X: center.X + 1.1*r*cos, Y: center.Y + 1.1*r*sin}, s.Label, TextStyle{
			Font: Font{Size: 10}, Color: Black, HAlign: align,
		})
		start += sweep
	}

	title(c, Point{X: center.X, Y: center.Y + r*1.25}, "Project Focus Distribution", 14)
	return nil
}

// drawMethodology places the lifecycle phases on a wheel around the project name.
func drawMethodology(c Canvas, facts *project.Facts) error {
	phases := facts.Lifecycle
	if len(phases) == 0 {
		return fmt.Errorf("no lifecycle phases")
	}
	w, _ := c.Size()
	side := 8.6
	f := UnitFrame((w-side)/2, 0.4, side, side)

	center := f.P(0.5, 0.5)
	const radius = 0.35
	for i, phase := range phases {
		col, err := ParseColor(phase.Color)
		if err != nil {
			return fmt.Errorf("phase %s: %w", phase.Name, err)
		}
		angle := 2 * math.Pi * float64(i) / float64(len(phases))
		x := 0.5 + radius*math.Cos(angle)
		y := 0.5 + radius*math.Sin(angle)

		DashedLine(c, center, f.P(x, y), Black, 1, 0.3, 0.06, 0.04)
		Circle(c, f.P(x, y), f.SX(0.08), col, 0.8)
		Text(c, f.P(x, y), phase.Name, TextStyle{
			Font: Font{Size: 10, Bold: true}, Color: Black,
		})

		for j, detail := range phase.Details {
			a := angle + float64(j-1)*0.3
			TextBox(c, f.P(x+0.15*math.Cos(a), y+0.15*math.Sin(a)), "• "+detail,
				TextStyle{Font: Font{Size: 8}, Color: Black},
				BoxStyle{Fill: White, Alpha: 0.8, Pad: 0.3},
			)
		}
	}

	TextBox(c, center, "SpaceX\nProject\nMethodology",
		TextStyle{Font: Font{Size: 12, Bold: true}, Color: Black},
		BoxStyle{Fill: LightGray, Alpha: 0.8, Pad: 0.5},
	)

	title(c, Point{X: f.Top().X, Y: f.Top().Y + 0.28}, methodologyTitle, 16)
	return nil
}

// drawStack draws the technical stack as horizontal layers, first layer at the bottom.
func drawStack(c Canvas, facts *project.Facts) error {
	layers := facts.Stack
	if len(layers) == 0 {
		return fmt.Errorf("no stack layers")
	}
	f := UnitFrame(0.7, 0.4, 12.6, 6.8)

	const (
		base   = 0.1
		height = 0.15
	)
	for i, layer := range layers {
		col, err := ParseColor(layer.Color)
		if err != nil {
			return fmt.Errorf("layer %s: %w", layer.Name, err)
		}
		y := base + float64(i)*height
		f.Rect(c, 0.1, y, 0.8, height-0.02, col, 0.7)
		f.RectEdge(c, 0.1, y, 0.8, height-0.02, Black, 1)

		Text(c, f.P(0.05, y+height/2), layer.Name, TextStyle{
			Font: Font{Size: 12, Bold: true}, Color: Black, HAlign: AlignRight,
		})
		Text(c, f.P(0.5, y+height/2), strings.Join(layer.Technologies, " | "), TextStyle{
			Font: Font{Size: 10}, Color: Black,
		})
	}

	title(c, Point{X: f.Top().X, Y: f.Top().Y + 0.28}, stackTitle, 16)
	return nil
}

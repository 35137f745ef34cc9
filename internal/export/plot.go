// Package export renders stored runs to multi-panel PNG figures using
// gonum/plot.
package export

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/musclelab/internal/storage"
)

var (
	forceColor = color.RGBA{R: 0xd6, G: 0x5a, B: 0x31, A: 0xff}
	ceColor    = color.RGBA{R: 0x2e, G: 0x86, B: 0xab, A: 0xff}
	seeColor   = color.RGBA{R: 0x5f, G: 0xa0, B: 0x52, A: 0xff}
	actColor   = color.RGBA{R: 0x8e, G: 0x44, B: 0xad, A: 0xff}
	driveColor = color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}
)

func xyPoints(xs, ys []float64) plotter.XYs {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	pts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

func addLine(p *plot.Plot, xs, ys []float64, c color.Color, label string) error {
	l, err := plotter.NewLine(xyPoints(xs, ys))
	if err != nil {
		return err
	}
	l.Color = c
	p.Add(l)
	if label != "" {
		p.Legend.Add(label, l)
	}
	return nil
}

// PNG writes a 2x2 panel figure: force traces, excitation/activation,
// CE force-velocity, and SEE force-length.
func PNG(tr *storage.Traces, path string) error {
	forces := plot.New()
	forces.Title.Text = "forces"
	forces.X.Label.Text = "time (s)"
	forces.Y.Label.Text = "force (N)"
	if err := addLine(forces, tr.Times, tr.Force, forceColor, "total"); err != nil {
		return err
	}
	if err := addLine(forces, tr.Times, tr.CEForce, ceColor, "CE"); err != nil {
		return err
	}
	if err := addLine(forces, tr.Times, tr.SEEForce, seeColor, "SEE"); err != nil {
		return err
	}
	forces.Legend.Top = true

	act := plot.New()
	act.Title.Text = "excitation / activation"
	act.X.Label.Text = "time (s)"
	act.Y.Min, act.Y.Max = -0.05, 1.05
	if err := addLine(act, tr.Times, tr.Drive, driveColor, "u(t)"); err != nil {
		return err
	}
	if err := addLine(act, tr.Times, tr.Activation, actColor, "a(t)"); err != nil {
		return err
	}
	act.Legend.Top = true

	fv := plot.New()
	fv.Title.Text = "CE force-velocity"
	fv.X.Label.Text = "CE velocity (m/s)"
	fv.Y.Label.Text = "CE force (N)"
	if err := addLine(fv, tr.CEVelocity, tr.CEForce, ceColor, ""); err != nil {
		return err
	}

	fl := plot.New()
	fl.Title.Text = "SEE force-length"
	fl.X.Label.Text = "SEE length (m)"
	fl.Y.Label.Text = "SEE force (N)"
	if err := addLine(fl, tr.SEELength, tr.SEEForce, seeColor, ""); err != nil {
		return err
	}

	const panelW, panelH = 5 * vg.Inch, 3.5 * vg.Inch
	img := vgimg.New(2*panelW, 2*panelH)
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows: 2, Cols: 2,
		PadX: vg.Millimeter * 2, PadY: vg.Millimeter * 2,
	}
	panels := [][]*plot.Plot{
		{forces, act},
		{fv, fl},
	}
	canvases := plot.Align(panels, tiles, dc)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			panels[r][c].Draw(canvases[r][c])
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

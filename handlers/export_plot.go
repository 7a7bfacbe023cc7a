package handlers

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/abdarwish23/navigation-route-api/models"
	"github.com/abdarwish23/navigation-route-api/routegen"
)

// renderRoutePlot draws the road network, the cell site with its sector
// rays, the accepted sample points and the synthesized route into a PNG.
func renderRoutePlot(net routegen.RoadNetwork, site models.LatLng, azimuths []float64, points, route []models.LatLng) ([]byte, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Cell Site with %d Sectors and Navigation Route", len(azimuths))
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"

	edgeColor := color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}
	for _, e := range net.Edges() {
		line, err := plotter.NewLine(latLngXYs(e.Geometry))
		if err != nil {
			return nil, fmt.Errorf("plotting road edge: %w", err)
		}
		line.Color = edgeColor
		line.Width = vg.Points(0.5)
		p.Add(line)
	}

	sectorColor := color.RGBA{G: 0x80, A: 0xff}
	for _, azimuth := range azimuths {
		rad := azimuth * math.Pi / 180
		ray := []models.LatLng{site, {
			Lat: site.Lat + 0.01*math.Cos(rad),
			Lng: site.Lng + 0.01*math.Sin(rad),
		}}
		line, err := plotter.NewLine(latLngXYs(ray))
		if err != nil {
			return nil, fmt.Errorf("plotting sector ray: %w", err)
		}
		line.Color = sectorColor
		line.Width = vg.Points(1)
		p.Add(line)
	}

	if len(route) > 0 {
		line, err := plotter.NewLine(latLngXYs(route))
		if err != nil {
			return nil, fmt.Errorf("plotting route: %w", err)
		}
		line.Color = color.RGBA{R: 0x80, B: 0x80, A: 0xff}
		line.Width = vg.Points(2)
		p.Add(line)
	}

	if len(points) > 0 {
		scatter, err := plotter.NewScatter(latLngXYs(points))
		if err != nil {
			return nil, fmt.Errorf("plotting sample points: %w", err)
		}
		scatter.GlyphStyle.Color = color.RGBA{B: 0xff, A: 0xff}
		scatter.GlyphStyle.Radius = vg.Points(3)
		p.Add(scatter)
	}

	siteMark, err := plotter.NewScatter(latLngXYs([]models.LatLng{site}))
	if err != nil {
		return nil, fmt.Errorf("plotting cell site: %w", err)
	}
	siteMark.GlyphStyle.Color = color.RGBA{R: 0xff, A: 0xff}
	siteMark.GlyphStyle.Radius = vg.Points(5)
	p.Add(siteMark)

	writer, err := p.WriterTo(6*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("rendering plot: %w", err)
	}
	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("writing plot image: %w", err)
	}
	return buf.Bytes(), nil
}

func latLngXYs(coords []models.LatLng) plotter.XYs {
	xys := make(plotter.XYs, len(coords))
	for i, c := range coords {
		xys[i].X = c.Lng
		xys[i].Y = c.Lat
	}
	return xys
}

package models

import (
	"encoding/xml"
	"fmt"
	"math"
	"strings"
)

// KML colors are aabbggrr hex, per the OGC KML spec.
const (
	kmlBlue  = "ffff0000"
	kmlRed   = "ff0000ff"
	kmlGreen = "ff00ff00"
)

// KML is the root element of a KML document.
type KML struct {
	XMLName  xml.Name    `xml:"kml"`
	Xmlns    string      `xml:"xmlns,attr"`
	Document KMLDocument `xml:"Document"`
}

type KMLDocument struct {
	Placemarks []KMLPlacemark `xml:"Placemark"`
}

type KMLPlacemark struct {
	Name        string         `xml:"name"`
	Description string         `xml:"description,omitempty"`
	Style       *KMLStyle      `xml:"Style,omitempty"`
	Point       *KMLPoint      `xml:"Point,omitempty"`
	LineString  *KMLLineString `xml:"LineString,omitempty"`
}

type KMLStyle struct {
	LineStyle *KMLLineStyle `xml:"LineStyle,omitempty"`
}

type KMLLineStyle struct {
	Color string `xml:"color"`
	Width int    `xml:"width"`
}

type KMLPoint struct {
	Coordinates string `xml:"coordinates"`
}

type KMLLineString struct {
	Coordinates string `xml:"coordinates"`
}

func kmlCoordinates(coords []LatLng) string {
	parts := make([]string, 0, len(coords))
	for _, c := range coords {
		parts = append(parts, fmt.Sprintf("%f,%f", c.Lng, c.Lat))
	}
	return strings.Join(parts, " ")
}

// NewRouteKML builds a KML document for a synthesized route: the full route,
// each segment with its instruction, the cell site, and one ray per sector.
func NewRouteKML(route []LatLng, azimuths []float64, lat, lon float64, segments []Segment) *KML {
	placemarks := make([]KMLPlacemark, 0, len(segments)+len(azimuths)+2)

	placemarks = append(placemarks, KMLPlacemark{
		Name:       "Complete Navigation Route",
		Style:      &KMLStyle{LineStyle: &KMLLineStyle{Color: kmlBlue, Width: 4}},
		LineString: &KMLLineString{Coordinates: kmlCoordinates(route)},
	})

	for i, segment := range segments {
		placemarks = append(placemarks, KMLPlacemark{
			Name:        fmt.Sprintf("Segment %d", i+1),
			Description: fmt.Sprintf("Length: %.2f m\nInstruction: %s", segment.Length, segment.Instruction),
			Style:       &KMLStyle{LineStyle: &KMLLineStyle{Color: kmlRed, Width: 4}},
			LineString:  &KMLLineString{Coordinates: kmlCoordinates(segment.Coordinates)},
		})
	}

	placemarks = append(placemarks, KMLPlacemark{
		Name:  "Cell Site",
		Point: &KMLPoint{Coordinates: fmt.Sprintf("%f,%f", lon, lat)},
	})

	for _, azimuth := range azimuths {
		rad := azimuth * math.Pi / 180
		end := LatLng{
			Lat: lat + 0.01*math.Cos(rad),
			Lng: lon + 0.01*math.Sin(rad),
		}
		placemarks = append(placemarks, KMLPlacemark{
			Name:       fmt.Sprintf("Sector %g", azimuth),
			Style:      &KMLStyle{LineStyle: &KMLLineStyle{Color: kmlGreen, Width: 2}},
			LineString: &KMLLineString{Coordinates: kmlCoordinates([]LatLng{{Lat: lat, Lng: lon}, end})},
		})
	}

	return &KML{
		Xmlns:    "http://www.opengis.net/kml/2.2",
		Document: KMLDocument{Placemarks: placemarks},
	}
}

// Marshal renders the document as an XML file body.
func (k *KML) Marshal() ([]byte, error) {
	body, err := xml.MarshalIndent(k, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

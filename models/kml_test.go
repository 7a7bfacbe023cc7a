package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRouteKML(t *testing.T) {
	route, segments := sampleRoute()
	azimuths := []float64{0, 120, 240}

	k := NewRouteKML(route, azimuths, 35.0, 139.0, segments)
	require.Len(t, k.Document.Placemarks, len(segments)+len(azimuths)+2)

	complete := k.Document.Placemarks[0]
	assert.Equal(t, "Complete Navigation Route", complete.Name)
	require.NotNil(t, complete.Style)
	assert.Equal(t, "ffff0000", complete.Style.LineStyle.Color)
	assert.Equal(t, 4, complete.Style.LineStyle.Width)

	seg := k.Document.Placemarks[1]
	assert.Equal(t, "Segment 1", seg.Name)
	assert.Contains(t, seg.Description, "Length: 556.00 m")
	assert.Contains(t, seg.Description, "Instruction: Start route")
	assert.Equal(t, "ff0000ff", seg.Style.LineStyle.Color)

	site := k.Document.Placemarks[len(segments)+1]
	assert.Equal(t, "Cell Site", site.Name)
	require.NotNil(t, site.Point)
	// KML coordinates are lon,lat
	assert.True(t, strings.HasPrefix(site.Point.Coordinates, "139.0"))

	for i := range azimuths {
		ray := k.Document.Placemarks[len(segments)+2+i]
		assert.Contains(t, ray.Name, "Sector")
		assert.Equal(t, "ff00ff00", ray.Style.LineStyle.Color)
		require.NotNil(t, ray.LineString)
	}
}

func TestKMLMarshal(t *testing.T) {
	route, segments := sampleRoute()
	k := NewRouteKML(route, []float64{90}, 35.0, 139.0, segments)

	data, err := k.Marshal()
	require.NoError(t, err)

	body := string(data)
	assert.True(t, strings.HasPrefix(body, "<?xml"))
	assert.Contains(t, body, `<kml xmlns="http://www.opengis.net/kml/2.2">`)
	assert.Contains(t, body, "<Placemark>")
	assert.Contains(t, body, "<coordinates>")
}

package ioformat_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosequential/seqarrange/geom"
	"github.com/gosequential/seqarrange/ioformat"
	"github.com/gosequential/seqarrange/seq"
)

const sampleObjects = `OBJECT_ID 1
TOTAL_HEIGHT 200000
LEPOX_TO_NEXT 1
POLYGON_AT_HEIGHT 0
POINT 0 0
POINT 1000000 0
POINT 1000000 1000000
POINT 0 1000000

OBJECT_ID 2
TOTAL_HEIGHT 150000
POLYGON_AT_HEIGHT 0
POINT 0 0
POINT 500000 0
POINT 500000 500000
`

func TestReadObjects(t *testing.T) {
	objects, err := ioformat.ReadObjects(strings.NewReader(sampleObjects))
	require.NoError(t, err)
	require.Len(t, objects, 2)

	assert.Equal(t, 1, objects[0].ID)
	assert.Equal(t, 200000, objects[0].TotalHeight)
	assert.True(t, objects[0].LepoxToNext)
	require.Len(t, objects[0].PolygonsAtHeight, 1)
	assert.Len(t, objects[0].PolygonsAtHeight[0].Polygon, 4)

	assert.Equal(t, 2, objects[1].ID)
	assert.False(t, objects[1].LepoxToNext)
	require.Len(t, objects[1].PolygonsAtHeight, 1)
	assert.Len(t, objects[1].PolygonsAtHeight[0].Polygon, 3)
}

func TestReadObjectsRejectsOrphanRecords(t *testing.T) {
	_, err := ioformat.ReadObjects(strings.NewReader("POINT 0 0\n"))
	assert.Error(t, err)
}

func TestPrinterJSONRoundTrip(t *testing.T) {
	g := seq.PrinterGeometry{
		XSize:         250,
		YSize:         210,
		ConvexHeights: []int{18000000},
		BoxHeights:    []int{26000000},
		ExtruderSlices: map[int][]geom.Polygon{
			18000000: {{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}},
		},
	}

	var buf strings.Builder
	require.NoError(t, ioformat.WritePrinterJSON(&buf, g))

	got, err := ioformat.ReadPrinterJSON(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, g.XSize, got.XSize)
	assert.Equal(t, g.YSize, got.YSize)
	assert.Equal(t, g.ConvexHeights, got.ConvexHeights)
	assert.Equal(t, g.BoxHeights, got.BoxHeights)
	require.Len(t, got.ExtruderSlices[18000000], 1)
}

func TestPrinterYAMLRoundTrip(t *testing.T) {
	g := seq.PrinterGeometry{XSize: 360, YSize: 360, ConvexHeights: []int{2000000}}

	var buf strings.Builder
	require.NoError(t, ioformat.WritePrinterYAML(&buf, g))

	got, err := ioformat.ReadPrinterYAML(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, g.XSize, got.XSize)
	assert.Equal(t, g.YSize, got.YSize)
	assert.Equal(t, g.ConvexHeights, got.ConvexHeights)
}

func TestWritePlatesCombined(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schedule.txt")
	plates := []seq.ScheduledPlate{
		{ScheduledObjects: []seq.ScheduledObject{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 10, Y: 20}}},
	}

	require.NoError(t, ioformat.WritePlates(path, plates, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "PLATE 0")
	assert.Contains(t, content, "OBJECT_ID 1")
	assert.Contains(t, content, "POSITION 10 20")
}

func TestWritePlatesInteractive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schedule.txt")
	plates := []seq.ScheduledPlate{
		{ScheduledObjects: []seq.ScheduledObject{{ID: 1, X: 0, Y: 0}}},
		{ScheduledObjects: []seq.ScheduledObject{{ID: 2, X: 5, Y: 5}}},
	}

	require.NoError(t, ioformat.WritePlates(path, plates, true))

	first, err := os.ReadFile(filepath.Join(dir, "schedule.plate0.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(first), "OBJECT_ID 1")

	second, err := os.ReadFile(filepath.Join(dir, "schedule.plate1.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(second), "OBJECT_ID 2")
}

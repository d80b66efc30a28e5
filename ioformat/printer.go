package ioformat

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gosequential/seqarrange/geom"
	"github.com/gosequential/seqarrange/seq"
)

// printerDoc mirrors seq.PrinterGeometry for serialisation: ExtruderSlices
// is keyed by height in both encodings, but JSON object keys and YAML map
// keys must be strings/ints respectively, so heights round-trip as plain
// integers rather than map keys directly on the domain type.
type printerDoc struct {
	XSize         int               `json:"xSize" yaml:"xSize"`
	YSize         int               `json:"ySize" yaml:"ySize"`
	ConvexHeights []int             `json:"convexHeights" yaml:"convexHeights"`
	BoxHeights    []int             `json:"boxHeights" yaml:"boxHeights"`
	ExtruderZones []extruderZoneDoc `json:"extruderZones" yaml:"extruderZones"`
}

type extruderZoneDoc struct {
	Height  int      `json:"height" yaml:"height"`
	Polygon [][2]int `json:"polygon" yaml:"polygon"`
}

func (d printerDoc) toDomain() seq.PrinterGeometry {
	g := seq.PrinterGeometry{
		XSize:          d.XSize,
		YSize:          d.YSize,
		ConvexHeights:  d.ConvexHeights,
		BoxHeights:     d.BoxHeights,
		ExtruderSlices: make(map[int][]geom.Polygon),
	}
	for _, z := range d.ExtruderZones {
		g.ExtruderSlices[z.Height] = append(g.ExtruderSlices[z.Height], polygonFromDoc(z.Polygon))
	}
	return g
}

func fromDomain(g seq.PrinterGeometry) printerDoc {
	d := printerDoc{
		XSize:         g.XSize,
		YSize:         g.YSize,
		ConvexHeights: g.ConvexHeights,
		BoxHeights:    g.BoxHeights,
	}
	for h, polys := range g.ExtruderSlices {
		for _, p := range polys {
			d.ExtruderZones = append(d.ExtruderZones, extruderZoneDoc{Height: h, Polygon: polygonToDoc(p)})
		}
	}
	return d
}

func polygonFromDoc(pts [][2]int) geom.Polygon {
	p := make(geom.Polygon, len(pts))
	for i, xy := range pts {
		p[i] = geom.Point{X: xy[0], Y: xy[1]}
	}
	return p
}

func polygonToDoc(p geom.Polygon) [][2]int {
	pts := make([][2]int, len(p))
	for i, v := range p {
		pts[i] = [2]int{v.X, v.Y}
	}
	return pts
}

// ReadPrinterJSON decodes a seq.PrinterGeometry from JSON.
func ReadPrinterJSON(r io.Reader) (seq.PrinterGeometry, error) {
	var d printerDoc
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return seq.PrinterGeometry{}, err
	}
	return d.toDomain(), nil
}

// ReadPrinterYAML decodes a seq.PrinterGeometry from YAML.
func ReadPrinterYAML(r io.Reader) (seq.PrinterGeometry, error) {
	var d printerDoc
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return seq.PrinterGeometry{}, err
	}
	return d.toDomain(), nil
}

// WritePrinterJSON encodes g as JSON.
func WritePrinterJSON(w io.Writer, g seq.PrinterGeometry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(fromDomain(g))
}

// WritePrinterYAML encodes g as YAML.
func WritePrinterYAML(w io.Writer, g seq.PrinterGeometry) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(fromDomain(g))
}

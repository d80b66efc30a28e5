package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gosequential/seqarrange/geom"
	"github.com/gosequential/seqarrange/seq"
)

// ReadObjects parses the line-oriented exported-objects format:
//
//	OBJECT_ID <id>
//	TOTAL_HEIGHT <n>
//	POLYGON_AT_HEIGHT <height>
//	POINT <x> <y>
//	POINT <x> <y>
//	...
//
// repeated for each object and each polygon. Blank lines are ignored; a
// new POLYGON_AT_HEIGHT record closes the current polygon, and a new
// OBJECT_ID record closes the current object.
func ReadObjects(r io.Reader) ([]seq.ObjectToPrint, error) {
	scanner := bufio.NewScanner(r)

	var objects []seq.ObjectToPrint
	var current *seq.ObjectToPrint
	var currentHeight int
	var currentPolygon geom.Polygon
	haveHeight := false

	flushPolygon := func() {
		if current != nil && haveHeight {
			current.PolygonsAtHeight = append(current.PolygonsAtHeight, seq.HeightPolygon{
				Height:  currentHeight,
				Polygon: currentPolygon,
			})
		}
		currentPolygon = nil
		haveHeight = false
	}
	flushObject := func() {
		flushPolygon()
		if current != nil {
			objects = append(objects, *current)
		}
		current = nil
	}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "OBJECT_ID":
			flushObject()
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("ioformat: line %d: invalid OBJECT_ID: %w", lineNo, err)
			}
			current = &seq.ObjectToPrint{ID: id}
		case "LEPOX_TO_NEXT":
			if current == nil {
				return nil, fmt.Errorf("ioformat: line %d: LEPOX_TO_NEXT before OBJECT_ID", lineNo)
			}
			current.LepoxToNext = fields[1] == "1" || fields[1] == "true"
		case "TOTAL_HEIGHT":
			if current == nil {
				return nil, fmt.Errorf("ioformat: line %d: TOTAL_HEIGHT before OBJECT_ID", lineNo)
			}
			h, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("ioformat: line %d: invalid TOTAL_HEIGHT: %w", lineNo, err)
			}
			current.TotalHeight = h
		case "POLYGON_AT_HEIGHT":
			if current == nil {
				return nil, fmt.Errorf("ioformat: line %d: POLYGON_AT_HEIGHT before OBJECT_ID", lineNo)
			}
			flushPolygon()
			h, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("ioformat: line %d: invalid POLYGON_AT_HEIGHT: %w", lineNo, err)
			}
			currentHeight = h
			haveHeight = true
		case "POINT":
			if !haveHeight {
				return nil, fmt.Errorf("ioformat: line %d: POINT before POLYGON_AT_HEIGHT", lineNo)
			}
			x, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("ioformat: line %d: invalid POINT x: %w", lineNo, err)
			}
			y, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("ioformat: line %d: invalid POINT y: %w", lineNo, err)
			}
			currentPolygon = append(currentPolygon, geom.Point{X: x, Y: y})
		default:
			return nil, fmt.Errorf("ioformat: line %d: unrecognised record %q", lineNo, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flushObject()

	return objects, nil
}

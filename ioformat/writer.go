package ioformat

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosequential/seqarrange/seq"
)

// WritePlates renders plates in the line-oriented schedule format:
//
//	PLATE <index>
//	OBJECT_ID <id>
//	POSITION <x> <y>
//	...
//
// When interactive is false, all plates are concatenated into a single
// file at path. When interactive is true, path is treated as a base name
// and one file per plate is written alongside it, named
// "<base>.plate<N><ext>", mirroring the reference driver's
// --interactive flag (a human steps through plates one at a time between
// physical print runs).
func WritePlates(path string, plates []seq.ScheduledPlate, interactive bool) error {
	if !interactive {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return writeAllPlates(f, plates)
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for i, plate := range plates {
		name := fmt.Sprintf("%s.plate%d%s", base, i, ext)
		f, err := os.Create(name)
		if err != nil {
			return err
		}
		err = writePlate(f, i, plate)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func writeAllPlates(w io.Writer, plates []seq.ScheduledPlate) error {
	for i, plate := range plates {
		if err := writePlate(w, i, plate); err != nil {
			return err
		}
	}
	return nil
}

func writePlate(w io.Writer, index int, plate seq.ScheduledPlate) error {
	if _, err := fmt.Fprintf(w, "PLATE %d\n", index); err != nil {
		return err
	}
	for _, obj := range plate.ScheduledObjects {
		if _, err := fmt.Fprintf(w, "OBJECT_ID %d\n", obj.ID); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "POSITION %d %d\n", obj.X, obj.Y); err != nil {
			return err
		}
	}
	return nil
}

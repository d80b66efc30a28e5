// Package ioformat reads the two auxiliary file formats the reference
// driver consumes: a line-oriented "exported objects" file, and a printer
// geometry description in either JSON or YAML.
//
// What:
//
//   - ReadObjects: parses OBJECT_ID/TOTAL_HEIGHT/POLYGON_AT_HEIGHT/POINT
//     records into []seq.ObjectToPrint.
//   - ReadPrinterJSON / ReadPrinterYAML: decode a seq.PrinterGeometry.
//   - WritePrinterJSON / WritePrinterYAML: encode one back (the CLI does
//     not call them).
//   - WritePlates: one file per plate (or a single combined file) of
//     scheduled placements, mirroring the reference driver's
//     --interactive flag.
//
// Why:
//
//   - Neither format is part of the core contract (see the design notes);
//     they exist only so the CLI driver has something to read and write.
package ioformat

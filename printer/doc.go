// Package printer supplies named PrinterGeometry profiles for the printers
// the sequential solver ships fixtures for, plus the unreachable-zone level
// tables each profile's print head enforces.
//
// What:
//
//   - PrusaMK3S, PrusaMK4, PrusaXL: ready-to-use seq.PrinterGeometry values.
//   - ConvexLevels/BoxLevels per profile: ring counts for the
//     nozzle/extruder polygon (convex rings) and the hose/gantry polygon
//     (box rings). The unreachable-zone builder in preprocess does not
//     read them; it builds one zone per printer slice.
//
// Why:
//
//   - Every real print head has a different moving-assembly cross-section;
//     hardcoding one geometry would make the solver only correct for a
//     single machine.
package printer

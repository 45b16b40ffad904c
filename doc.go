// Package dxf reads and writes entities of the DXF tagged-record CAD
// interchange format.
//
// # Overview
//
// A DXF stream is a flat sequence of group-code/value records. This
// package models the record codec (subpackage tag), the geometry value
// types shared by entities, and the HATCH entity: its polymorphic
// boundary-path model (edge loops of lines, arcs, ellipses and NURBS
// splines, or polyline loops of bulge vertices), its fill-pattern
// sub-model, and the revision-gated serialization rules the format
// imposes on every entity.
//
// # Quick Start
//
//	h := dxf.NewHatch()
//	h.BasePoint = &dxf.Point3{}
//	h.SolidFill = true
//	h.Paths = append(h.Paths, &dxf.EdgeLoop{
//	    Edges: []dxf.Edge{&dxf.LineEdge{Start: dxf.Pt(0, 0), End: dxf.Pt(10, 0)}},
//	})
//
//	var buf bytes.Buffer
//	if err := h.Write(&buf, dxf.R2000); err != nil { ... }
//
// Reading is the mirror:
//
//	sc := tag.NewScanner(&buf)
//	h, err := dxf.ReadHatch(sc)
//
// # Revisions
//
// Optional fields are gated by the target format revision: a field is
// emitted only when the target is at least the revision the field
// first appeared in. The writer receives the target revision as
// configuration and silently omits gated fields; readers never require
// an optional field.
//
// # Concurrency
//
// Reading and writing a single entity is a sequential pass over one
// stream. Nothing is shared between entities, so parallel throughput
// is one scanner/writer per stream, no locks needed.
//
// # Logging
//
// By default the package produces no log output. Recoverable
// conditions (default substitution of an empty layer name, skipped
// unknown group codes) are surfaced through the logger configured with
// [SetLogger]; they never abort a read or write.
package dxf

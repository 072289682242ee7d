// Package svgdoc is the vector-document collaborator of hexwave, built on
// github.com/ajstarks/svgo.
//
// A Document collects reusable definitions (the rounded hexagon path, its
// clip region and one animated circle per ring) and instances that place a
// definition at a position, then serialises everything in one pass:
//
//	doc := svgdoc.New()
//	_ = doc.AppendDefinition(svgdoc.PathDef{ID: "hexagon", Data: outline.PathData()})
//	_ = doc.AppendInstance(svgdoc.Instance{Ref: "hexagon", Position: p})
//	err := doc.Serialize(w, width, height)
//
// Write folds a whole scene.Scene into a Document and serialises it.
package svgdoc

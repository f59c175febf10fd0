// Package gesture turns freehand pointer strokes into gesture identifiers.
//
// A stroke is encoded into a direction vector, a string over the compass
// alphabet N, S, E, W, B (northeast), A (northwest), C (southeast) and
// D (southwest). The vector is then matched against eight tolerant templates
// in a fixed priority order. Which templates are eligible depends on the
// Context the stroke was drawn in: the photo face (Normal) or the annotation
// face (Annotation).
//
//	stroke := gesture.NewStroke()
//	stroke.Add(image.Pt(0, 0))
//	...
//	g := gesture.Recognize(stroke.Vector(), gesture.Normal)
//	if g == gesture.None {
//		// unrecognized
//	}
//
// Templates are written as anchored patterns (see RightAngleTemplate and
// friends) and compiled into a small phase automaton rather than handed to
// regexp, so that the bounded {0,2} head and tail wildcards keep their exact
// meaning.
package gesture

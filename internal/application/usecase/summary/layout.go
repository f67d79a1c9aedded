// Package summary contains the aggregation engine and summary use cases.
package summary

// Bubble sizing bounds, in logical pixels.
const (
	bubbleMinSize = 60
	bubbleMaxSize = 150
	bubbleScale   = 200
	bubbleOffset  = 50
)

// BubbleSize maps a percentage share to a bounded visual diameter for the
// bubble layout: clamp(percentage/100*200+50, 60, 150).
//
// The scale is a deliberately compressed, non-proportional mapping so that
// both very small and very large shares stay legible and tappable. It is not
// a geometric area computation.
func BubbleSize(percentage float64) float64 {
	size := percentage/100*bubbleScale + bubbleOffset
	if size < bubbleMinSize {
		return bubbleMinSize
	}
	if size > bubbleMaxSize {
		return bubbleMaxSize
	}
	return size
}

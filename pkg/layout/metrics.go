package layout

// fontMetrics is the fixed per-character-advance and line-height table,
// keyed by FontSize, per spec.md §4.6.
type fontMetrics struct {
	charAdvance int
	lineHeight  int
}

var metricsTable = map[FontSize]fontMetrics{
	FontMedium:  {charAdvance: 8, lineHeight: 16},
	FontXLarge:  {charAdvance: 16, lineHeight: 32},
	FontXXLarge: {charAdvance: 24, lineHeight: 48},
}

func metricsFor(f FontSize) fontMetrics {
	return metricsTable[f]
}

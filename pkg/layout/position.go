package layout

// CalculatePosition runs the single pre-order positioning pass over the
// layout tree, per spec.md §4.7.
func CalculatePosition(node *Object, parentPoint Point, prevKind ObjectKind, prevPoint *Point, prevSize *Size) {
	if node == nil {
		return
	}
	computePosition(node, parentPoint, prevKind, prevPoint, prevSize)

	CalculatePosition(node.FirstChild, node.Point, Block, nil, nil)

	selfPoint := node.Point
	selfSize := node.Size
	CalculatePosition(node.NextSibling, parentPoint, node.Kind, &selfPoint, &selfSize)
}

func computePosition(node *Object, parentPoint Point, prevKind ObjectKind, prevPoint *Point, prevSize *Size) {
	switch node.Kind {
	case Block:
		node.Point.X = parentPoint.X
		if prevPoint == nil {
			node.Point.Y = parentPoint.Y
		} else {
			node.Point.Y = prevPoint.Y + prevSize.Height
		}
	case Inline, Text:
		if prevPoint != nil && (prevKind == Inline || prevKind == Text) {
			node.Point.X = prevPoint.X + prevSize.Width
			node.Point.Y = prevPoint.Y
		} else if prevPoint == nil {
			node.Point.X = parentPoint.X
			node.Point.Y = parentPoint.Y
		} else {
			node.Point.X = parentPoint.X
			node.Point.Y = prevPoint.Y + prevSize.Height
		}
	}
}

package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// CenteredAt returns a widthPx×heightPx rectangle whose center is (x, y).
func CenteredAt(x, y, widthPx, heightPx int) image.Rectangle {
	minX := x - widthPx/2
	minY := y - heightPx/2
	return image.Rect(minX, minY, minX+widthPx, minY+heightPx)
}

// CenterHorizontally places a widthPx×heightPx rectangle centered across
// rect with its top edge at topY.
func CenterHorizontally(rect image.Rectangle, topY, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	minX := rect.Min.X + (rect.Dx()-widthPx)/2
	return image.Rect(minX, topY, minX+widthPx, topY+heightPx)
}

// AnchorBottomRight returns a rectangle of size (widthPx,heightPx) placed in
// the bottom-right of rect, marginPx away from both edges.
func AnchorBottomRight(rect image.Rectangle, widthPx, heightPx, marginPx int) image.Rectangle {
	rect = Normalize(rect)
	if widthPx < 0 {
		widthPx = 0
	}
	if heightPx < 0 {
		heightPx = 0
	}
	maxX := rect.Max.X - marginPx
	maxY := rect.Max.Y - marginPx
	return image.Rect(maxX-widthPx, maxY-heightPx, maxX, maxY)
}

// FitInside scales a srcW×srcH box to the largest size that fits rect while
// keeping its aspect ratio, and centers it.
func FitInside(rect image.Rectangle, srcW, srcH int) image.Rectangle {
	rect = Normalize(rect)
	if srcW <= 0 || srcH <= 0 || rect.Empty() {
		return image.Rectangle{Min: rect.Min, Max: rect.Min}
	}
	width := rect.Dx()
	height := srcH * width / srcW
	if height > rect.Dy() {
		height = rect.Dy()
		width = srcW * height / srcH
	}
	minX := rect.Min.X + (rect.Dx()-width)/2
	minY := rect.Min.Y + (rect.Dy()-height)/2
	return image.Rect(minX, minY, minX+width, minY+height)
}

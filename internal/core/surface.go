package core

// Surface is the render surface contract: a matrix of individually
// addressable points accepting physical coordinates already run through
// the Mapper. A frame is drawn as a Clear followed by any number of
// SetPoint calls; the surface is responsible for atomic presentation
// (e.g. double buffering), so no partial-frame flush guarantee is
// required from the caller's side.
type Surface interface {
	Clear()
	SetPoint(x, y int, on bool)
}

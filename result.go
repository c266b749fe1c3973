package geocache

// SetResult describes what happened to a box handed to the cache. It is
// either a SetNotChanged or a SetTruncated.
type SetResult interface {
	isSetResult()
	// Inserted is the box that ended up in the index.
	Inserted() BoundingBox
	MissingReferencePoint() bool
}

// SetNotChanged is returned when the box was inserted as given, apart from
// precision truncation. Width, Height and Area are in meters.
type SetNotChanged struct {
	BBox                    BoundingBox
	Width                   float64
	Height                  float64
	Area                    float64
	IsMissingReferencePoint bool
}

// SetTruncated is returned when the box exceeded the maximum side length and
// was shrunk around the reference point before insertion.
type SetTruncated struct {
	OldBBox   BoundingBox
	NewBBox   BoundingBox
	OldWidth  float64
	NewWidth  float64
	OldHeight float64
	NewHeight float64
	OldArea   float64
	NewArea   float64
	// IsMissingReferencePoint refers to the box before fitting.
	IsMissingReferencePoint bool
}

func (SetNotChanged) isSetResult() {}
func (SetTruncated) isSetResult()  {}

func (r SetNotChanged) Inserted() BoundingBox { return r.BBox }
func (r SetTruncated) Inserted() BoundingBox  { return r.NewBBox }

func (r SetNotChanged) MissingReferencePoint() bool { return r.IsMissingReferencePoint }
func (r SetTruncated) MissingReferencePoint() bool  { return r.IsMissingReferencePoint }

func newSetNotChanged(box BoundingBox, width, height float64, missing bool) SetNotChanged {
	return SetNotChanged{
		BBox:                    box,
		Width:                   width,
		Height:                  height,
		Area:                    width * height,
		IsMissingReferencePoint: missing,
	}
}

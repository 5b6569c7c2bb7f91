// Package scoring holds the jury-walk rules: which dimensions a judge
// scores, how a rating total is derived, how several judges are combined
// into one view per team, and how the result is sorted and exported.
package scoring

import (
	"strings"

	"golang.org/x/text/cases"
)

// MaxScore is the highest valid dimension score. Zero means not rated.
const MaxScore = 5

type Dimension string

const (
	Concept                Dimension = "concept"
	Quality                Dimension = "quality"
	Implementation         Dimension = "implementation"
	PassthroughCameraAPI   Dimension = "passthroughCameraAPI"
	ImmersiveEntertainment Dimension = "immersiveEntertainment"
	HandTracking           Dimension = "handTracking"
	MRAndVR                Dimension = "mrAndVR"
	ProjectUpgrade         Dimension = "projectUpgrade"
)

// Field names a single editable value of a Rating.
type Field string

const (
	FieldTrack      Field = "track"
	FieldAddOnTrack Field = "addOnTrack"
	FieldNotes      Field = "notes"
)

// Variant selects the dimension set of a deployment.
type Variant string

const (
	VariantStandard Variant = "standard"
	VariantExtended Variant = "extended"
)

var standardDimensions = []Dimension{
	Concept,
	Quality,
	Implementation,
	PassthroughCameraAPI,
	ImmersiveEntertainment,
	HandTracking,
}

var extendedDimensions = append(append([]Dimension{}, standardDimensions...), MRAndVR, ProjectUpgrade)

// trackKeywords gates the track-specific dimensions. A dimension listed here
// only takes input when one of the rating's tracks mentions the keyword.
var trackKeywords = map[Dimension]string{
	PassthroughCameraAPI:   "passthrough",
	ImmersiveEntertainment: "entertainment",
	HandTracking:           "hand tracking",
	MRAndVR:                "vr",
	ProjectUpgrade:         "upgrade",
}

var dimensionLabels = map[Dimension]string{
	Concept:                "Concept",
	Quality:                "Quality",
	Implementation:         "Implementation",
	PassthroughCameraAPI:   "Passthrough Camera API",
	ImmersiveEntertainment: "Immersive Entertainment",
	HandTracking:           "Hand Tracking",
	MRAndVR:                "MR and VR",
	ProjectUpgrade:         "Project Upgrade",
}

// Rules binds the scoring logic to a deployment variant. The zero value is
// the standard variant.
type Rules struct {
	Variant Variant
}

func ParseVariant(s string) Variant {
	if Variant(strings.ToLower(strings.TrimSpace(s))) == VariantExtended {
		return VariantExtended
	}
	return VariantStandard
}

// Dimensions returns the scored dimensions in display order.
func (r Rules) Dimensions() []Dimension {
	if r.Variant == VariantExtended {
		return extendedDimensions
	}
	return standardDimensions
}

// IsDimension reports whether the field is a score of this variant.
func (r Rules) IsDimension(f Field) bool {
	for _, d := range r.Dimensions() {
		if Field(d) == f {
			return true
		}
	}
	return false
}

// IsField reports whether f can be written through UpdateField.
func (r Rules) IsField(f Field) bool {
	switch f {
	case FieldTrack, FieldAddOnTrack, FieldNotes:
		return true
	}
	return r.IsDimension(f)
}

func (d Dimension) Label() string {
	if l, ok := dimensionLabels[d]; ok {
		return l
	}
	return string(d)
}

// TrackKeyword returns the keyword gating d, if any.
func (d Dimension) TrackKeyword() (string, bool) {
	k, ok := trackKeywords[d]
	return k, ok
}

// FieldEnabled reports whether the field accepts input for this rating.
// A disabled dimension keeps its stored value and still counts towards the
// total.
func FieldEnabled(rating Rating, field Field) bool {
	keyword, gated := Dimension(field).TrackKeyword()
	if !gated {
		return true
	}
	return mentionsTrack(rating.Track, keyword) || mentionsTrack(rating.AddOnTrack, keyword)
}

func mentionsTrack(track, keyword string) bool {
	if track == "" {
		return false
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(track), fold.String(keyword))
}

package drawing

import (
	"strings"

	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/schema/dml"
)

// CameraPreset is a camera setup (ST_PresetCameraType).
type CameraPreset string

// Camera presets.
const (
	CameraLegacyObliqueTopLeft                CameraPreset = "legacyObliqueTopLeft"
	CameraLegacyObliqueTop                    CameraPreset = "legacyObliqueTop"
	CameraLegacyObliqueTopRight               CameraPreset = "legacyObliqueTopRight"
	CameraLegacyObliqueLeft                   CameraPreset = "legacyObliqueLeft"
	CameraLegacyObliqueFront                  CameraPreset = "legacyObliqueFront"
	CameraLegacyObliqueRight                  CameraPreset = "legacyObliqueRight"
	CameraLegacyObliqueBottomLeft             CameraPreset = "legacyObliqueBottomLeft"
	CameraLegacyObliqueBottom                 CameraPreset = "legacyObliqueBottom"
	CameraLegacyObliqueBottomRight            CameraPreset = "legacyObliqueBottomRight"
	CameraLegacyPerspectiveTopLeft            CameraPreset = "legacyPerspectiveTopLeft"
	CameraLegacyPerspectiveTop                CameraPreset = "legacyPerspectiveTop"
	CameraLegacyPerspectiveTopRight           CameraPreset = "legacyPerspectiveTopRight"
	CameraLegacyPerspectiveLeft               CameraPreset = "legacyPerspectiveLeft"
	CameraLegacyPerspectiveFront              CameraPreset = "legacyPerspectiveFront"
	CameraLegacyPerspectiveRight              CameraPreset = "legacyPerspectiveRight"
	CameraLegacyPerspectiveBottomLeft         CameraPreset = "legacyPerspectiveBottomLeft"
	CameraLegacyPerspectiveBottom             CameraPreset = "legacyPerspectiveBottom"
	CameraLegacyPerspectiveBottomRight        CameraPreset = "legacyPerspectiveBottomRight"
	CameraOrthographicFront                   CameraPreset = "orthographicFront"
	CameraIsometricTopUp                      CameraPreset = "isometricTopUp"
	CameraIsometricTopDown                    CameraPreset = "isometricTopDown"
	CameraIsometricBottomUp                   CameraPreset = "isometricBottomUp"
	CameraIsometricBottomDown                 CameraPreset = "isometricBottomDown"
	CameraIsometricLeftUp                     CameraPreset = "isometricLeftUp"
	CameraIsometricLeftDown                   CameraPreset = "isometricLeftDown"
	CameraIsometricRightUp                    CameraPreset = "isometricRightUp"
	CameraIsometricRightDown                  CameraPreset = "isometricRightDown"
	CameraIsometricOffAxis1Left               CameraPreset = "isometricOffAxis1Left"
	CameraIsometricOffAxis1Right              CameraPreset = "isometricOffAxis1Right"
	CameraIsometricOffAxis1Top                CameraPreset = "isometricOffAxis1Top"
	CameraIsometricOffAxis2Left               CameraPreset = "isometricOffAxis2Left"
	CameraIsometricOffAxis2Right              CameraPreset = "isometricOffAxis2Right"
	CameraIsometricOffAxis2Top                CameraPreset = "isometricOffAxis2Top"
	CameraIsometricOffAxis3Left               CameraPreset = "isometricOffAxis3Left"
	CameraIsometricOffAxis3Right              CameraPreset = "isometricOffAxis3Right"
	CameraIsometricOffAxis3Bottom             CameraPreset = "isometricOffAxis3Bottom"
	CameraIsometricOffAxis4Left               CameraPreset = "isometricOffAxis4Left"
	CameraIsometricOffAxis4Right              CameraPreset = "isometricOffAxis4Right"
	CameraIsometricOffAxis4Bottom             CameraPreset = "isometricOffAxis4Bottom"
	CameraObliqueTopLeft                      CameraPreset = "obliqueTopLeft"
	CameraObliqueTop                          CameraPreset = "obliqueTop"
	CameraObliqueTopRight                     CameraPreset = "obliqueTopRight"
	CameraObliqueLeft                         CameraPreset = "obliqueLeft"
	CameraObliqueRight                        CameraPreset = "obliqueRight"
	CameraObliqueBottomLeft                   CameraPreset = "obliqueBottomLeft"
	CameraObliqueBottom                       CameraPreset = "obliqueBottom"
	CameraObliqueBottomRight                  CameraPreset = "obliqueBottomRight"
	CameraPerspectiveFront                    CameraPreset = "perspectiveFront"
	CameraPerspectiveLeft                     CameraPreset = "perspectiveLeft"
	CameraPerspectiveRight                    CameraPreset = "perspectiveRight"
	CameraPerspectiveAbove                    CameraPreset = "perspectiveAbove"
	CameraPerspectiveBelow                    CameraPreset = "perspectiveBelow"
	CameraPerspectiveAboveLeftFacing          CameraPreset = "perspectiveAboveLeftFacing"
	CameraPerspectiveAboveRightFacing         CameraPreset = "perspectiveAboveRightFacing"
	CameraPerspectiveContrastingLeftFacing    CameraPreset = "perspectiveContrastingLeftFacing"
	CameraPerspectiveContrastingRightFacing   CameraPreset = "perspectiveContrastingRightFacing"
	CameraPerspectiveHeroicLeftFacing         CameraPreset = "perspectiveHeroicLeftFacing"
	CameraPerspectiveHeroicRightFacing        CameraPreset = "perspectiveHeroicRightFacing"
	CameraPerspectiveHeroicExtremeLeftFacing  CameraPreset = "perspectiveHeroicExtremeLeftFacing"
	CameraPerspectiveHeroicExtremeRightFacing CameraPreset = "perspectiveHeroicExtremeRightFacing"
	CameraPerspectiveRelaxed                  CameraPreset = "perspectiveRelaxed"
	CameraPerspectiveRelaxedModerately        CameraPreset = "perspectiveRelaxedModerately"
)

// cameraAngles is the fixed rotation of a camera preset in degrees: x is
// the longitude, y the latitude and z the revolution.
type cameraAngles struct {
	x, y, z float64
	fov     float64
}

// cameraPresets lists every preset in gallery order. Presets without an
// entry in cameraRotations have no rotation.
var cameraPresets = []CameraPreset{
	CameraLegacyObliqueTopLeft, CameraLegacyObliqueTop, CameraLegacyObliqueTopRight,
	CameraLegacyObliqueLeft, CameraLegacyObliqueFront, CameraLegacyObliqueRight,
	CameraLegacyObliqueBottomLeft, CameraLegacyObliqueBottom, CameraLegacyObliqueBottomRight,
	CameraLegacyPerspectiveTopLeft, CameraLegacyPerspectiveTop, CameraLegacyPerspectiveTopRight,
	CameraLegacyPerspectiveLeft, CameraLegacyPerspectiveFront, CameraLegacyPerspectiveRight,
	CameraLegacyPerspectiveBottomLeft, CameraLegacyPerspectiveBottom, CameraLegacyPerspectiveBottomRight,
	CameraOrthographicFront,
	CameraIsometricTopUp, CameraIsometricTopDown, CameraIsometricBottomUp, CameraIsometricBottomDown,
	CameraIsometricLeftUp, CameraIsometricLeftDown, CameraIsometricRightUp, CameraIsometricRightDown,
	CameraIsometricOffAxis1Left, CameraIsometricOffAxis1Right, CameraIsometricOffAxis1Top,
	CameraIsometricOffAxis2Left, CameraIsometricOffAxis2Right, CameraIsometricOffAxis2Top,
	CameraIsometricOffAxis3Left, CameraIsometricOffAxis3Right, CameraIsometricOffAxis3Bottom,
	CameraIsometricOffAxis4Left, CameraIsometricOffAxis4Right, CameraIsometricOffAxis4Bottom,
	CameraObliqueTopLeft, CameraObliqueTop, CameraObliqueTopRight, CameraObliqueLeft,
	CameraObliqueRight, CameraObliqueBottomLeft, CameraObliqueBottom, CameraObliqueBottomRight,
	CameraPerspectiveFront, CameraPerspectiveLeft, CameraPerspectiveRight, CameraPerspectiveAbove,
	CameraPerspectiveBelow, CameraPerspectiveAboveLeftFacing, CameraPerspectiveAboveRightFacing,
	CameraPerspectiveContrastingLeftFacing, CameraPerspectiveContrastingRightFacing,
	CameraPerspectiveHeroicLeftFacing, CameraPerspectiveHeroicRightFacing,
	CameraPerspectiveHeroicExtremeLeftFacing, CameraPerspectiveHeroicExtremeRightFacing,
	CameraPerspectiveRelaxed, CameraPerspectiveRelaxedModerately,
}

var cameraRotations = map[CameraPreset]cameraAngles{
	CameraIsometricTopUp:      {x: 314.7, y: 324.6, z: 60.2},
	CameraIsometricTopDown:    {x: 45.3, y: 324.6, z: 299.8},
	CameraIsometricBottomUp:   {x: 314.7, y: 35.4, z: 300.2},
	CameraIsometricBottomDown: {x: 45.3, y: 35.4, z: 59.8},
	CameraIsometricLeftUp:     {x: 45, y: 324.7},
	CameraIsometricLeftDown:   {x: 45, y: 35.3},
	CameraIsometricRightUp:    {x: 315, y: 35.3},
	CameraIsometricRightDown:  {x: 315, y: 324.7},

	CameraIsometricOffAxis1Left:   {x: 64, y: 18},
	CameraIsometricOffAxis1Right:  {x: 334, y: 18},
	CameraIsometricOffAxis1Top:    {x: 306.5, y: 301.3, z: 57.6},
	CameraIsometricOffAxis2Left:   {x: 26, y: 18},
	CameraIsometricOffAxis2Right:  {x: 296, y: 18},
	CameraIsometricOffAxis2Top:    {x: 53.5, y: 301.3, z: 302.4},
	CameraIsometricOffAxis3Left:   {x: 64, y: 342},
	CameraIsometricOffAxis3Right:  {x: 334, y: 342},
	CameraIsometricOffAxis3Bottom: {x: 306.5, y: 58.7, z: 302.4},
	CameraIsometricOffAxis4Left:   {x: 26, y: 342},
	CameraIsometricOffAxis4Right:  {x: 296, y: 342},
	CameraIsometricOffAxis4Bottom: {x: 53.5, y: 58.7, z: 57.6},

	CameraPerspectiveFront:                    {fov: 45},
	CameraPerspectiveLeft:                     {x: 20, fov: 45},
	CameraPerspectiveRight:                    {x: 340, fov: 45},
	CameraPerspectiveAbove:                    {y: 340, fov: 45},
	CameraPerspectiveBelow:                    {y: 20, fov: 45},
	CameraPerspectiveAboveLeftFacing:          {x: 40.6, y: 331.7, fov: 45},
	CameraPerspectiveAboveRightFacing:         {x: 319.4, y: 331.7, fov: 45},
	CameraPerspectiveContrastingLeftFacing:    {x: 43.9, y: 10.4, z: 356.4, fov: 45},
	CameraPerspectiveContrastingRightFacing:   {x: 316.1, y: 10.4, z: 3.6, fov: 45},
	CameraPerspectiveHeroicLeftFacing:         {x: 34.5, y: 8.1, z: 357.4, fov: 45},
	CameraPerspectiveHeroicRightFacing:        {x: 325.5, y: 8.1, z: 2.6, fov: 45},
	CameraPerspectiveHeroicExtremeLeftFacing:  {x: 34.5, y: 8.1, z: 357.4, fov: 80},
	CameraPerspectiveHeroicExtremeRightFacing: {x: 325.5, y: 8.1, z: 2.6, fov: 80},
	CameraPerspectiveRelaxed:                  {y: 309.6, fov: 45},
	CameraPerspectiveRelaxedModerately:        {y: 324.8, fov: 45},

	CameraLegacyPerspectiveTopLeft:     {fov: 45},
	CameraLegacyPerspectiveTop:         {fov: 45},
	CameraLegacyPerspectiveTopRight:    {fov: 45},
	CameraLegacyPerspectiveLeft:        {fov: 45},
	CameraLegacyPerspectiveFront:       {fov: 45},
	CameraLegacyPerspectiveRight:       {fov: 45},
	CameraLegacyPerspectiveBottomLeft:  {fov: 45},
	CameraLegacyPerspectiveBottom:      {fov: 45},
	CameraLegacyPerspectiveBottomRight: {fov: 45},
}

// CameraPresets lists every camera preset in gallery order.
func CameraPresets() []CameraPreset {
	return append([]CameraPreset(nil), cameraPresets...)
}

// ParseCameraPreset resolves a preset by its schema name, ignoring case.
func ParseCameraPreset(name string) (CameraPreset, bool) {
	for _, p := range cameraPresets {
		if strings.EqualFold(string(p), name) {
			return p, true
		}
	}
	return "", false
}

func (p CameraPreset) String() string { return string(p) }

// IsPerspective reports whether the camera has a field of view.
func (p CameraPreset) IsPerspective() bool {
	return strings.HasPrefix(string(p), "perspective") ||
		strings.HasPrefix(string(p), "legacyPerspective")
}

// Rotation3D is the camera of a 3-D shape.
type Rotation3D struct {
	Camera CameraPreset

	x, y, z     float64
	perspective float64

	// KeepTextFlat keeps text in the plane of the screen. It belongs to the
	// text body and is not written by ToScene3D.
	KeepTextFlat bool

	HasCamera bool
}

// NewRotation3D returns an unset front camera.
func NewRotation3D() Rotation3D {
	return Rotation3D{Camera: CameraOrthographicFront}
}

// SetCameraPreset selects a camera and copies its fixed rotation and field
// of view.
func (r *Rotation3D) SetCameraPreset(p CameraPreset) {
	a := cameraRotations[p]
	r.Camera = p
	r.x, r.y, r.z = a.x, a.y, a.z
	r.perspective = a.fov
	r.HasCamera = true
}

// X returns the rotation around the vertical axis in degrees.
func (r *Rotation3D) X() float64 { return r.x }

// SetX sets the rotation around the vertical axis, clamped to [0, 359.9].
func (r *Rotation3D) SetX(deg float64) {
	r.x = clamp(deg, 0, 359.9)
	r.HasCamera = true
}

// Y returns the rotation around the horizontal axis in degrees.
func (r *Rotation3D) Y() float64 { return r.y }

// SetY sets the rotation around the horizontal axis, clamped to [0, 359.9].
func (r *Rotation3D) SetY(deg float64) {
	r.y = clamp(deg, 0, 359.9)
	r.HasCamera = true
}

// Z returns the rotation around the viewing axis in degrees.
func (r *Rotation3D) Z() float64 { return r.z }

// SetZ sets the rotation around the viewing axis, clamped to [0, 359.9].
func (r *Rotation3D) SetZ(deg float64) {
	r.z = clamp(deg, 0, 359.9)
	r.HasCamera = true
}

// Perspective returns the field of view in degrees.
func (r *Rotation3D) Perspective() float64 { return r.perspective }

// SetPerspective sets the field of view, clamped to [0, 180]. It is ignored
// unless the camera is a perspective camera.
func (r *Rotation3D) SetPerspective(deg float64) {
	if !r.Camera.IsPerspective() {
		return
	}
	r.perspective = clamp(deg, 0, 180)
	r.HasCamera = true
}

// toCamera builds the a:camera element. The rotation and field of view are
// written only when they differ from the preset.
func (r *Rotation3D) toCamera() dml.Camera {
	cam := dml.Camera{Prst: string(r.Camera)}
	a := cameraRotations[r.Camera]
	if r.Camera.IsPerspective() && r.perspective != a.fov {
		cam.Fov = intPtr(DegreesToAngle(r.perspective))
	}
	if r.x != a.x || r.y != a.y || r.z != a.z {
		cam.Rot = &dml.SphereCoords{
			Lat: DegreesToAngle(r.y),
			Lon: DegreesToAngle(r.x),
			Rev: DegreesToAngle(r.z),
		}
	}
	return cam
}

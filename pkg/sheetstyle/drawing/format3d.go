package drawing

import (
	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/schema/dml"
	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/theme"
)

// BevelPreset is a bevel shape (ST_BevelPresetType).
type BevelPreset string

// Bevel presets.
const (
	BevelRelaxedInset BevelPreset = "relaxedInset"
	BevelCircle       BevelPreset = "circle"
	BevelSlope        BevelPreset = "slope"
	BevelCross        BevelPreset = "cross"
	BevelAngle        BevelPreset = "angle"
	BevelSoftRound    BevelPreset = "softRound"
	BevelConvex       BevelPreset = "convex"
	BevelCoolSlant    BevelPreset = "coolSlant"
	BevelDivot        BevelPreset = "divot"
	BevelRiblet       BevelPreset = "riblet"
	BevelHardEdge     BevelPreset = "hardEdge"
	BevelArtDeco      BevelPreset = "artDeco"
)

// Material is a surface material (ST_PresetMaterialType).
type Material string

// Materials.
const (
	MaterialLegacyMatte       Material = "legacyMatte"
	MaterialLegacyPlastic     Material = "legacyPlastic"
	MaterialLegacyMetal       Material = "legacyMetal"
	MaterialLegacyWireframe   Material = "legacyWireframe"
	MaterialMatte             Material = "matte"
	MaterialPlastic           Material = "plastic"
	MaterialMetal             Material = "metal"
	MaterialWarmMatte         Material = "warmMatte"
	MaterialTranslucentPowder Material = "translucentPowder"
	MaterialPowder            Material = "powder"
	MaterialDarkEdge          Material = "dkEdge"
	MaterialSoftEdge          Material = "softEdge"
	MaterialClear             Material = "clear"
	MaterialFlat              Material = "flat"
	MaterialSoftMetal         Material = "softmetal"
)

// LightRigType is a lighting setup (ST_LightRigType).
type LightRigType string

// Light rigs.
const (
	LightLegacyFlat1   LightRigType = "legacyFlat1"
	LightLegacyFlat2   LightRigType = "legacyFlat2"
	LightLegacyFlat3   LightRigType = "legacyFlat3"
	LightLegacyFlat4   LightRigType = "legacyFlat4"
	LightLegacyNormal1 LightRigType = "legacyNormal1"
	LightLegacyNormal2 LightRigType = "legacyNormal2"
	LightLegacyNormal3 LightRigType = "legacyNormal3"
	LightLegacyNormal4 LightRigType = "legacyNormal4"
	LightLegacyHarsh1  LightRigType = "legacyHarsh1"
	LightLegacyHarsh2  LightRigType = "legacyHarsh2"
	LightLegacyHarsh3  LightRigType = "legacyHarsh3"
	LightLegacyHarsh4  LightRigType = "legacyHarsh4"
	LightThreePoints   LightRigType = "threePt"
	LightBalanced      LightRigType = "balanced"
	LightSoft          LightRigType = "soft"
	LightHarsh         LightRigType = "harsh"
	LightFlood         LightRigType = "flood"
	LightContrasting   LightRigType = "contrasting"
	LightMorning       LightRigType = "morning"
	LightSunrise       LightRigType = "sunrise"
	LightSunset        LightRigType = "sunset"
	LightChilly        LightRigType = "chilly"
	LightFreezing      LightRigType = "freezing"
	LightFlat          LightRigType = "flat"
	LightTwoPoints     LightRigType = "twoPt"
	LightGlow          LightRigType = "glow"
	LightBrightRoom    LightRigType = "brightRoom"
)

// maxBevelSize bounds bevels, extrusion height and contour width in points.
const maxBevelSize = 1584

// Bevel is the top or bottom bevel of a 3-D shape.
type Bevel struct {
	Preset BevelPreset
	width  float64
	height float64
}

// NewBevel returns the default circle bevel of 6 by 6 points.
func NewBevel() Bevel {
	return Bevel{Preset: BevelCircle, width: 6, height: 6}
}

// Width returns the bevel width in points.
func (b *Bevel) Width() float64 { return b.width }

// SetWidth sets the bevel width, clamped to [0, 1584] points.
func (b *Bevel) SetWidth(pt float64) { b.width = clamp(pt, 0, maxBevelSize) }

// Height returns the bevel height in points.
func (b *Bevel) Height() float64 { return b.height }

// SetHeight sets the bevel height, clamped to [0, 1584] points.
func (b *Bevel) SetHeight(pt float64) { b.height = clamp(pt, 0, maxBevelSize) }

func (b *Bevel) toBevel() *dml.Bevel {
	return &dml.Bevel{W: PointsToEMU(b.width), H: PointsToEMU(b.height), Prst: string(b.Preset)}
}

// Format3D holds the bevels, extrusion, contour, material and lighting of a
// shape. Lighting is written with the camera by ToScene3D; the rest goes to
// ToShape3D.
type Format3D struct {
	BevelTop       Bevel
	HasBevelTop    bool
	BevelBottom    Bevel
	HasBevelBottom bool

	ExtrusionColor    ColorTransform
	HasExtrusionColor bool
	ContourColor      ColorTransform
	HasContourColor   bool

	extrusionHeight float64
	contourWidth    float64

	Material  Material
	zDistance float64

	Lighting      LightRigType
	lightingAngle float64
	HasLighting   bool
}

// NewFormat3D returns an unset 3-D format.
func NewFormat3D(p theme.Palette) Format3D {
	return Format3D{
		BevelTop:       NewBevel(),
		BevelBottom:    NewBevel(),
		ExtrusionColor: NewColorTransform(p),
		ContourColor:   NewColorTransform(p),
		Material:       MaterialWarmMatte,
		Lighting:       LightThreePoints,
	}
}

// SetBevelTop sets the top bevel.
func (f *Format3D) SetBevelTop(preset BevelPreset, width, height float64) {
	f.BevelTop.Preset = preset
	f.BevelTop.SetWidth(width)
	f.BevelTop.SetHeight(height)
	f.HasBevelTop = true
}

// SetBevelBottom sets the bottom bevel.
func (f *Format3D) SetBevelBottom(preset BevelPreset, width, height float64) {
	f.BevelBottom.Preset = preset
	f.BevelBottom.SetWidth(width)
	f.BevelBottom.SetHeight(height)
	f.HasBevelBottom = true
}

// SetExtrusionColor sets an RGB extrusion color.
func (f *Format3D) SetExtrusionColor(hex string, transparency float64) {
	f.ExtrusionColor.SetColor(hex, transparency)
	f.HasExtrusionColor = true
}

// SetExtrusionThemeColor sets a theme extrusion color.
func (f *Format3D) SetExtrusionThemeColor(slot theme.Slot, tint, transparency float64) {
	f.ExtrusionColor.SetThemeColor(slot, tint, transparency)
	f.HasExtrusionColor = true
}

// SetContourColor sets an RGB contour color.
func (f *Format3D) SetContourColor(hex string, transparency float64) {
	f.ContourColor.SetColor(hex, transparency)
	f.HasContourColor = true
}

// SetContourThemeColor sets a theme contour color.
func (f *Format3D) SetContourThemeColor(slot theme.Slot, tint, transparency float64) {
	f.ContourColor.SetThemeColor(slot, tint, transparency)
	f.HasContourColor = true
}

// ExtrusionHeight returns the extrusion depth in points.
func (f *Format3D) ExtrusionHeight() float64 { return f.extrusionHeight }

// SetExtrusionHeight sets the extrusion depth, clamped to [0, 1584] points.
func (f *Format3D) SetExtrusionHeight(pt float64) {
	f.extrusionHeight = clamp(pt, 0, maxBevelSize)
}

// ContourWidth returns the contour width in points.
func (f *Format3D) ContourWidth() float64 { return f.contourWidth }

// SetContourWidth sets the contour width, clamped to [0, 1584] points.
func (f *Format3D) SetContourWidth(pt float64) {
	f.contourWidth = clamp(pt, 0, maxBevelSize)
}

// ZDistance returns the distance from the ground in points.
func (f *Format3D) ZDistance() float64 { return f.zDistance }

// SetZDistance sets the distance from the ground, clamped to [-4000, 4000]
// points.
func (f *Format3D) SetZDistance(pt float64) {
	f.zDistance = clamp(pt, -4000, 4000)
}

// LightingAngle returns the light rig rotation in degrees.
func (f *Format3D) LightingAngle() float64 { return f.lightingAngle }

// SetLighting sets the light rig and its rotation, clamped to [0, 359.9]
// degrees.
func (f *Format3D) SetLighting(rig LightRigType, angle float64) {
	f.Lighting = rig
	f.lightingAngle = clamp(angle, 0, 359.9)
	f.HasLighting = true
}

// HasShape3D reports whether ToShape3D writes anything.
func (f *Format3D) HasShape3D() bool {
	return f.HasBevelTop || f.HasBevelBottom || f.HasExtrusionColor || f.HasContourColor ||
		f.extrusionHeight != 0 || f.contourWidth != 0 || f.Material != MaterialWarmMatte ||
		f.zDistance != 0
}

// ToShape3D emits the a:sp3d element, or nil when HasShape3D is false.
func (f *Format3D) ToShape3D() *dml.Shape3D {
	if !f.HasShape3D() {
		return nil
	}
	sp := &dml.Shape3D{}
	if f.zDistance != 0 {
		sp.Z = intPtr(PointsToEMU(f.zDistance))
	}
	if f.extrusionHeight != 0 {
		sp.ExtrusionH = intPtr(PointsToEMU(f.extrusionHeight))
	}
	if f.contourWidth != 0 {
		sp.ContourW = intPtr(PointsToEMU(f.contourWidth))
	}
	if f.Material != MaterialWarmMatte {
		sp.PrstMaterial = string(f.Material)
	}
	if f.HasBevelTop {
		sp.BevelT = f.BevelTop.toBevel()
	}
	if f.HasBevelBottom {
		sp.BevelB = f.BevelBottom.toBevel()
	}
	if f.HasExtrusionColor {
		sp.ExtrusionClr = &dml.ColorElement{ColorChoice: f.ExtrusionColor.ToColorChoice()}
	}
	if f.HasContourColor {
		sp.ContourClr = &dml.ColorElement{ColorChoice: f.ContourColor.ToColorChoice()}
	}
	return sp
}

// Clone returns a deep copy.
func (f Format3D) Clone() Format3D {
	f.ExtrusionColor = f.ExtrusionColor.Clone()
	f.ContourColor = f.ContourColor.Clone()
	return f
}

// ToScene3D emits the a:scene3d element shared by the camera of rot and the
// lighting of f. It is written when the camera, the lighting or either bevel
// has been set. Either argument may be nil.
func ToScene3D(rot *Rotation3D, f *Format3D) *dml.Scene3D {
	hasCamera := rot != nil && rot.HasCamera
	hasLighting := f != nil && f.HasLighting
	hasBevel := f != nil && (f.HasBevelTop || f.HasBevelBottom)
	if !hasCamera && !hasLighting && !hasBevel {
		return nil
	}

	scene := &dml.Scene3D{
		Camera:   dml.Camera{Prst: string(CameraOrthographicFront)},
		LightRig: dml.LightRig{Rig: string(LightThreePoints), Dir: "t"},
	}
	if rot != nil {
		scene.Camera = rot.toCamera()
	}
	if f != nil {
		scene.LightRig.Rig = string(f.Lighting)
		if f.lightingAngle != 0 {
			scene.LightRig.Rot = &dml.SphereCoords{Rev: DegreesToAngle(f.lightingAngle)}
		}
	}
	return scene
}

package light

// LightType identifies how a light contributes to lit materials.
type LightType int

const (
	// LightTypeAmbient adds a constant color to every lit surface.
	LightTypeAmbient LightType = iota

	// LightTypePoint emits from a position in all directions, without distance falloff.
	LightTypePoint
)

type lightImpl struct {
	lightType LightType
	position  [3]float32
	color     [3]float32
	intensity float32
	enabled   bool
}

// Light defines a scene light source. Standard materials sum the contribution of the
// scene's ambient light and its point light; basic and points materials ignore lights.
type Light interface {
	// Type returns the kind of light.
	//
	// Returns:
	//   - LightType: ambient or point
	Type() LightType

	// Position returns the world-space position. Ambient lights ignore it.
	//
	// Returns:
	//   - [3]float32: the position
	Position() [3]float32

	// Color returns the linear RGB color.
	//
	// Returns:
	//   - [3]float32: the color
	Color() [3]float32

	// Intensity returns the scalar multiplier applied to Color.
	//
	// Returns:
	//   - float32: the intensity
	Intensity() float32

	// Radiance returns Color scaled by Intensity, or black when the light is disabled.
	//
	// Returns:
	//   - [3]float32: the effective color
	Radiance() [3]float32

	// Enabled reports whether the light contributes.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetPosition moves the light.
	//
	// Parameters:
	//   - x, y, z: world-space position
	SetPosition(x, y, z float32)

	// SetColor sets the RGB color.
	//
	// Parameters:
	//   - r, g, b: color components
	SetColor(r, g, b float32)

	// SetIntensity sets the scalar multiplier.
	//
	// Parameters:
	//   - intensity: new intensity
	SetIntensity(intensity float32)

	// SetEnabled toggles the light.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)
}

var _ Light = &lightImpl{}

// NewLight creates a white, enabled light of the given type with intensity 1 at the origin.
//
// Parameters:
//   - lightType: ambient or point
//   - opts: functional options to configure the light
//
// Returns:
//   - Light: the new light
func NewLight(lightType LightType, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		lightType: lightType,
		color:     [3]float32{1, 1, 1},
		intensity: 1.0,
		enabled:   true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Type() LightType {
	return l.lightType
}

func (l *lightImpl) Position() [3]float32 {
	return l.position
}

func (l *lightImpl) Color() [3]float32 {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Radiance() [3]float32 {
	if !l.enabled {
		return [3]float32{}
	}
	return [3]float32{l.color[0] * l.intensity, l.color[1] * l.intensity, l.color[2] * l.intensity}
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) SetPosition(x, y, z float32) {
	l.position = [3]float32{x, y, z}
}

func (l *lightImpl) SetColor(r, g, b float32) {
	l.color = [3]float32{r, g, b}
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}

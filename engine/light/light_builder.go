package light

// LightBuilderOption is a functional option for configuring a Light.
type LightBuilderOption func(*lightImpl)

// WithPosition sets the world-space position of the light.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - LightBuilderOption: option function to apply
func WithPosition(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.position = [3]float32{x, y, z}
	}
}

// WithColor sets the RGB color of the light.
//
// Parameters:
//   - r, g, b: color components in [0, 1]
//
// Returns:
//   - LightBuilderOption: option function to apply
func WithColor(r, g, b float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = [3]float32{r, g, b}
	}
}

// WithHexColor sets the color from a 0xRRGGBB value.
//
// Parameters:
//   - hex: packed 24-bit color
//
// Returns:
//   - LightBuilderOption: option function to apply
func WithHexColor(hex uint32) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = [3]float32{
			float32(hex>>16&0xFF) / 255,
			float32(hex>>8&0xFF) / 255,
			float32(hex&0xFF) / 255,
		}
	}
}

// WithIntensity sets the scalar multiplier of the light.
//
// Parameters:
//   - intensity: the intensity
//
// Returns:
//   - LightBuilderOption: option function to apply
func WithIntensity(intensity float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.intensity = intensity
	}
}

// WithEnabled sets whether the light starts enabled.
//
// Parameters:
//   - enabled: true to enable
//
// Returns:
//   - LightBuilderOption: option function to apply
func WithEnabled(enabled bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.enabled = enabled
	}
}

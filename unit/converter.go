package unit

// Converter maps a numeric value in one unit to the equivalent value in
// another. Converters are composed once at construction and are safe
// for concurrent use.
type Converter func(value float64) float64

// Convert applies the converter to a value.
func (c Converter) Convert(value float64) float64 {
	return c(value)
}

// Identity returns the converter that maps every value to itself.
func Identity() Converter {
	return func(value float64) float64 { return value }
}

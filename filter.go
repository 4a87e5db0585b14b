package sough

// onePole is a first-order recursive low-pass filter (a leaky integrator).
// The feedback coefficient a must be in (0, 1); values closer to 1 smooth
// harder and produce a deeper, duller texture. Every colored texture in
// this package is derived from this one filter applied to white noise.
type onePole struct {
	a float64
	y float64
}

// process advances the filter by one sample of input and returns the
// filtered output.
func (f *onePole) process(x float64) float64 {
	f.y = f.y*f.a + x*(1-f.a)
	return f.y
}

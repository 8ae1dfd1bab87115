package oscillator

// Disturber walks the oscillator system noise through a range of
// magnitudes so a trained policy can be evaluated for robustness.
type Disturber struct {
	env        *Oscillator
	magnitudes []float64
	current    int
}

func NewDisturber(env *Oscillator, magnitudes []float64) *Disturber {
	d := &Disturber{
		env:        env,
		magnitudes: magnitudes,
	}
	d.apply()
	return d
}

// Next advances to the next disturbance magnitude. It reports false
// once all magnitudes have been used.
func (d *Disturber) Next() bool {
	if d.current+1 >= len(d.magnitudes) {
		return false
	}
	d.current++
	d.apply()
	return true
}

// Current returns the active disturbance magnitude
func (d *Disturber) Current() float64 {
	if len(d.magnitudes) == 0 {
		return 0
	}
	return d.magnitudes[d.current]
}

// Reset returns to the first disturbance magnitude
func (d *Disturber) Reset() {
	d.current = 0
	d.apply()
}

func (d *Disturber) apply() {
	if len(d.magnitudes) == 0 {
		return
	}
	d.env.SetNoise(d.magnitudes[d.current])
}

package indicator

// A MovingAverage smooths a series of samples with an exponential moving
// average. It is typically used to steady a rate before formatting it next
// to an indicator. The smoothing factor is fixed at construction.
type MovingAverage struct {
	alpha float64
	value float64
}

// NewMovingAverage returns an average with the given smoothing factor in
// (0, 1]. Larger factors weigh new samples more heavily.
func NewMovingAverage(alpha float64) *MovingAverage {
	return &MovingAverage{alpha: alpha}
}

// Update folds one sample into the average.
func (a *MovingAverage) Update(sample float64) {
	a.value = a.alpha*sample + (1-a.alpha)*a.value
}

// Value returns the current average.
func (a *MovingAverage) Value() float64 {
	return a.value
}

package eos

// ThermalStep is the thermal pressure accumulated over one temperature interval.
type ThermalStep struct {
	Low      float64 // K
	High     float64 // K
	Pressure float64 // P_th(High - Low), GPa
	Slope    float64 // P_th / (High - Low), GPa/K
}

/*
Thermal pressure over consecutive temperature intervals.

	Args:
		temperatures: ascending temperatures, K

	Returns:
		one ThermalStep per consecutive pair, [len(temperatures)-1]
*/
func (m Model) ThermalPressureTable(temperatures []float64) ([]ThermalStep, error) {
	if len(temperatures) < 2 {
		return nil, ErrEmptyGrid
	}
	if _, err := GridOf(temperatures...); err != nil {
		return nil, err
	}

	steps := make([]ThermalStep, len(temperatures)-1)
	for i := 1; i < len(temperatures); i++ {
		dt := temperatures[i] - temperatures[i-1]
		p := m.ThermalPressure(dt)
		steps[i-1] = ThermalStep{
			Low:      temperatures[i-1],
			High:     temperatures[i],
			Pressure: p,
			Slope:    p / dt,
		}
	}
	return steps, nil
}

package eos

import "math"

// PotentialTemperature converts an in-situ temperature (°C) at pressure
// (dbar) to the potential temperature at referencePressure, following
// UNESCO (1983): the Bryden (1973) adiabatic lapse rate integrated with
// a 4th-order Runge-Kutta scheme.
//
// Check value: PotentialTemperature(40, 40, 10000, 0) = 36.89073 °C.
func PotentialTemperature(salinity, temperature, pressure, referencePressure float64) float64 {
	s, t, p := salinity, temperature, pressure

	h := referencePressure - p
	xk := h * adiabaticGradient(s, t, p)

	t += 0.5 * xk
	q := xk
	p += 0.5 * h

	xk = h * adiabaticGradient(s, t, p)
	t += 0.29289322 * (xk - q)
	q = 0.58578644*xk + 0.121320344*q

	xk = h * adiabaticGradient(s, t, p)
	t += 1.707106781 * (xk - q)
	q = 3.414213562*xk - 4.121320344*q
	p += 0.5 * h

	xk = h * adiabaticGradient(s, t, p)

	return t + (xk-2*q)/6
}

// adiabaticGradient is the adiabatic temperature gradient (°C/dbar)
// from UNESCO (1983). Check value: adiabaticGradient(40, 40, 10000) =
// 3.255976e-4.
func adiabaticGradient(s, t, p float64) float64 {
	ds := s - 35

	return (((-2.1687e-16*t+1.8676e-14)*t-4.6206e-13)*p+
		((2.7759e-12*t-1.1351e-10)*ds+
			((-5.4481e-14*t+8.733e-12)*t-6.7795e-10)*t+1.8741e-8))*p +
		(-4.2393e-8*t+1.8932e-6)*ds +
		((6.6228e-10*t-6.836e-8)*t+8.5258e-6)*t + 3.5803e-5
}

// PressureFromDepth converts depth (m, positive downward) to pressure
// (dbar) using the Saunders (1981) latitude-dependent approximation.
// Check value: PressureFromDepth(7321.45, 30) ≈ 7500 dbar.
func PressureFromDepth(depth, latitudeDeg float64) float64 {
	z := math.Abs(depth)
	sinLat := math.Sin(latitudeDeg * math.Pi / 180)
	c1 := (5.92 + 5.25*sinLat*sinLat) * 1e-3

	return ((1 - c1) - math.Sqrt((1-c1)*(1-c1)-8.84e-6*z)) / 4.42e-6
}

// DepthFromPressure converts pressure (dbar) to depth (m) following
// UNESCO (1983), with the gravity variation of Anon (1970).
// Check value: DepthFromPressure(10000, 30) = 9712.653 m.
func DepthFromPressure(pressure, latitudeDeg float64) float64 {
	x := math.Sin(latitudeDeg * math.Pi / 180)
	x *= x

	gr := 9.780318*(1+(5.2788e-3+2.36e-5*x)*x) + 1.092e-6*pressure
	d := (((-1.82e-15*pressure+2.279e-10)*pressure-2.2512e-5)*pressure + 9.72659) * pressure

	return d / gr
}

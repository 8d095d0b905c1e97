// Package eos implements the equation of state of seawater.
//
// Density follows the Jackett and McDougall (1995) formulation as used
// in NEMO: a 15-term one-atmosphere density polynomial (Millero and
// Poisson, 1981) divided by a secant-bulk-modulus pressure correction
// (Millero et al., 1980, with JM95 coefficients). Pressure is taken in
// decibar and, as in NEMO, approximated by depth in meters. Density
// defaults to the surface-referenced (sigma-0) potential density used
// for stratification; in-situ density is an option.
//
// The package also provides the UNESCO (1983) potential temperature
// algorithm (Bryden adiabatic lapse rate integrated with a 4th-order
// Runge-Kutta scheme) and the Saunders (1981) depth/pressure
// conversions.
//
// The empirical formulas are valid for roughly salinity 0-42 PSU,
// temperature -2-40 °C and pressure 0-10000 dbar. Inputs outside this
// range are not rejected; callers own data quality.
package eos

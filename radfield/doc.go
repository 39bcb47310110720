// Package radfield samples the dilute-blackbody radiation field of an
// expanding supernova envelope: the mean intensity at the blue wing of each
// spectral line, per shell, that feeds the stimulated-emission correction
// of the transition-probability engine.
//
// The model is the standard dilute blackbody,
//
//	J_nu = W · B_nu(T_rad)
//
// with W the geometric dilution factor of the shell and B_nu the Planck
// specific intensity at the shell's radiation temperature. All quantities
// are CGS (frequencies in Hz, temperatures in K, intensities in
// erg s^-1 cm^-2 Hz^-1 sr^-1); the physical constants live here as
// unexported package constants and nowhere else in the module.
package radfield

// Package sobolev computes the Sobolev line escape probability: the beta
// factor that weights every transition rate the macro-atom engine assembles.
//
// In the Sobolev approximation a photon emitted in a line of optical depth
// tau escapes the resonance region with probability
//
//	beta(tau) = (1 - exp(-tau)) / tau
//
// Escape evaluates it with guarded asymptotic regimes for very large and
// very small tau, where the exact expression loses precision or wastes an
// exp call; Table applies it elementwise to a (lines × shells) opacity
// table, producing the Beta input of transprob.Inputs.
package sobolev

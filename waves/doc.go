// Package waves turns multipole-decomposed curvature scalars extracted at
// finite radii into radiative quantities.
//
// A [Detector] holds the modes of one field (Psi4 or Phi2) at one extraction
// radius. It reconstructs strain through fixed-frequency integration, projects
// it onto the interferometer network, and computes radiated power, energy,
// torque and angular momentum. A [Collection] groups detectors by radius and
// drives [ExtrapolateToInfinity], which fits every retarded-time sample with
// a polynomial in 1/r and keeps the r → ∞ limit.
//
// Sums over modes always combine terms in ascending (degree, order), so
// totals are reproducible bit for bit regardless of the worker count.
package waves

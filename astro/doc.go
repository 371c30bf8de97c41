// Package astro provides the geometric collaborators of the wave analysis:
// spin-weighted spherical harmonics, Greenwich mean sidereal time, the
// antenna response of the ground-based interferometer network and the
// tortoise coordinate of a Schwarzschild background.
//
// All angles are in radians.
package astro

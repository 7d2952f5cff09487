// Package cfo estimates carrier frequency offset from complex baseband
// samples.
//
// The estimate is the location of the strongest FFT bin, refined by
// parabolic interpolation over its neighbours. For modulated signals,
// [EstimateMPSK] first strips M-PSK modulation by raising samples to the
// M-th power.
package cfo

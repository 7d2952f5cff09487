// Package channel simulates physical-layer impairments of a communications
// channel on complex baseband samples.
//
// A [Channel] composes three independently enabled stages into a fixed
// per-sample pipeline:
//
//	multipath (FIR) -> carrier offset (NCO mix-up) -> AWGN
//
// A freshly created channel passes samples through unchanged. Each Add*
// method enables one stage and replaces its parameters. Stages keep state
// across calls to [Channel.Execute]: the multipath delay line and the
// carrier phase continue where the previous buffer ended.
//
// A Channel is not safe for concurrent use. Serialize access or create one
// channel (and one noise source) per goroutine.
package channel

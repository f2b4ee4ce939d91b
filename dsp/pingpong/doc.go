// Package pingpong implements a stereo feedback delay with ping-pong
// cross-feedback, dry/wet mixing and tempo-synced delay time.
//
// An Engine owns a two-lane circular buffer sized for the maximum delay
// (three seconds by default) and a single write cursor shared by both
// channels. Each call to Process:
//
//  1. records the host tempo if the block carries a valid one,
//  2. takes one Snapshot of the live Params,
//  3. resolves the delay time (manual or tempo-synced) to a sample offset
//     clamped to the buffer,
//  4. runs the independent or ping-pong kernel over the block in place,
//  5. advances the cursor by the block length modulo the capacity.
//
// Parameters are plain atomics, so a control goroutine can update them
// while another goroutine processes audio. Process does not allocate, lock
// or block; only Prepare allocates.
//
// Blocks with fewer than two channels pass through unchanged; mono
// processing is not supported.
package pingpong

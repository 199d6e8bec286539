// Package rover implements the firmware core of a differential-drive
// robot: command dispatch, periodic ultrasonic ranging with an
// exponential filter, and the autonomous explore behavior, all advanced
// from a single cooperative control loop.
package rover

// Package motion holds the pure control math used by drive commands:
// mecanum wheel mixing, heading-hold steering, proportional turning, the
// landmark alignment law and encoder distance conversion.
//
// Everything here is a function of its arguments. Angles passed as errors are
// in degrees; distances are in millimetres.
package motion

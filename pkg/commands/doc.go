// Package commands implements one Command per operation.
//
// Rule-creating commands follow the same flow: check that every required
// parameter is present, read the typed values, build the optional
// sub-structures only when the payload carries them, derive a description
// when none was given, and hand the finished rule to the serializer.
package commands

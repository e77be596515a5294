// Package host is the seam between a concrete text editing surface
// and the span engine. It defines the EditSource capability interface
// an editor adapter implements, and the Binder that owns one engine
// per edit session and drives it from the surface's events.
package host

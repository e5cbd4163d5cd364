//go:build !nogizmos

package gizmos

// Enabled reports whether gizmo drawing is compiled in. Build with the
// nogizmos tag to strip it from release builds.
const Enabled = true

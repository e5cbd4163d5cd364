//go:build nogizmos

package gizmos

const Enabled = false

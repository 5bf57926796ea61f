// Package notice exposes the statutory form model used throughout the
// pipeline: the two supported forms (Form 3 / Section 8 and Form 6A /
// Section 21), the field sets substituted into them, and the helpers for
// loading and sanitising field values.
package notice

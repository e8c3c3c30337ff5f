// Package interfaces holds compile-time checks that concrete types satisfy
// the interfaces their consumers declare.
//
// To verify all checks pass: go build ./internal/interfaces/...
package interfaces

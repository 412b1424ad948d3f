// Package service defines the value types a documentation context carries.
//
// The assembly engine in package contexts never interprets these
// values; it only stores them, merges them by key, or unions them. Their
// meaning belongs to the generation pipeline that consumes the finished
// context.
package service

// Package utils provides small helpers shared by the messaging client:
// a preconfigured REST client and an ID generator.
package utils

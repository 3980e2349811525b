package main

import (
	"fmt"
	"strings"

	"github.com/halfvec/tiff6"
)

// formatSample renders the first n elements of v as a short
// human-readable string, independent of the field's exact Go type.
func formatSample(v tiff6.Value, n int) string {
	var parts []string
	switch v.Type {
	case tiff6.TypeByte:
		for _, x := range v.Bytes[:n] {
			parts = append(parts, fmt.Sprintf("%d", x))
		}
	case tiff6.TypeASCII:
		return strings.Join(v.Asciis[:n], " / ")
	case tiff6.TypeShort:
		for _, x := range v.Shorts[:n] {
			parts = append(parts, fmt.Sprintf("%d", x))
		}
	case tiff6.TypeLong:
		for _, x := range v.Longs[:n] {
			parts = append(parts, fmt.Sprintf("%d", x))
		}
	case tiff6.TypeRational:
		for _, x := range v.Rationals[:n] {
			parts = append(parts, fmt.Sprintf("%d/%d", x.Num, x.Denom))
		}
	case tiff6.TypeSByte:
		for _, x := range v.SBytes[:n] {
			parts = append(parts, fmt.Sprintf("%d", x))
		}
	case tiff6.TypeSShort:
		for _, x := range v.SShorts[:n] {
			parts = append(parts, fmt.Sprintf("%d", x))
		}
	case tiff6.TypeSLong:
		for _, x := range v.SLongs[:n] {
			parts = append(parts, fmt.Sprintf("%d", x))
		}
	case tiff6.TypeSRational:
		for _, x := range v.SRationals[:n] {
			parts = append(parts, fmt.Sprintf("%d/%d", x.Num, x.Denom))
		}
	case tiff6.TypeFloat:
		for _, x := range v.Floats[:n] {
			parts = append(parts, fmt.Sprintf("%g", x))
		}
	case tiff6.TypeDouble:
		for _, x := range v.Doubles[:n] {
			parts = append(parts, fmt.Sprintf("%g", x))
		}
	default:
		for _, x := range v.Undefined[:n] {
			parts = append(parts, fmt.Sprintf("%02x", x))
		}
	}
	return strings.Join(parts, ", ")
}

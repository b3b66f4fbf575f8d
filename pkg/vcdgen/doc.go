//
// Package vcdgen generates synthetic waveforms in Value Change Dump (VCD) format.
//
// It is mainly designed for stress testing VCD parsers with realistic file sizes,
// signal counts and value change rates.
//
// Quick start:
//
//	// Default hierarchy and signal set, stop after ~100MiB.
//	spec := DefaultSpec(100 * MiB)
//
//	// Header, $dumpvars and value changes go straight to the file.
//	stats, err := GenerateFile(logger, "large_test.vcd", spec)
package vcdgen

package config

import "runtime"

// Threshold resolution chain (highest priority first):
//   1. CLI flags (--toom2-threshold, --toom3-threshold, --workers)
//   2. Environment variables (BIGCALC_TOOM2_THRESHOLD, etc.)
//   3. Adaptive hardware estimation (this file)
//   4. Static defaults in the bigint package

// ApplyAdaptiveDefaults fills in the zero-valued performance settings from
// hardware characteristics, preserving any user-specified overrides.
func ApplyAdaptiveDefaults(cfg AppConfig) AppConfig {
	if cfg.Toom2Threshold == 0 {
		cfg.Toom2Threshold = EstimateOptimalToom2Threshold()
	}
	if cfg.Toom3Threshold == 0 {
		cfg.Toom3Threshold = EstimateOptimalToom3Threshold()
	}
	if cfg.Toom3Threshold < cfg.Toom2Threshold {
		cfg.Toom3Threshold = cfg.Toom2Threshold * 4
	}
	if cfg.Workers == 0 {
		cfg.Workers = EstimateOptimalWorkers()
	}
	return cfg
}

// EstimateOptimalToom2Threshold provides a heuristic estimate of the
// schoolbook→Toom-2 crossover without running benchmarks. The estimate
// depends only on the host word size.
func EstimateOptimalToom2Threshold() int {
	wordSize := 32 << (^uint(0) >> 63)
	if wordSize == 64 {
		return 550
	}
	// 32-bit hosts pay more per partial product, so Toom-2 wins earlier.
	return 400
}

// EstimateOptimalToom3Threshold provides a heuristic estimate of the
// Toom-2→Toom-3 crossover without running benchmarks.
func EstimateOptimalToom3Threshold() int {
	wordSize := 32 << (^uint(0) >> 63)
	if wordSize == 64 {
		return 2200
	}
	return 1600
}

// EstimateOptimalWorkers returns the stress worker count for this host: one
// per CPU on hosts with at most two CPUs, one fewer than the CPU count up to
// sixteen CPUs, and sixteen above that.
func EstimateOptimalWorkers() int {
	numCPU := runtime.NumCPU()
	switch {
	case numCPU <= 2:
		return numCPU
	case numCPU <= 16:
		return numCPU - 1
	default:
		return 16
	}
}

//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD); it is part of the ARMv8-A base.
	// The check is kept for consistency with the amd64 path.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
	} else {
		currentLevel = DispatchScalar
	}
}

//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures group lanes like a 128-bit register.
	currentLevel = DispatchScalar
}

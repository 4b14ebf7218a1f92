package compression

// ComputeMetrics derives size metrics from the original and compressed byte
// counts. A zero-byte original yields a reduction of 0 rather than a
// division by zero.
func ComputeMetrics(originalSize, compressedSize int64) Metrics {
	m := Metrics{
		OriginalSize:   originalSize,
		CompressedSize: compressedSize,
	}
	if originalSize > 0 {
		m.ReductionPercent = (1 - float64(compressedSize)/float64(originalSize)) * 100
	}
	return m
}

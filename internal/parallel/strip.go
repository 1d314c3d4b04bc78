package parallel

// Strip is a contiguous band of rows [Y, Y+Rows) handed to one task.
type Strip struct {
	Y    int
	Rows int
}

// Strips partitions height rows into n contiguous bands. Every band gets
// height/n rows and the last band absorbs the remainder. n is clamped to
// height so no band is empty; a non-positive height or n yields no bands.
func Strips(height, n int) []Strip {
	if height <= 0 || n <= 0 {
		return nil
	}
	n = min(n, height)

	rows := height / n
	out := make([]Strip, n)
	for i := range n - 1 {
		out[i] = Strip{Y: i * rows, Rows: rows}
	}
	last := (n - 1) * rows
	out[n-1] = Strip{Y: last, Rows: height - last}
	return out
}

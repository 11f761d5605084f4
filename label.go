package ccl

import "github.com/jacklj/ccl/unionfind"

// Label assigns a positive integer to every foreground pixel of image so
// that pixels share a label iff they belong to the same connected blob
// under conn. Background pixels stay 0. The final label set is exactly
// {1..k} for k blobs, numbered in the row-major order each blob's
// canonical pixel is first reached.
//
// image must be rectangular; true = foreground. An image with zero rows or
// zero columns yields an empty matrix of the same shape.
//
// Returns ErrNonRectangular or ErrBadConnectivity before touching the
// output; there are no partial results.
//
// Steps:
//  1. Validate connectivity and rectangularity.
//  2. Pass 1 — provisional labelling: scan row-major; a foreground pixel
//     with no already-labelled prior neighbors (N/W, plus NW/NE for Conn8)
//     seeds a new label; otherwise it takes the smallest neighbor label,
//     and every distinct neighbor label is merged with it in the
//     disjoint-set forest.
//  3. Pass 2 — canonicalization: rewrite each label to its class
//     representative, recording representatives in first-encounter order.
//  4. Pass 3 — compaction: renumber representatives 1..k in that order.
//
// Complexity: O(W×H×d) time (d = 4 or 8, with amortized O(α) disjoint-set
// work per pixel), O(W×H) memory.
func Label(image [][]bool, conn Connectivity) ([][]int, error) {
	// 1. Validate inputs before allocating or mutating anything.
	if conn != Conn4 && conn != Conn8 {
		return nil, ErrBadConnectivity
	}
	h := len(image)
	w := 0
	if h > 0 {
		w = len(image[0])
	}
	for _, row := range image {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	labels := make([][]int, h)
	for y := range labels {
		labels[y] = make([]int, w)
	}
	// Degenerate shapes carry no pixels; the empty matrix is the answer.
	if h == 0 || w == 0 {
		return labels, nil
	}

	// The forest is private to this run: labels from different images must
	// never share equivalence classes.
	ds := unionfind.New()
	next := 1 // provisional label counter, shared across the whole pass

	// 2. Pass 1: provisional labelling.
	var neighbors [4]int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !image[y][x] {
				continue // background stays 0
			}

			ns := priorNeighborLabels(labels, conn, x, y, neighbors[:0])
			if len(ns) == 0 {
				// No labelled neighbor: this pixel seeds a new blob.
				labels[y][x] = next
				ds.MakeSet(next)
				next++
				continue
			}

			// Smallest-label-wins keeps numbering deterministic.
			smallest := ns[0]
			for _, l := range ns[1:] {
				if l < smallest {
					smallest = l
				}
			}
			labels[y][x] = smallest

			if len(ns) > 1 {
				// Multiple distinct labels meeting at one pixel belong to
				// the same blob: record the equivalences.
				for _, l := range ns {
					ds.Union(ds.MakeSet(smallest), ds.MakeSet(l))
				}
			}
		}
	}

	// 3. Pass 2: canonicalization. Rewrite provisional labels to their
	// class representative and note each representative the first time it
	// appears in row-major order.
	final := make(map[int]int)
	nextFinal := 1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := labels[y][x]
			if v == 0 {
				continue
			}
			rep := ds.Find(ds.MakeSet(v)).Value
			labels[y][x] = rep
			if _, ok := final[rep]; !ok {
				final[rep] = nextFinal
				nextFinal++
			}
		}
	}

	// 4. Pass 3: compaction. Collapse representatives onto 1..k.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if v := labels[y][x]; v > 0 {
				labels[y][x] = final[v]
			}
		}
	}

	return labels, nil
}

// priorNeighborLabels collects the distinct positive labels among the
// already-visited neighbors of (x, y): west and north, plus northwest and
// northeast for Conn8. Later neighbors are not yet labelled and never
// inspected. Out-of-bounds and background neighbors contribute nothing.
// Results are appended to buf to avoid per-pixel allocation.
func priorNeighborLabels(labels [][]int, conn Connectivity, x, y int, buf []int) []int {
	add := func(l int) {
		if l == 0 {
			return
		}
		for _, seen := range buf {
			if seen == l {
				return
			}
		}
		buf = append(buf, l)
	}

	if x > 0 {
		add(labels[y][x-1]) // west
	}
	if y > 0 {
		add(labels[y-1][x]) // north
	}
	if conn == Conn8 && y > 0 {
		if x > 0 {
			add(labels[y-1][x-1]) // northwest
		}
		if x < len(labels[y])-1 {
			add(labels[y-1][x+1]) // northeast
		}
	}

	return buf
}

// Count reports the number of components in a matrix produced by Label.
// Because final labels are exactly 1..k, the maximum value is the count.
// Complexity: O(W×H).
func Count(labels [][]int) int {
	k := 0
	for _, row := range labels {
		for _, v := range row {
			if v > k {
				k = v
			}
		}
	}

	return k
}

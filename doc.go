// Package ccl labels the connected components of a binary image.
//
// What:
//
//   - Label scans a rectangular boolean matrix (true = foreground) and
//     assigns every pixel of the same connected blob the same positive
//     integer; background pixels stay 0.
//   - Two-pass algorithm: a row-major provisional-labelling sweep recording
//     label equivalences in a disjoint-set forest, then canonicalization,
//     plus a compaction sweep so final labels are exactly 1..k.
//   - Conn4 treats orthogonal neighbors as adjacent; Conn8 adds diagonals.
//
// Why:
//
//   - Blob detection in thresholded images: counting objects, masking
//     regions, seeding later per-component analysis.
//
// Complexity:
//
//   - Label: O(W×H) pixel visits, each doing O(α) amortized disjoint-set
//     work. Memory: O(W×H) for the output matrix.
//
// Errors:
//
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrBadConnectivity: connectivity other than Conn4 or Conn8.
//
// Both are rejected before any labelling work; there are no partial results.
//
// Subpackages:
//
//	unionfind/ — disjoint-set forest used to track label equivalences
//	binimg/    — image.Image → boolean-matrix thresholding adapter
package ccl

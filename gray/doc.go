// Package gray generates reflected binary Gray codes used to label the
// rows and columns of a Karnaugh map.
//
// What:
//
//   - Code(k) returns the 2^k k-bit labels in reflected order.
//   - Consecutive labels, including the wrap from last to first, differ in
//     exactly one bit, so geometric adjacency equals logical adjacency.
//   - Hamming(a, b) counts differing bit positions of two labels.
//
// Complexity:
//
//   - Code:    O(k·2^k) time and memory.
//   - Hamming: O(k).
//
// Errors:
//
//   - ErrNegativeWidth: k < 0.
//   - ErrWidthTooLarge: k > MaxWidth.
//   - ErrLengthMismatch: labels of different widths passed to Hamming.
package gray

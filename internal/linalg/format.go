package linalg

import (
	"math"
	"strconv"
	"strings"
)

// Widths returns the printed width of each element at dp decimal places.
//
// When the vector holds a negative element, non-negative elements get one
// extra leading space so decimal points line up.
func (v *Vector) Widths(dp int) []int {
	pad := v.HasNegative()
	w := make([]int, len(v.data))
	for i, x := range v.data {
		w[i] = len(strconv.FormatFloat(x, 'f', dp, 64))
		if pad && !math.Signbit(x) {
			w[i]++
		}
	}
	return w
}

// Format renders v as a boxed column with dp decimal places.
func (v *Vector) Format(dp int) string {
	widths := v.Widths(dp)
	width := maxOf(widths)
	pad := v.HasNegative()

	var b strings.Builder
	b.WriteString("┌" + strings.Repeat(" ", width) + "┐\n")
	for i, x := range v.data {
		b.WriteString("│")
		if pad && !math.Signbit(x) {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(x, 'f', dp, 64))
		b.WriteString(strings.Repeat(" ", width-widths[i]))
		b.WriteString("│\n")
	}
	b.WriteString("└" + strings.Repeat(" ", width) + "┘\n")
	return b.String()
}

// String renders v with four decimal places.
func (v *Vector) String() string {
	return v.Format(4)
}

// Format renders m as a boxed grid with dp decimal places, each column
// padded to its widest element.
func (m *Matrix) Format(dp int) string {
	widths := make([][]int, m.col)
	colWidth := make([]int, m.col)
	pad := make([]bool, m.col)
	total := max(m.col-1, 0)
	for j, c := range m.cols {
		widths[j] = c.Widths(dp)
		colWidth[j] = maxOf(widths[j])
		pad[j] = c.HasNegative()
		total += colWidth[j]
	}

	var b strings.Builder
	b.WriteString("┌" + strings.Repeat(" ", total) + "┐\n")
	for i := 0; i < m.row; i++ {
		b.WriteString("│")
		for j, c := range m.cols {
			x := c.data[i]
			if pad[j] && !math.Signbit(x) {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(x, 'f', dp, 64))
			b.WriteString(strings.Repeat(" ", colWidth[j]-widths[j][i]))
			if j+1 != m.col {
				b.WriteByte(' ')
			}
		}
		b.WriteString("│\n")
	}
	b.WriteString("└" + strings.Repeat(" ", total) + "┘\n")
	return b.String()
}

// String renders m with four decimal places.
func (m *Matrix) String() string {
	return m.Format(4)
}

func maxOf(xs []int) int {
	n := 0
	for _, x := range xs {
		n = max(n, x)
	}
	return n
}

// Package hexdump renders binary data as fixed-width text lines pairing a
// hexadecimal offset, grouped hex octets, and an ASCII gutter.
package hexdump

import (
	"fmt"
	"io"
	"strings"
)

const (
	octetsPerLine  = 16
	octetsPerGroup = 2
)

// Dump renders data as hex-dump lines, 16 octets per line. Each line starts
// with a 7-digit zero-padded hexadecimal offset, followed by the octets in
// groups of two and an ASCII gutter where printable bytes appear literally
// and everything else as '.'. Positions past the end of data are padded with
// spaces in the hex columns; the gutter is never padded. Every line ends
// with a newline. Empty input yields no lines.
func Dump(data []byte) []string {
	end := len(data)
	lines := make([]string, 0, (end+octetsPerLine-1)/octetsPerLine)
	for p := 0; p < end; {
		lineStart := p
		var b strings.Builder
		fmt.Fprintf(&b, "%07x: ", p)
		for p < lineStart+octetsPerLine {
			for i := 0; i < octetsPerGroup; i++ {
				if p < end {
					fmt.Fprintf(&b, "%02x", data[p])
				} else {
					b.WriteString("  ")
				}
				p++
			}
			b.WriteByte(' ')
		}
		b.WriteByte(' ')
		for p = lineStart; p < end && p < lineStart+octetsPerLine; p++ {
			if c := data[p]; c >= 0x20 && c < 0x7f {
				b.WriteByte(c)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
		lines = append(lines, b.String())
	}
	return lines
}

// Write streams the dump of data to w, one line per Dump entry.
func Write(w io.Writer, data []byte) error {
	for _, line := range Dump(data) {
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

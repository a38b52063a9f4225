// internal/writers/delimited.go
package writers

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/snksoft/crc"
)

// Delimited writes rows with an explicit delimiter and "\n" line endings,
// checksumming the bytes it emits.
type Delimited struct {
	bw   *bufio.Writer
	cw   *csv.Writer
	sum  *crc.Hash
	rows int
}

func NewDelimited(w io.Writer, comma rune) *Delimited {
	sum := crc.NewHash(crc.CRC32)
	bw := bufio.NewWriterSize(io.MultiWriter(w, sum), 64<<10)
	cw := csv.NewWriter(bw)
	cw.Comma = comma
	return &Delimited{bw: bw, cw: cw, sum: sum}
}

// Comment writes one comment line; it must precede the first row.
func (d *Delimited) Comment(prefix, text string) error {
	if d.rows > 0 {
		return fmt.Errorf("comment after %d rows", d.rows)
	}
	text = strings.NewReplacer("\r", " ", "\n", " ").Replace(text)
	_, err := fmt.Fprintf(d.bw, "%s %s\n", prefix, text)
	return err
}

func (d *Delimited) Write(row []string) error {
	if err := d.cw.Write(row); err != nil {
		return err
	}
	d.rows++
	return nil
}

// Flush pushes buffered rows to the underlying writer.
func (d *Delimited) Flush() error {
	d.cw.Flush()
	if err := d.cw.Error(); err != nil {
		return err
	}
	return d.bw.Flush()
}

func (d *Delimited) Rows() int { return d.rows }

// CRC32 is the checksum of every byte flushed so far, as 8 hex digits.
func (d *Delimited) CRC32() string { return fmt.Sprintf("%08x", d.sum.CRC()) }

package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// optimalFlag renders the second token of the first output line.
func optimalFlag(optimal bool) int {
	if optimal {
		return 1
	}

	return 0
}

// WriteResult writes the two-line result:
//
//	"<value> <flag>\n" followed by the 0/1 entries joined by single spaces and "\n".
//
// flag is 1 when optimal is true. An empty selection yields an empty second line.
func WriteResult(w io.Writer, value int, taken []int, optimal bool) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", value, optimalFlag(optimal)); err != nil {
		return err
	}
	for i, x := range taken {
		if i > 0 {
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(strconv.Itoa(x)); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	return bw.Flush()
}

// SaveFile writes the result to path, replacing any existing file.
func SaveFile(path string, value int, taken []int, optimal bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("instance: create %s: %w", path, err)
	}
	if err = WriteResult(f, value, taken, optimal); err != nil {
		_ = f.Close()

		return fmt.Errorf("instance: write %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("instance: close %s: %w", path, err)
	}

	return nil
}

package artifact

import (
	"fmt"
	"path/filepath"
	"strconv"
)

// BaseName returns the file name of a recording's full-speed take.
func BaseName(number int64) string {
	return fmt.Sprintf("%d.wav", number)
}

// VariantName returns the file name of a slowed-down take. The speed is
// rendered without trailing zeros so 0.5 stays "0.5", not "0.50".
func VariantName(number int64, speed float64) string {
	return fmt.Sprintf("%d@%s.wav", number, strconv.FormatFloat(speed, 'g', -1, 64))
}

func (s *Store) BasePath(number int64) string {
	return filepath.Join(s.dir, BaseName(number))
}

func (s *Store) VariantPath(number int64, speed float64) string {
	return filepath.Join(s.dir, VariantName(number, speed))
}

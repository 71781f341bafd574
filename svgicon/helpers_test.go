package svgicon

import (
	"fmt"
	"strconv"
)

func sprintf(format string, args ...interface{}) string { return fmt.Sprintf(format, args...) }

func ftoa(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

package mediainfo

import "fmt"

func formatPixels(value uint64) string {
	if value == 0 {
		return ""
	}
	return fmt.Sprintf("%d pixels", value)
}

package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

const slotMinutes = 30

// ToMinutes converts a wall-clock "HH:MM" string to minutes since midnight.
// Stored values may carry a seconds or timezone suffix; only the leading
// HH:MM is read. A missing or malformed hour or minute counts as zero so
// that partially edited input never fails outright.
func ToMinutes(t string) int {
	parts := strings.Split(t, ":")
	var h, m int
	if len(parts) > 0 {
		h, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	}
	if len(parts) > 1 {
		m, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	return h*60 + m
}

func minutesLabel(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

package host

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-pingpong/dsp/tempo"
)

// TimeFormatter formats milliseconds, switching to seconds from 1000 ms.
func TimeFormatter(ms float64) string {
	if ms < 1000 {
		return fmt.Sprintf("%.1f ms", ms)
	}
	return fmt.Sprintf("%.2f s", ms/1000)
}

// TimeParser parses "250", "250 ms" or "1.5 s" into milliseconds.
func TimeParser(str string) (float64, error) {
	str = strings.TrimSpace(str)

	if strings.HasSuffix(str, "s") && !strings.HasSuffix(str, "ms") {
		v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(str, "s")), 64)
		if err != nil {
			return 0, err
		}
		return v * 1000, nil
	}

	str = strings.TrimSuffix(str, "ms")
	return strconv.ParseFloat(strings.TrimSpace(str), 64)
}

// PercentFormatter formats a 0..1 fraction as a percentage.
func PercentFormatter(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}

// PercentParser parses "45%" or "45" into the fraction 0.45.
func PercentParser(str string) (float64, error) {
	str = strings.TrimSuffix(strings.TrimSpace(str), "%")
	v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return 0, err
	}
	return v / 100, nil
}

// OnOffFormatter formats a switch value.
func OnOffFormatter(v float64) string {
	if v >= 0.5 {
		return "On"
	}
	return "Off"
}

// OnOffParser accepts on/off, true/false, yes/no and 1/0.
func OnOffParser(str string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "on", "true", "yes", "1":
		return 1, nil
	case "off", "false", "no", "0":
		return 0, nil
	}
	return 0, fmt.Errorf("host: not a switch value: %q", str)
}

// DivisionFormatter formats a division index as its note label.
func DivisionFormatter(v float64) string {
	return tempo.DivisionFromIndex(int(v + 0.5)).Label()
}

// DivisionParser parses a note label or name into its index.
func DivisionParser(str string) (float64, error) {
	d, err := tempo.ParseDivision(str)
	if err != nil {
		return 0, err
	}
	return float64(d), nil
}

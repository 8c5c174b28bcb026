package pyrodash

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Named spin configurations offered by the dashboard, all on a single
// unit cell (L=1).
const (
	PresetSpinIceZ       = "+z" // Spin Ice +z
	PresetSingleMonopole = "ms" // single monopole crystal
	PresetDoubleMonopole = "md" // double monopole crystal
)

var presetPatterns = map[string][SitesPerTetra]int{
	PresetSpinIceZ:       {1, -1, 1, -1},
	PresetSingleMonopole: {1, -1, -1, -1},
	PresetDoubleMonopole: {-1, -1, -1, -1},
}

// PresetSpinValues returns the 16-spin configuration of a named preset.
func PresetSpinValues(name string) ([]int, error) {
	pattern, ok := presetPatterns[name]
	if !ok {
		return nil, fmt.Errorf("unknown spin configuration %q; valid names are %q, %q, %q",
			name, PresetSpinIceZ, PresetSingleMonopole, PresetDoubleMonopole)
	}

	values := make([]int, 0, SitesPerCell)
	for t := 0; t < SitesPerCell/SitesPerTetra; t++ {
		values = append(values, pattern[:]...)
	}
	return values, nil
}

// LoadSpinValues parses a single-column text file of spin values, one
// integer per line, blank lines skipped. Value and shape validation
// happens later, at cell construction.
func LoadSpinValues(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open spin file: %w", err)
	}
	defer f.Close()

	var values []int
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: bad spin value %q", path, lineNo, line)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%s: no spin values found", path)
	}
	DebugLog("Loaded %d spin values from %s", len(values), path)
	return values, nil
}

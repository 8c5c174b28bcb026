package pyrodash

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// NeighborTable maps a down-tetrahedron local site index (0, 4, 8, 12)
// to the global site indices of the up-tetrahedron sites it borders.
// The dataset is produced externally, one file per lattice size.
type NeighborTable map[int][]int

// neighborsPerSite is the number of bordering sites in a table row.
const neighborsPerSite = 3

// ParseNeighborTable reads a whitespace-delimited table: each row is a
// down-site key followed by its three neighbor indices. Blank lines are
// skipped; anything else malformed is an error.
func ParseNeighborTable(r io.Reader) (NeighborTable, error) {
	table := make(NeighborTable)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 1+neighborsPerSite {
			return nil, fmt.Errorf("neighbor table line %d: expected %d columns, got %d", lineNo, 1+neighborsPerSite, len(fields))
		}

		key, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("neighbor table line %d: bad site index %q", lineNo, fields[0])
		}
		if _, dup := table[key]; dup {
			return nil, fmt.Errorf("neighbor table line %d: duplicate row for site %d", lineNo, key)
		}

		row := make([]int, neighborsPerSite)
		for i, f := range fields[1:] {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("neighbor table line %d: bad neighbor index %q", lineNo, f)
			}
			if n < 0 {
				return nil, fmt.Errorf("neighbor table line %d: negative neighbor index %d", lineNo, n)
			}
			row[i] = n
		}
		table[key] = row
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("neighbor table is empty")
	}
	return table, nil
}

// LoadNeighborTable reads the table from a file, failing fast on a
// missing or malformed file.
func LoadNeighborTable(path string) (NeighborTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open neighbor table: %w", err)
	}
	defer f.Close()

	table, err := ParseNeighborTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	DebugLog("Loaded neighbor table from %s: %d sites", path, len(table))
	return table, nil
}

// NeighborCatalog serves the per-lattice-size tables stored in one
// directory as L<size>.dat files, loading each file at most once.
// The tables are static data, so a loaded table is reused forever.
type NeighborCatalog struct {
	dir   string
	cache map[int]NeighborTable
}

func NewNeighborCatalog(dir string) *NeighborCatalog {
	return &NeighborCatalog{dir: dir, cache: make(map[int]NeighborTable)}
}

// Table returns the neighbor table for lattice size l.
func (c *NeighborCatalog) Table(l int) (NeighborTable, error) {
	if l < 1 {
		return nil, fmt.Errorf("lattice size must be >= 1, got %d", l)
	}
	if t, ok := c.cache[l]; ok {
		return t, nil
	}
	t, err := LoadNeighborTable(filepath.Join(c.dir, fmt.Sprintf("L%d.dat", l)))
	if err != nil {
		return nil, err
	}
	c.cache[l] = t
	return t, nil
}

package definition

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"range-remapper/internal/common"
)

var stageHeader = regexp.MustCompile(`^([A-Za-z0-9_]+)-to-([A-Za-z0-9_]+) map:$`)

const seedsPrefix = "seeds:"

// ParseAlmanac reads the almanac text format. Entry and terminal are the
// source of the first stage and the destination of the last one. Seed
// numbers are kept as points and also read as (start, length) pairs.
func ParseAlmanac(r io.Reader) (*Document, error) {
	doc := &Document{Version: "1"}

	var (
		current *Stage
		lineNo  int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++

		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if rest, ok := strings.CutPrefix(line, seedsPrefix); ok {
			nums, err := parseUints(strings.Fields(rest))
			if err != nil {
				return nil, fmt.Errorf("line %d: seeds: %w", lineNo, err)
			}

			doc.Seeds.Points = append(doc.Seeds.Points, nums...)

			continue
		}

		if m := stageHeader.FindStringSubmatch(line); m != nil {
			doc.Stages = append(doc.Stages, Stage{From: m[1], To: m[2]})
			current = &doc.Stages[len(doc.Stages)-1]

			continue
		}

		if current == nil {
			return nil, fmt.Errorf("line %d: expected seeds or a map header, got %q", lineNo, line)
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: %s: expected \"dest source length\", got %q", lineNo, current.Name(), line)
		}

		nums, err := parseUints(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", lineNo, current.Name(), err)
		}

		current.Ranges = append(current.Ranges, Triple{Dest: nums[0], Source: nums[1], Length: nums[2]})
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read almanac: %w", err)
	}

	if first, ok := common.First(doc.Stages); ok {
		doc.Entry = first.From
	}

	if last, ok := common.Last(doc.Stages); ok {
		doc.Terminal = last.To
	}

	doc.Seeds.Ranges = pairSeeds(doc.Seeds.Points)

	return doc, nil
}

// pairSeeds reads points as consecutive (start, length) pairs. A trailing
// unpaired number is ignored.
func pairSeeds(points []uint64) []SeedRange {
	var ranges []SeedRange
	for i := 0; i+1 < len(points); i += 2 {
		ranges = append(ranges, SeedRange{Start: points[i], Length: points[i+1]})
	}

	return ranges
}

func parseUints(fields []string) ([]uint64, error) {
	nums := make([]uint64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}

		nums = append(nums, n)
	}

	return nums, nil
}

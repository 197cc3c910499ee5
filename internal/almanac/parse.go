package almanac

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pborges/seedmap/internal/rangemap"
)

// ParseError reports a malformed line.
type ParseError struct {
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("almanac: line %d: %s: %v", e.Line, e.Msg, e.Err)
	}
	return fmt.Sprintf("almanac: line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseString parses an almanac held in memory.
func ParseString(input string) (*Almanac, error) {
	return Parse(strings.NewReader(input))
}

// Parse reads an almanac. Blank lines end a map block; rule lines outside a
// block are an error.
func Parse(r io.Reader) (*Almanac, error) {
	almanac := &Almanac{}
	var current *rangemap.Mapping
	seenSeeds := false

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			current = nil
		case strings.HasPrefix(line, "seeds:"):
			if seenSeeds {
				return nil, &ParseError{Line: lineNo, Msg: "duplicate seeds line"}
			}
			seenSeeds = true
			for _, field := range strings.Fields(strings.TrimPrefix(line, "seeds:")) {
				seed, err := strconv.ParseInt(field, 10, 64)
				if err != nil {
					return nil, &ParseError{Line: lineNo, Msg: "bad seed", Err: err}
				}
				almanac.Seeds = append(almanac.Seeds, seed)
			}
		case strings.HasSuffix(line, " map:"):
			name := strings.TrimSuffix(line, " map:")
			input, output, ok := strings.Cut(name, "-to-")
			if !ok || input == "" || output == "" {
				return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("bad map name %q", name)}
			}
			current = rangemap.NewMapping(name)
			almanac.Maps = append(almanac.Maps, AlmanacMap{
				Input:   input,
				Output:  output,
				Mapping: current,
			})
		default:
			if current == nil {
				return nil, &ParseError{Line: lineNo, Msg: fmt.Sprintf("unexpected line %q", line)}
			}
			rule, err := parseRule(line)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Msg: "bad rule", Err: err}
			}
			current.AddRule(rule.Source, rule.Destination, rule.Length)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("almanac: read: %w", err)
	}
	if !seenSeeds {
		return nil, ErrNoSeeds
	}
	return almanac, nil
}

func parseRule(line string) (rangemap.Rule, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return rangemap.Rule{}, fmt.Errorf("want 3 numbers, got %d", len(fields))
	}
	var nums [3]int64
	for i, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return rangemap.Rule{}, err
		}
		nums[i] = n
	}
	if nums[2] <= 0 {
		return rangemap.Rule{}, fmt.Errorf("length must be positive, got %d", nums[2])
	}
	return rangemap.Rule{
		Destination: nums[0],
		Source:      nums[1],
		Length:      nums[2],
	}, nil
}

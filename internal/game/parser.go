package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/vk/cubecount/internal/ctxlog"
	"golang.org/x/text/cases"
)

var (
	// headerRegex matches the text left of the first colon, e.g. `Game 11`.
	headerRegex = regexp.MustCompile(`^Game\s+(\S+)$`)
	// tokenRegex matches a single `<count> <color>` pair within a draw.
	tokenRegex = regexp.MustCompile(`^(\S+)\s+(\S+)$`)
)

// maxLineSize bounds a single input record.
const maxLineSize = 1 << 20

// ParseColor looks up a color by name, ignoring case.
func ParseColor(name string) (Color, bool) {
	switch cases.Fold().String(name) {
	case "red":
		return Red, true
	case "green":
		return Green, true
	case "blue":
		return Blue, true
	}
	return 0, false
}

// Parser turns record lines into Games. The zero value ignores unknown
// color names, which is how puzzle inputs have always been read.
type Parser struct {
	// StrictColors rejects draws that name a color other than red, green or blue.
	StrictColors bool
}

// ParseLine parses a single record using the default Parser.
func ParseLine(line string) (Game, error) {
	return Parser{}.parse(line, 0, nil)
}

// ParseLine parses a single record.
func (p Parser) ParseLine(line string) (Game, error) {
	return p.parse(line, 0, nil)
}

// ParseAll reads every record from r. Blank lines are skipped. The first
// malformed record aborts the whole read and no games are returned.
func (p Parser) ParseAll(ctx context.Context, r io.Reader) ([]Game, error) {
	logger := ctxlog.FromContext(ctx)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var games []Game
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		ignored := func(token string) {
			logger.Debug("Ignoring unknown cube color.", "line", lineNo, "token", token)
		}
		g, err := p.parse(line, lineNo, ignored)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read game records: %w", err)
	}

	logger.Debug("Game records parsed.", "lines", lineNo, "games", len(games))
	return games, nil
}

func (p Parser) parse(line string, lineNo int, onIgnored func(token string)) (Game, error) {
	header, body, found := strings.Cut(line, ":")
	if !found {
		return Game{}, &ParseError{Line: lineNo, Segment: SegmentLine, Text: line, Err: fmt.Errorf("%w: missing ':'", ErrMalformedLine)}
	}

	id, err := parseID(header)
	if err != nil {
		err.Line = lineNo
		return Game{}, err
	}

	segments := strings.Split(body, ";")
	sets := make([]CubeSet, 0, len(segments))
	for _, segment := range segments {
		set, err := p.parseSet(segment, onIgnored)
		if err != nil {
			err.Line = lineNo
			return Game{}, err
		}
		sets = append(sets, set)
	}

	return Game{ID: id, Sets: sets}, nil
}

func parseID(header string) (uint64, *ParseError) {
	header = strings.TrimSpace(header)
	matches := headerRegex.FindStringSubmatch(header)
	if matches == nil {
		return 0, &ParseError{Segment: SegmentID, Text: header, Err: fmt.Errorf("%w: expected \"Game <id>\"", ErrMalformedID)}
	}

	id, err := strconv.ParseUint(matches[1], 10, 64)
	if err != nil {
		return 0, &ParseError{Segment: SegmentID, Text: matches[1], Err: fmt.Errorf("%w: %w", ErrMalformedID, err)}
	}
	return id, nil
}

func (p Parser) parseSet(segment string, onIgnored func(token string)) (CubeSet, *ParseError) {
	var set CubeSet
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return set, nil
	}

	for _, token := range strings.Split(segment, ",") {
		token = strings.TrimSpace(token)
		matches := tokenRegex.FindStringSubmatch(token)
		if matches == nil {
			return CubeSet{}, &ParseError{Segment: SegmentCount, Text: token, Err: fmt.Errorf("%w: expected \"<count> <color>\"", ErrMalformedCount)}
		}

		count, err := strconv.ParseUint(matches[1], 10, 64)
		if err != nil {
			return CubeSet{}, &ParseError{Segment: SegmentCount, Text: matches[1], Err: fmt.Errorf("%w: %w", ErrMalformedCount, err)}
		}

		color, ok := ParseColor(matches[2])
		if !ok {
			if p.StrictColors {
				return CubeSet{}, &ParseError{Segment: SegmentColor, Text: matches[2], Err: ErrUnknownColor}
			}
			if onIgnored != nil {
				onIgnored(token)
			}
			continue
		}
		// A repeated color within one draw keeps the last count.
		set = set.With(color, count)
	}
	return set, nil
}

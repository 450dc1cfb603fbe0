package game

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/cubecount/internal/ctxlog"
)

const exampleInput = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func TestParseLine(t *testing.T) {
	testCases := []struct {
		name         string
		line         string
		expectedGame Game
	}{
		{
			name: "three draws",
			line: "Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green",
			expectedGame: Game{ID: 1, Sets: []CubeSet{
				{Red: 4, Blue: 3},
				{Red: 1, Green: 2, Blue: 6},
				{Green: 2},
			}},
		},
		{
			name:         "multi-digit id and counts",
			line:         "Game 100: 20 red, 13 green, 14 blue",
			expectedGame: Game{ID: 100, Sets: []CubeSet{{Red: 20, Green: 13, Blue: 14}}},
		},
		{
			name:         "color names ignore case",
			line:         "Game 7: 2 RED, 3 Green, 4 bLuE",
			expectedGame: Game{ID: 7, Sets: []CubeSet{{Red: 2, Green: 3, Blue: 4}}},
		},
		{
			name:         "unknown colors are ignored",
			line:         "Game 8: 2 red, 9 purple; 1 yellow",
			expectedGame: Game{ID: 8, Sets: []CubeSet{{Red: 2}, {}}},
		},
		{
			name:         "repeated color keeps last count",
			line:         "Game 9: 2 red, 5 red",
			expectedGame: Game{ID: 9, Sets: []CubeSet{{Red: 5}}},
		},
		{
			name:         "loose separators",
			line:         "Game  4 :3 blue,4 red;1 red",
			expectedGame: Game{ID: 4, Sets: []CubeSet{{Red: 4, Blue: 3}, {Red: 1}}},
		},
		{
			name:         "empty body is a single empty draw",
			line:         "Game 2: ",
			expectedGame: Game{ID: 2, Sets: []CubeSet{{}}},
		},
		{
			name:         "zero id",
			line:         "Game 0: 1 red",
			expectedGame: Game{ID: 0, Sets: []CubeSet{{Red: 1}}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := ParseLine(tc.line)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expectedGame, g); diff != "" {
				t.Errorf("ParseLine() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseLine_Errors(t *testing.T) {
	testCases := []struct {
		name            string
		line            string
		expectedSegment Segment
		expectedErr     error
	}{
		{
			name:            "missing id",
			line:            "Game : 3 blue",
			expectedSegment: SegmentID,
			expectedErr:     ErrMalformedID,
		},
		{
			name:            "non-numeric id",
			line:            "Game x1: 3 blue",
			expectedSegment: SegmentID,
			expectedErr:     ErrMalformedID,
		},
		{
			name:            "negative id",
			line:            "Game -1: 3 blue",
			expectedSegment: SegmentID,
			expectedErr:     ErrMalformedID,
		},
		{
			name:            "wrong keyword",
			line:            "Round 1: 3 blue",
			expectedSegment: SegmentID,
			expectedErr:     ErrMalformedID,
		},
		{
			name:            "missing colon",
			line:            "Game 1 3 blue",
			expectedSegment: SegmentLine,
			expectedErr:     ErrMalformedLine,
		},
		{
			name:            "non-numeric count",
			line:            "Game 1: three blue",
			expectedSegment: SegmentCount,
			expectedErr:     ErrMalformedCount,
		},
		{
			name:            "negative count",
			line:            "Game 1: -3 blue",
			expectedSegment: SegmentCount,
			expectedErr:     ErrMalformedCount,
		},
		{
			name:            "count without color",
			line:            "Game 1: 3 blue, 4",
			expectedSegment: SegmentCount,
			expectedErr:     ErrMalformedCount,
		},
		{
			name:            "empty token between commas",
			line:            "Game 1: 3 blue,, 4 red",
			expectedSegment: SegmentCount,
			expectedErr:     ErrMalformedCount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLine(tc.line)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.expectedErr)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tc.expectedSegment, parseErr.Segment)
			assert.Zero(t, parseErr.Line)
		})
	}
}

func TestParser_StrictColors(t *testing.T) {
	p := Parser{StrictColors: true}

	_, err := p.ParseLine("Game 1: 3 blue, 2 purple")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownColor)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, SegmentColor, parseErr.Segment)
	assert.Equal(t, "purple", parseErr.Text)

	g, err := p.ParseLine("Game 1: 3 Blue, 2 RED")
	require.NoError(t, err)
	assert.Equal(t, Game{ID: 1, Sets: []CubeSet{{Red: 2, Blue: 3}}}, g)
}

func TestParser_ParseAll(t *testing.T) {
	games, err := Parser{}.ParseAll(context.Background(), strings.NewReader(exampleInput))
	require.NoError(t, err)
	require.Len(t, games, 5)

	ids := make([]uint64, 0, len(games))
	for _, g := range games {
		ids = append(ids, g.ID)
	}
	assert.Equal(t, []uint64{1, 2, 3, 4, 5}, ids)
	assert.Equal(t, []CubeSet{{Red: 6, Green: 3, Blue: 1}, {Red: 1, Green: 2, Blue: 2}}, games[4].Sets)
}

func TestParser_ParseAll_SkipsBlankLinesAndCRLF(t *testing.T) {
	input := "\r\nGame 1: 1 red\r\n   \nGame 2: 2 green\r\n\n"

	games, err := Parser{}.ParseAll(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Game{
		{ID: 1, Sets: []CubeSet{{Red: 1}}},
		{ID: 2, Sets: []CubeSet{{Green: 2}}},
	}, games)
}

func TestParser_ParseAll_Empty(t *testing.T) {
	games, err := Parser{}.ParseAll(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestParser_ParseAll_FailsFast(t *testing.T) {
	input := "Game 1: 1 red\n\nGame : 3 blue\nGame 4: 1 red\n"

	games, err := Parser{}.ParseAll(context.Background(), strings.NewReader(input))
	require.Error(t, err)
	assert.Nil(t, games, "no partial results on failure")

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 3, parseErr.Line)
	assert.Equal(t, SegmentID, parseErr.Segment)
	assert.Contains(t, err.Error(), "line 3")
}

func TestParser_ParseAll_LogsIgnoredColors(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	_, err := Parser{}.ParseAll(ctx, strings.NewReader("Game 1: 1 red, 4 orange\n"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Ignoring unknown cube color.")
	assert.Contains(t, buf.String(), `token="4 orange"`)
}

func TestParseColor(t *testing.T) {
	testCases := []struct {
		name     string
		expected Color
		ok       bool
	}{
		{"red", Red, true},
		{"GREEN", Green, true},
		{"Blue", Blue, true},
		{"purple", 0, false},
		{"", 0, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, ok := ParseColor(tc.name)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, c)
			}
		})
	}
}

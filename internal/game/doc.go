/*
Package game provides the structured representation of a cube game record
and the parser for its line-oriented text format.

A record looks like:

	Game 11: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green

Each line yields one Game: an ID plus the ordered draws (CubeSet values)
revealed from the bag. The package centralizes both parsing and the
canonical formatting, so a parsed Game prints back into a line that parses
to the same value.
*/
package game

// Package bag decides whether recorded games could have been played with a
// given bag of cubes and aggregates the IDs of the games that could.
package bag

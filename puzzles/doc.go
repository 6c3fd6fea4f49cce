/*
Package puzzles groups the daily puzzle solvers.

Every day lives in its own package (day01, day02, ...) exposing Part1 and,
when solved, Part2. Each part takes the raw puzzle text and returns the
numeric answer. Inputs are trusted to follow the puzzle format; anything else
is reported as an error rather than recovered from.
*/
package puzzles

package main

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"
)

// parsePoints reads "x,y" tokens.
func parsePoints(tokens []string) ([]image.Point, error) {
	pts := make([]image.Point, 0, len(tokens))
	for _, tok := range tokens {
		xs, ys, ok := strings.Cut(tok, ",")
		if !ok {
			return nil, fmt.Errorf("invalid point %q: want x,y", tok)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", tok, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", tok, err)
		}
		pts = append(pts, image.Pt(x, y))
	}
	return pts, nil
}

// readPoints collects whitespace separated "x,y" tokens from r.
func readPoints(r io.Reader) ([]image.Point, error) {
	var tokens []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		tokens = append(tokens, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return parsePoints(tokens)
}

// pointsFrom uses args when given and stdin otherwise.
func pointsFrom(args []string, stdin io.Reader) ([]image.Point, error) {
	if len(args) > 0 {
		return parsePoints(args)
	}
	return readPoints(stdin)
}

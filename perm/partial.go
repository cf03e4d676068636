// SPDX-License-Identifier: MIT
// Package: archgraph/perm
//
// partial.go — partial-permutation reconstruction from chain/cycle fragments.
//
// Fragment grammar (1-based elements):
//   chain:  "a>b>c"    meaning a↦b, b↦c (c's image stays open)
//   cycle:  "(a,b,c)"  meaning a↦b, b↦c, c↦a
//
// Merge semantics:
//   - Assigning the same element two different images → ErrAmbiguousMapping,
//     reported with the conflicting element.
//   - Assigning the same image to two different elements → ErrNotInjective.
//   - Re-stating an existing assignment is a no-op.
//
// Completion: unmapped sources are matched with unused targets in ascending
// order, which is deterministic and keeps the result a bijection over the
// mentioned domain 1..max(element).

package perm

import (
	"fmt"
	"strconv"
	"strings"
)

// chainSep separates consecutive images inside a chain fragment.
const chainSep = ">"

// Partial accumulates a partial permutation over 1-based elements.
// The zero value is not usable; construct with NewPartial.
type Partial struct {
	image   map[int]int // element -> image
	preimg  map[int]int // image -> element (injectivity index)
	maxElem int
}

// NewPartial returns an empty partial permutation.
func NewPartial() *Partial {
	return &Partial{
		image:  make(map[int]int),
		preimg: make(map[int]int),
	}
}

// Len returns the number of assigned elements.
func (p *Partial) Len() int { return len(p.image) }

// Assign records from↦to, rejecting contradictions.
func (p *Partial) Assign(from, to int) error {
	if from < 1 || to < 1 {
		return fmt.Errorf("Assign: elements must be positive, got %d>%d: %w", from, to, ErrBadFragment)
	}
	if prev, ok := p.image[from]; ok {
		if prev != to {
			return fmt.Errorf("Assign: element %d maps to both %d and %d: %w",
				from, prev, to, ErrAmbiguousMapping)
		}
		return nil
	}
	if prev, ok := p.preimg[to]; ok && prev != from {
		return fmt.Errorf("Assign: image %d claimed by both %d and %d: %w",
			to, prev, from, ErrNotInjective)
	}
	p.image[from] = to
	p.preimg[to] = from
	if from > p.maxElem {
		p.maxElem = from
	}
	if to > p.maxElem {
		p.maxElem = to
	}
	return nil
}

// AddFragment parses one chain or cycle fragment and merges it in.
func (p *Partial) AddFragment(frag string) error {
	f := strings.TrimSpace(frag)
	if f == "" {
		return fmt.Errorf("AddFragment: empty fragment: %w", ErrBadFragment)
	}
	if f[0] == cycleOpen {
		return p.addCycle(f)
	}
	return p.addChain(f)
}

// addChain merges "a>b>c": every element maps to its successor.
func (p *Partial) addChain(f string) error {
	parts := strings.Split(f, chainSep)
	if len(parts) < 2 {
		return fmt.Errorf("addChain: chain %q needs at least two elements: %w", f, ErrBadFragment)
	}
	elems, err := parseFragmentElems(parts, f)
	if err != nil {
		return err
	}
	for i := 0; i+1 < len(elems); i++ {
		if err := p.Assign(elems[i], elems[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// addCycle merges "(a,b,c)": successor mapping with wrap-around.
func (p *Partial) addCycle(f string) error {
	if len(f) < 2 || f[len(f)-1] != cycleClose {
		return fmt.Errorf("addCycle: unterminated cycle %q: %w", f, ErrBadFragment)
	}
	parts := strings.Split(f[1:len(f)-1], string(cycleSep))
	if len(parts) < 2 {
		return fmt.Errorf("addCycle: cycle %q shorter than 2: %w", f, ErrBadFragment)
	}
	elems, err := parseFragmentElems(parts, f)
	if err != nil {
		return err
	}
	for i, e := range elems {
		if err := p.Assign(e, elems[(i+1)%len(elems)]); err != nil {
			return err
		}
	}
	return nil
}

// parseFragmentElems converts fragment tokens to positive integers.
func parseFragmentElems(parts []string, frag string) ([]int, error) {
	elems := make([]int, 0, len(parts))
	for _, raw := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("parseFragmentElems: token %q in %q: %w", raw, frag, ErrBadFragment)
		}
		elems = append(elems, n)
	}
	return elems, nil
}

// Complete extends the partial mapping to a total permutation of
// 1..max(element) and returns its 0-based Image. Unmapped sources take the
// smallest unused targets in ascending order (deterministic completion).
func (p *Partial) Complete() (Image, error) {
	if p.maxElem == 0 {
		return nil, fmt.Errorf("Complete: no assignments: %w", ErrBadFragment)
	}
	img := make(Image, p.maxElem)
	for i := range img {
		img[i] = -1
	}
	used := make([]bool, p.maxElem)
	for from, to := range p.image {
		img[from-1] = to - 1
		used[to-1] = true
	}
	// Match free sources with free targets, both in ascending order.
	next := 0
	for i := range img {
		if img[i] >= 0 {
			continue
		}
		for used[next] {
			next++
		}
		img[i] = next
		used[next] = true
	}
	if err := Validate(img); err != nil {
		return nil, fmt.Errorf("Complete: %w", err)
	}
	return img, nil
}

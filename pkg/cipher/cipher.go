// Package cipher implements EDPC-9, a reversible energy-keyed
// polyalphabetic transform, plus an authenticated secure mode.
//
// EDPC-9 is not cryptographically secure. It is an energy-guided rotation
// for creative and symbolic use; secure mode (AES-256-GCM with a
// PBKDF2-derived key) is the one to reach for when confidentiality
// actually matters.
package cipher

import (
	"errors"
	"fmt"
	"sort"
	"unicode"

	"github.com/ninefold/novena/pkg/energy"
	"github.com/ninefold/novena/pkg/principle"
)

// ErrEmptyKey is returned when the key or passphrase is empty.
var ErrEmptyKey = errors.New("key must be non-empty")

// keystream maps the key's rune energies onto 1..9, repeating to length.
func keystream(key string, p *principle.Principle, length int) ([]int, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	var base []int
	for _, r := range key {
		e := energy.CharEnergy(r, p)
		if e == 0 {
			e = 1
		}
		base = append(base, e)
	}
	out := make([]int, length)
	for i := range out {
		out[i] = base[i%len(base)]
	}
	return out, nil
}

func rotateLetter(r rune, k int) rune {
	var base rune
	switch {
	case r >= 'A' && r <= 'Z':
		base = 'A'
	case r >= 'a' && r <= 'z':
		base = 'a'
	default:
		return r
	}
	off := (int(r-base) + k) % 26
	if off < 0 {
		off += 26
	}
	return base + rune(off)
}

func rotateDigit(r rune, k int) rune {
	if r < '0' || r > '9' {
		return r
	}
	off := (int(r-'0') + k) % 10
	if off < 0 {
		off += 10
	}
	return '0' + rune(off)
}

// rotateSymbol rotates within the sorted explicit symbol table; unknown
// runes pass through unchanged.
func rotateSymbol(r rune, k int, table []rune) rune {
	idx := -1
	for i, s := range table {
		if s == r {
			idx = i
			break
		}
	}
	if idx < 0 {
		return r
	}
	off := (idx + k) % len(table)
	if off < 0 {
		off += len(table)
	}
	return table[off]
}

func symbolTable(p *principle.Principle) []rune {
	table := p.Symbols()
	sort.Slice(table, func(i, j int) bool { return table[i] < table[j] })
	return table
}

func transform(text, key string, p *principle.Principle, sign int) (string, error) {
	runes := []rune(text)
	ks, err := keystream(key, p, len(runes))
	if err != nil {
		return "", err
	}
	table := symbolTable(p)
	out := make([]rune, len(runes))
	for i, r := range runes {
		k := sign * ks[i]
		switch {
		case unicode.IsLetter(r):
			out[i] = rotateLetter(r, k)
		case r >= '0' && r <= '9':
			out[i] = rotateDigit(r, k)
		case unicode.IsSpace(r):
			out[i] = r
		default:
			out[i] = rotateSymbol(r, k, table)
		}
	}
	return string(out), nil
}

// Encrypt applies the EDPC-9 forward transform.
func Encrypt(text, key string, p *principle.Principle) (string, error) {
	out, err := transform(text, key, p, 1)
	if err != nil {
		return "", fmt.Errorf("cipher: %w", err)
	}
	return out, nil
}

// Decrypt reverses Encrypt under the same key and principle.
func Decrypt(text, key string, p *principle.Principle) (string, error) {
	out, err := transform(text, key, p, -1)
	if err != nil {
		return "", fmt.Errorf("cipher: %w", err)
	}
	return out, nil
}

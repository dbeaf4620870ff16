// Package annot implements the textual annotation grammar shared by the
// struct-tag and definition-file input surfaces.
package annot

import (
	"errors"
	"strings"
)

// Pair is one key=value entry in grammar order.
type Pair struct {
	Key   string
	Value string
}

// Grammar failures. Callers map these onto their own error taxonomy.
var (
	ErrBareKey  = errors.New("bare key without a value")
	ErrEmptyKey = errors.New("empty key")
)

// ParsePairs parses the pair form "k=v,k2=v2" into ordered pairs.
// Whitespace around each pair and around keys/values is trimmed; an empty
// input yields zero pairs. Values cannot contain commas in this grammar;
// annotations needing one use the builder path, which carries values
// verbatim.
func ParsePairs(s string) ([]Pair, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	segs := strings.Split(s, ",")
	pairs := make([]Pair, 0, len(segs))
	for _, seg := range segs {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			return nil, ErrBareKey
		}
		i := strings.IndexByte(seg, '=')
		if i < 0 {
			return nil, ErrBareKey
		}
		k := strings.TrimSpace(seg[:i])
		if k == "" {
			return nil, ErrEmptyKey
		}
		pairs = append(pairs, Pair{Key: k, Value: strings.TrimSpace(seg[i+1:])})
	}
	return pairs, nil
}

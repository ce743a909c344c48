// This file is part of Emu6502.
//
// Emu6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Emu6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Emu6502.  If not, see <https://www.gnu.org/licenses/>.

package commandline

import (
	"slices"
	"strings"

	"github.com/emu6502/emu6502/curated"
)

// Sentinel errors returned by Keywords.Resolve().
const (
	UnknownKeyword   = "unrecognised command (%s)"
	AmbiguousKeyword = "ambiguous command (%s could be %s)"
)

// Keywords is the list of words that can begin a command. Keywords are stored
// in upper case.
type Keywords []string

// NewKeywords returns a sorted list of upper case keywords.
func NewKeywords(words ...string) Keywords {
	kw := make(Keywords, 0, len(words))
	for _, w := range words {
		kw = append(kw, strings.ToUpper(w))
	}
	slices.Sort(kw)
	return kw
}

// Matches returns every keyword that begins with the prefix. The comparison
// is case insensitive.
func (kw Keywords) Matches(prefix string) []string {
	prefix = strings.ToUpper(prefix)
	var m []string
	for _, w := range kw {
		if strings.HasPrefix(w, prefix) {
			m = append(m, w)
		}
	}
	return m
}

// Resolve returns the keyword indicated by the word.
func (kw Keywords) Resolve(word string) (string, error) {
	u := strings.ToUpper(word)
	if slices.Contains(kw, u) {
		return u, nil
	}

	m := kw.Matches(u)
	switch len(m) {
	case 0:
		return "", curated.Errorf(UnknownKeyword, word)
	case 1:
		return m[0], nil
	}
	return "", curated.Errorf(AmbiguousKeyword, word, strings.Join(m, "/"))
}

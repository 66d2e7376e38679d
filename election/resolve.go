// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/AronAlberts/HR-elections/models"
)

// Resolve finds the key of dir that query refers to. An exact match wins;
// otherwise keys are compared after trimming spaces and NFC normalisation,
// which is what a terminal may hand us for names such as "Reykjavík".
func Resolve[V any](dir models.Directory[V], query string) (string, bool) {
	if dir.Has(query) {
		return query, true
	}

	want := canonical(query)
	if want == "" {
		return "", false
	}
	for _, key := range dir.Keys() {
		if canonical(key) == want {
			return key, true
		}
	}
	return "", false
}

func canonical(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"testing"

	"github.com/AronAlberts/HR-elections/models"
)

func TestResolve(t *testing.T) {
	var dir models.ConstituencyDirectory
	dir.Set("Reykjav\u00edk suður", 45000) // precomposed í
	dir.Set("Riverside", 400)

	tests := []struct {
		name   string
		query  string
		want   string
		wantOK bool
	}{
		{"exact", "Riverside", "Riverside", true},
		{"surrounding spaces", "  Riverside ", "Riverside", true},
		{"decomposed accent", "Reykjavi\u0301k suður", "Reykjav\u00edk suður", true},
		{"different case", "riverside", "", false},
		{"unknown", "Atlantis", "", false},
		{"empty", "", "", false},
		{"blank", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(dir, tt.query)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Resolve(%q) = %q, %v; want %q, %v", tt.query, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

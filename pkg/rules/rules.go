// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rules recognizes and removes redundant in-memory cache
// statement blocks from provider source files. Matching is purely
// textual: each rule anchors at line starts and removes whole lines,
// nothing is parsed.
package rules

import (
	"regexp"
	"strings"
)

// 🏷️ Marker call names used for the approximate removed-block count
const (
	ReadMarker  = "getCached"
	WriteMarker = "setCache"
)

// 🔄 Rule is one pattern-to-replacement mapping. Rules are immutable
// and applied in the order DefaultRules returns them.
type Rule struct {
	Name    string         // Short identifier for logging
	Pattern *regexp.Regexp // Multiline pattern, anchored at line starts
	Replace string         // Replacement text, usually empty (deletion)
}

// 🎯 DefaultRules returns the cache-block rules in application order.
// Order matters: the orphaned-key rule only fires once the guarded
// reads that consumed the key have already been removed.
func DefaultRules() []Rule {
	return []Rule{
		{
			// const cached = getCached(cacheKey);
			// if (cached) return cached;
			Name:    "guarded-read-inline",
			Pattern: regexp.MustCompile(`(?m)^\s*const cached = getCached\([^)]+\);\s*\n\s*if \(cached\) return cached;\s*\n`),
		},
		{
			// const cached = getCached(cacheKey);
			// if (cached) {
			//   return cached;
			// }
			Name:    "guarded-read-block",
			Pattern: regexp.MustCompile(`(?m)^\s*const cached = getCached\([^)]+\);\s*\n\s*if \(cached\) \{\s*\n\s*return cached;\s*\n\s*\}\s*\n`),
		},
		{
			// setCache(cacheKey, result);
			Name:    "cache-write",
			Pattern: regexp.MustCompile(`(?m)^\s*setCache\([^;]+\);\s*\n`),
		},
		{
			// setCache(cacheKey, result, 3600);
			// cache-write already matches through the ttl argument, so by
			// the time this rule runs no ttl call survives. Kept in place
			// so the ttl shape stays recognized in its own right.
			Name:    "cache-write-ttl",
			Pattern: regexp.MustCompile(`(?m)^\s*setCache\([^;]+,\s*\d+\);\s*\n`),
		},
		{
			// const cacheKey = `...`;
			// Removed only when the next line starts a log call or a try
			// block. RE2 has no lookahead, so the following prefix is
			// captured and written back via $1.
			Name:    "orphaned-key",
			Pattern: regexp.MustCompile(`(?m)^\s*const cacheKey = [^;]+;\s*\n(\s*(?:log\.|try))`),
			Replace: "$1",
		},
	}
}

// 🔢 CountMarkers counts raw occurrences of the two marker call names.
// The count is approximate: a marker inside a comment or string still
// counts, so it can diverge from actual rule applications.
func CountMarkers(text string) int {
	return strings.Count(text, ReadMarker) + strings.Count(text, WriteMarker)
}

// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

// Package query provides helpers for parsing multi-valued URL parameters.
//
// The catalog frontends send multi-valued facets as a single
// semicolon-separated parameter (type=teckning;skiss), so the splitters here
// are the canonical way to read them.
package query

import (
	"strings"
)

// Values splits a semicolon-separated parameter into trimmed values.
// Empty segments are dropped.
func Values(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ";") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

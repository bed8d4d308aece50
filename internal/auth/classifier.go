// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package auth

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/samber/oops"
)

// ClassificationTable resolves a 4-letter classification code to its
// descriptor text.
type ClassificationTable interface {
	// FindByCode returns the descriptor for a code, or ErrNotFound.
	FindByCode(ctx context.Context, code string) (string, error)
}

// TraitInput carries the four classification components. A nil field means
// the component was absent from the request; absence is checked per field,
// never by inspecting the concatenated code.
type TraitInput struct {
	Energy      *string
	Insight     *string
	Judgement   *string
	LifePattern *string
}

// Classifier composes the 4-character personality code and resolves it
// against the classification table.
type Classifier struct {
	table ClassificationTable
}

// NewClassifier creates a Classifier backed by the given table.
func NewClassifier(table ClassificationTable) *Classifier {
	return &Classifier{table: table}
}

// Resolve concatenates the components in fixed order (energy, insight,
// judgement, life pattern) and returns the stored descriptor for the
// resulting code. The descriptor, not the code, is what ends up on the
// account.
func (c *Classifier) Resolve(ctx context.Context, in TraitInput) (string, error) {
	components := []*string{in.Energy, in.Insight, in.Judgement, in.LifePattern}

	var b strings.Builder
	for _, component := range components {
		if component == nil {
			return "", oops.Code(CodeClassifyIncomplete).
				Errorf("all four classification components are required")
		}
		b.WriteString(*component)
	}

	code := b.String()
	if utf8.RuneCountInString(code) != 4 {
		return "", oops.Code(CodeClassifyIncomplete).
			With("code", code).
			Errorf("classification code must be exactly 4 characters")
	}

	detail, err := c.table.FindByCode(ctx, code)
	if errors.Is(err, ErrNotFound) {
		return "", oops.Code(CodeClassifyUnknown).
			With("code", code).
			Errorf("unknown classification code %q", code)
	}
	if err != nil {
		return "", oops.Code("CLASSIFY_LOOKUP_FAILED").
			With("code", code).
			Wrap(err)
	}
	if detail == "" {
		return "", oops.Code(CodeClassifyUnknown).
			With("code", code).
			Errorf("classification %q has no descriptor", code)
	}
	return detail, nil
}

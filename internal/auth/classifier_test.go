// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Seesaw Contributors

package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seesaw/seesaw/internal/auth"
	"github.com/seesaw/seesaw/internal/auth/mocks"
	"github.com/seesaw/seesaw/pkg/errutil"
)

func strptr(s string) *string { return &s }

func TestClassifier_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves a known code to its descriptor", func(t *testing.T) {
		table := mocks.NewMockClassificationTable(t)
		table.On("FindByCode", ctx, "ISTJ").Return("the logistician", nil)

		c := auth.NewClassifier(table)
		detail, err := c.Resolve(ctx, auth.TraitInput{
			Energy:      strptr("I"),
			Insight:     strptr("S"),
			Judgement:   strptr("T"),
			LifePattern: strptr("J"),
		})
		require.NoError(t, err)
		require.Equal(t, "the logistician", detail)
	})

	t.Run("any missing component is incomplete", func(t *testing.T) {
		inputs := []auth.TraitInput{
			{Insight: strptr("S"), Judgement: strptr("T"), LifePattern: strptr("J")},
			{Energy: strptr("I"), Judgement: strptr("T"), LifePattern: strptr("J")},
			{Energy: strptr("I"), Insight: strptr("S"), LifePattern: strptr("J")},
			{Energy: strptr("I"), Insight: strptr("S"), Judgement: strptr("T")},
			{},
		}
		for _, in := range inputs {
			c := auth.NewClassifier(mocks.NewMockClassificationTable(t))
			_, err := c.Resolve(ctx, in)
			errutil.AssertErrorCode(t, err, "CLASSIFY_INCOMPLETE")
		}
	})

	t.Run("empty component makes the code too short", func(t *testing.T) {
		c := auth.NewClassifier(mocks.NewMockClassificationTable(t))
		_, err := c.Resolve(ctx, auth.TraitInput{
			Energy:      strptr(""),
			Insight:     strptr("S"),
			Judgement:   strptr("T"),
			LifePattern: strptr("J"),
		})
		errutil.AssertErrorCode(t, err, "CLASSIFY_INCOMPLETE")
	})

	t.Run("multi-character component makes the code too long", func(t *testing.T) {
		c := auth.NewClassifier(mocks.NewMockClassificationTable(t))
		_, err := c.Resolve(ctx, auth.TraitInput{
			Energy:      strptr("IS"),
			Insight:     strptr("S"),
			Judgement:   strptr("T"),
			LifePattern: strptr("J"),
		})
		errutil.AssertErrorCode(t, err, "CLASSIFY_INCOMPLETE")
	})

	t.Run("code absent from the table", func(t *testing.T) {
		table := mocks.NewMockClassificationTable(t)
		table.On("FindByCode", ctx, "XXXX").Return("", auth.ErrNotFound)

		c := auth.NewClassifier(table)
		_, err := c.Resolve(ctx, auth.TraitInput{
			Energy:      strptr("X"),
			Insight:     strptr("X"),
			Judgement:   strptr("X"),
			LifePattern: strptr("X"),
		})
		errutil.AssertErrorCode(t, err, "CLASSIFY_UNKNOWN")
	})

	t.Run("empty descriptor is treated as unknown", func(t *testing.T) {
		table := mocks.NewMockClassificationTable(t)
		table.On("FindByCode", ctx, "ENFP").Return("", nil)

		c := auth.NewClassifier(table)
		_, err := c.Resolve(ctx, auth.TraitInput{
			Energy:      strptr("E"),
			Insight:     strptr("N"),
			Judgement:   strptr("F"),
			LifePattern: strptr("P"),
		})
		errutil.AssertErrorCode(t, err, "CLASSIFY_UNKNOWN")
	})

	t.Run("table failure is not unknown", func(t *testing.T) {
		table := mocks.NewMockClassificationTable(t)
		table.On("FindByCode", ctx, "ENFP").Return("", errors.New("connection reset"))

		c := auth.NewClassifier(table)
		_, err := c.Resolve(ctx, auth.TraitInput{
			Energy:      strptr("E"),
			Insight:     strptr("N"),
			Judgement:   strptr("F"),
			LifePattern: strptr("P"),
		})
		errutil.AssertErrorCode(t, err, "CLASSIFY_LOOKUP_FAILED")
	})
}

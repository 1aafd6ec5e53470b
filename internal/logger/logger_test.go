// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_ReturnsNonNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	// must not panic and must not write anywhere
	l.Info().Str("key", "value").Msg("discarded")
}

func TestGetChildLogger_IndependentOfParent(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_RoundTrip(t *testing.T) {
	l := Nop()
	ctx := l.WithContext(context.Background())

	got := FromContext(ctx)

	require.NotNil(t, got)
}

func TestFromContext_NoLoggerAttached_ReturnsNonNil(t *testing.T) {
	got := FromContext(context.Background())
	require.NotNil(t, got)
}

func TestFromRequest_ReturnsNonNil(t *testing.T) {
	l := Nop()
	req := httptest.NewRequest("GET", "/items", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	got := FromRequest(req)

	require.NotNil(t, got)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/nftokend/fault"
	"github.com/bitmark-inc/nftokend/rpc/ratelimit"
)

func TestNewDefaults(t *testing.T) {
	l := ratelimit.New(ratelimit.Configuration{})
	assert.Equal(t, rate.Limit(200), l.Limit(), "default rate")
	assert.Equal(t, 100, l.Burst(), "default burst")

	l = ratelimit.New(ratelimit.Configuration{RequestsPerSecond: 5, Burst: 7})
	assert.Equal(t, rate.Limit(5), l.Limit(), "rate")
	assert.Equal(t, 7, l.Burst(), "burst")
}

func TestLimitN(t *testing.T) {
	l := rate.NewLimiter(1000, 10)

	assert.Nil(t, ratelimit.Limit(l), "single")
	assert.Nil(t, ratelimit.LimitN(l, 5, 10), "in range")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(l, 0, 10), "zero count")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(l, 11, 10), "count above maximum")
}

func TestLimitBeyondBurst(t *testing.T) {
	l := rate.NewLimiter(1000, 2)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.LimitN(l, 3, 5), "more than burst")
}

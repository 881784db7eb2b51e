// Copyright 2022-2026 The lessvm-go Authors
// This file is part of the lessvm-go library.
//
// The lessvm-go library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The lessvm-go library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the lessvm-go library. If not, see <http://www.gnu.org/licenses/>.

package datastore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeriesKeepsNonDecreasingTimestampOrder(t *testing.T) {
	s := NewSeries()
	s.AddBar(Bar{Timestamp: 30, Close: 3})
	s.AddBar(Bar{Timestamp: 10, Close: 1})
	s.AddBar(Bar{Timestamp: 20, Close: 2})

	require.Equal(t, 3, s.Len())
	var last uint64
	for i := 0; i < s.Len(); i++ {
		bar, ok := s.GetBar(i)
		require.True(t, ok)
		require.GreaterOrEqual(t, bar.Timestamp, last)
		last = bar.Timestamp
	}
	t.Logf("✓ bars are kept sorted by timestamp regardless of insertion order")
}

func TestSeriesStableOrderForEqualTimestamps(t *testing.T) {
	s := NewSeries()
	s.AddBar(Bar{Timestamp: 10, Close: 1})
	s.AddBar(Bar{Timestamp: 10, Close: 2})

	first, _ := s.GetBar(0)
	second, _ := s.GetBar(1)
	require.Equal(t, uint64(1), first.Close, "equal timestamps keep insertion order")
	require.Equal(t, uint64(2), second.Close)
}

func TestSeriesSMALengthAndMean(t *testing.T) {
	s := NewSeries()
	closes := []uint64{2, 4, 6, 8, 10}
	for i, c := range closes {
		s.AddBar(Bar{Timestamp: uint64(i), Close: c})
	}

	points := s.SMA(3)
	require.Len(t, points, len(closes)-3+1)
	require.Equal(t, uint64(4), points[0].Mean, "mean of 2,4,6 is 4")
	require.Equal(t, uint64(6), points[1].Mean, "mean of 4,6,8 is 6")
	require.Equal(t, uint64(8), points[2].Mean, "mean of 6,8,10 is 8")

	require.Nil(t, s.SMA(0))
	require.Nil(t, s.SMA(len(closes)+1), "a period longer than the series yields no points")
}

func TestSeriesGetBarOutOfRange(t *testing.T) {
	s := NewSeries()
	_, ok := s.GetBar(0)
	require.False(t, ok)
}

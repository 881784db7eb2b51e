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

import "sort"

// Bar is one OHLCV record (spec §3).
type Bar struct {
	Timestamp uint64
	Open      uint64
	High      uint64
	Low       uint64
	Close     uint64
	Volume    uint64
}

// SMAPoint is one simple-moving-average output sample.
type SMAPoint struct {
	Timestamp uint64
	Mean      uint64
}

// Series is a time-ordered OHLCV sequence kept sorted by timestamp via
// binary-search insert (spec §3, §4.5). Inserts are stable: a bar added
// with a timestamp equal to existing bars is placed after them, so
// bars sharing a timestamp appear in insertion order among themselves.
type Series struct {
	bars []Bar
}

// NewSeries builds an empty series.
func NewSeries() *Series { return &Series{} }

// AddBar inserts bar at the position found by binary search over
// timestamp.
func (s *Series) AddBar(bar Bar) {
	pos := sort.Search(len(s.bars), func(i int) bool {
		return s.bars[i].Timestamp > bar.Timestamp
	})
	s.bars = append(s.bars, Bar{})
	copy(s.bars[pos+1:], s.bars[pos:])
	s.bars[pos] = bar
}

// GetBar returns the bar at index i and whether i was in range.
func (s *Series) GetBar(i int) (Bar, bool) {
	if i < 0 || i >= len(s.bars) {
		return Bar{}, false
	}
	return s.bars[i], true
}

// Len returns the number of bars.
func (s *Series) Len() int { return len(s.bars) }

// Clear empties the series.
func (s *Series) Clear() { s.bars = nil }

// SMA computes the simple moving average of the close field over the
// given period. Returns nil if period is 0 or exceeds the series
// length; otherwise one point per index i >= period-1, each the
// integer-truncated mean of close[i-period+1 ..= i].
func (s *Series) SMA(period int) []SMAPoint {
	if period <= 0 || period > len(s.bars) {
		return nil
	}
	points := make([]SMAPoint, 0, len(s.bars)-period+1)
	var sum uint64
	for i := 0; i < period; i++ {
		sum += s.bars[i].Close
	}
	points = append(points, SMAPoint{Timestamp: s.bars[period-1].Timestamp, Mean: sum / uint64(period)})
	for i := period; i < len(s.bars); i++ {
		sum += s.bars[i].Close
		sum -= s.bars[i-period].Close
		points = append(points, SMAPoint{Timestamp: s.bars[i].Timestamp, Mean: sum / uint64(period)})
	}
	return points
}

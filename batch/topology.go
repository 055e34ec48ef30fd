// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package batch

import "github.com/gogpu/gputypes"

// Topology describes how the vertices of a list form primitives.
type Topology uint8

const (
	// TriangleFan fills a convex polygon from its vertex ring.
	TriangleFan Topology = iota
	// LineLoop connects vertices in sequence and closes back to the first.
	LineLoop
	// Lines draws independent segments from vertex pairs.
	Lines
	// Points draws every vertex as a point.
	Points
)

var topologyNames = [...]string{
	TriangleFan: "TriangleFan",
	LineLoop:    "LineLoop",
	Lines:       "Lines",
	Points:      "Points",
}

// String returns the topology name.
func (t Topology) String() string {
	if int(t) < len(topologyNames) {
		return topologyNames[t]
	}
	return "Unknown"
}

// GPU returns the gputypes topology a list of this kind lowers to.
func (t Topology) GPU() gputypes.PrimitiveTopology {
	switch t {
	case TriangleFan:
		return gputypes.PrimitiveTopologyTriangleList
	case LineLoop:
		return gputypes.PrimitiveTopologyLineStrip
	case Lines:
		return gputypes.PrimitiveTopologyLineList
	default:
		return gputypes.PrimitiveTopologyPointList
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package batch

import "github.com/gogpu/gputypes"

// vertexStride is the byte size of one float32x2 vertex.
const vertexStride = 8

// Mesh is a vertex list lowered to a topology WebGPU can draw directly.
type Mesh struct {
	Topology gputypes.PrimitiveTopology
	Vertices []float32
}

// Count returns the number of vertices in the mesh.
func (m Mesh) Count() int { return len(m.Vertices) / 2 }

// Primitive returns the pipeline primitive state for the mesh.
func (m Mesh) Primitive() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: m.Topology,
		CullMode: gputypes.CullModeNone,
	}
}

// VertexLayout describes the vertex buffer every Mesh uses: one float32x2
// position per vertex at shader location 0.
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: vertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
		},
	}
}

// Mesh lowers the list. Triangle fans become triangle lists of 3(n-2)
// vertices and line loops become strips with the first vertex repeated at
// the end. Lines and points are copied unchanged.
func (v *VertexList) Mesh() Mesh {
	m := Mesh{Topology: v.topology.GPU()}
	n := v.Count()

	switch v.topology {
	case TriangleFan:
		if n < 3 {
			return m
		}
		m.Vertices = make([]float32, 0, 6*(n-2))
		x0, y0 := v.coords[0], v.coords[1]
		for i := 1; i < n-1; i++ {
			m.Vertices = append(m.Vertices,
				x0, y0,
				v.coords[2*i], v.coords[2*i+1],
				v.coords[2*i+2], v.coords[2*i+3],
			)
		}
	case LineLoop:
		if n == 0 {
			return m
		}
		m.Vertices = make([]float32, 0, 2*(n+1))
		m.Vertices = append(m.Vertices, v.coords...)
		m.Vertices = append(m.Vertices, v.coords[0], v.coords[1])
	default:
		m.Vertices = append([]float32(nil), v.coords...)
	}
	return m
}

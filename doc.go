// seehuhn.de/go/pixel - rasterization and planar geometry
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package pixel holds the types shared by the rasterizers in this module.
//
// Algorithms never paint. A rasterizer returns an [iter.Seq] of [Plot]
// events, one per pixel it would set, and a consumer decides what to do with
// them: a [Canvas] composites them into an image, a [Log] records them for
// tabular output, and tests inspect them directly. Ranging over the same
// sequence twice runs the algorithm twice from scratch.
//
// The subpackages line, conic and curve produce plot sequences; planar and
// hull implement the 2D geometry predicates and convex hulls; polygon keeps
// the state of an interactive polygon session; scene is a small 3D wireframe
// pipeline.
package pixel

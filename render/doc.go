// SPDX-License-Identifier: MIT

// Package render draws a graph with a highlighted vertex cover.
//
// DOT produces deterministic Graphviz source: cover vertices are filled
// tomato, the rest skyblue, edges in canonical order. Render and RenderFile
// lay the source out through go-graphviz into png, svg or jpg.
package render

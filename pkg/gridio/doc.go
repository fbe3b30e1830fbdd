// Package gridio reads and writes layouts as JSON.
//
// # JSON Format
//
// The simplest file is a bare array of items:
//
//	[
//	  {"id": "header", "x": 0, "y": 0, "w": 12, "h": 1, "static": true},
//	  {"id": "chart",  "x": 0, "y": 1, "w": 6,  "h": 4}
//	]
//
// A document additionally carries per-breakpoint layouts:
//
//	{
//	  "layout": [ ... ],
//	  "responsive": {
//	    "lg": [ ... ],
//	    "sm": [ ... ]
//	  }
//	}
//
// # Item Fields
//
// Required: id, w, h. Optional: x, y (default 0), static (default false).
// The transient "moved" flag is accepted on input and never written.
//
// # Validation
//
// Every layout read is checked with [grid.Validate]: item IDs must be
// non-empty and unique within a layout, and sizes must be positive.
// Positions are not checked. Errors carry INVALID_FORMAT for malformed JSON
// and the validator's code otherwise.
//
// # Output Shape
//
// [WriteJSON] writes a bare array when the document has no responsive
// layouts, and the object form otherwise, so reading and writing a bare
// array file keeps it a bare array.
package gridio

/*
Package wrapped lays out very large ordered collections as rows of
horizontally packed items and materializes only the rows near the viewport.

# Overview

Two pieces do the work:

  - Layout partitions an item slice into rows of up to Columns items and
    stacks the rows as full-width bands. It is immutable and answers
    "which rows intersect this rect" in O(log n + k).
  - Window watches viewport observations, re-queries the layout only when the
    cached query rect stops covering the visible span, and replaces its
    materialized rows only when the queried row IDs change.

Everything else (scroll containers, item drawing, input) belongs to the host.
The backend/opengl and backend/tui packages are two such hosts.

# Quick Start

	layout, err := wrapped.NewLayout(photos, 8, wrapped.FixedHeight[Photo](120))
	if err != nil {
	    return err
	}
	win, err := wrapped.NewWindow(layout, wrapped.WithBuffer(240))
	if err != nil {
	    return err
	}

	// Every frame, or on every scroll event
	if win.Observe(viewportFrame, contentFrame) {
	    // Rows changed: rebuild row views
	}
	for _, row := range win.Rows() {
	    for i, cell := range wrapped.CellFramesIn(row, layout.Columns(), 0, viewportFrame.W) {
	        drawPhoto(row.Items[i], cell)
	    }
	}

# Query Policy

For a visible rect V the window forms a query rect Q by growing V by
V.H/8 above and below. Q is only sent to the layout when the fixed viewport
bounds changed, nothing has been queried yet, or the last Q overlaps the new
one by less than 1.2*V.H. The layout is then queried with Q grown by the
configured buffer. Both constants can be tuned with WithSlackDivisor and
WithCoverage.

# Row Identity

Rows are identified by ordinal index. That survives a change of viewport
width, but not insertion of items mid-sequence; after such an edit build a
new Layout and hand it to Window.SetLayout, which drops the materialized rows.

A re-query that yields the same row IDs is discarded, so after a width-only
change the materialized rows keep the X/W of the earlier query. Lay cells
out from the current viewport width with CellFramesIn.

# Row Height

A row's height is the height function evaluated on the row's first item.
If items in a row may differ in height, make the function return the row's
height for every member.

# Coordinate Conventions

Hosts report a fixed viewport frame and a moving content frame. TopLeft
(y down) and BottomLeft (y up) turn those into a visible rect; other hosts
can pass a ConventionFunc.

# Logging

Debug records for layout builds, row replacement and clamped heights go to
log/slog at Debug level. Enable them with SetVerbose(true) or route them with
SetLogger.
*/
package wrapped

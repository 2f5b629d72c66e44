package wrapped

import "sync"

var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint32, 0, 1536),
			CmdBuffer: make([]DrawCmd, 0, 4),
			clipStack: make([]Rect, 0, 4),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// Vertex is a solid-colored vertex. Color is packed 0xAABBGGRR so it can be
// uploaded as normalized uint8x4.
type Vertex struct {
	Pos   [2]float32
	Color uint32
}

// DrawCmd is a run of indices sharing one clip rect.
type DrawCmd struct {
	Clip        Rect
	IndexOffset uint32
	ElemCount   uint32
}

// DrawList accumulates solid quads for a frame.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint32

	clipStack []Rect
	clip      Rect
	idxOffset uint32
}

// noClip is the clip rect used when none has been pushed.
var noClip = Rect{X: -1e9, Y: -1e9, W: 2e9, H: 2e9}

// Clear resets the DrawList, keeping allocated capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.clip = noClip
	dl.idxOffset = 0
}

// PushClipRect clips subsequent quads to r.
func (dl *DrawList) PushClipRect(r Rect) {
	dl.clipStack = append(dl.clipStack, dl.clip)
	dl.clip = r
	dl.splitDraw()
}

// PopClipRect restores the previous clip rect.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n == 0 {
		return
	}
	dl.clip = dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
	dl.splitDraw()
}

func (dl *DrawList) splitDraw() {
	dl.closeCommand()
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		Clip:        dl.clip,
		IndexOffset: uint32(len(dl.IdxBuffer)),
	})
	dl.idxOffset = uint32(len(dl.IdxBuffer))
}

func (dl *DrawList) closeCommand() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxOffset
	}
}

// AddRect draws a filled rectangle. Empty or fully transparent rects are
// skipped.
func (dl *DrawList) AddRect(r Rect, color uint32) {
	if color&0xFF000000 == 0 || r.IsEmpty() {
		return
	}
	if len(dl.CmdBuffer) == 0 {
		dl.splitDraw()
	}

	idx := uint32(len(dl.VtxBuffer))
	dl.VtxBuffer = append(dl.VtxBuffer,
		Vertex{Pos: [2]float32{r.X, r.Y}, Color: color},
		Vertex{Pos: [2]float32{r.MaxX(), r.Y}, Color: color},
		Vertex{Pos: [2]float32{r.MaxX(), r.MaxY()}, Color: color},
		Vertex{Pos: [2]float32{r.X, r.MaxY()}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRectOutline draws the four edges of r inside its bounds.
func (dl *DrawList) AddRectOutline(r Rect, color uint32, thickness float32) {
	t := minf(thickness, minf(r.W, r.H)/2)
	dl.AddRect(Rect{X: r.X, Y: r.Y, W: r.W, H: t}, color)
	dl.AddRect(Rect{X: r.X, Y: r.MaxY() - t, W: r.W, H: t}, color)
	dl.AddRect(Rect{X: r.X, Y: r.Y + t, W: t, H: r.H - 2*t}, color)
	dl.AddRect(Rect{X: r.MaxX() - t, Y: r.Y + t, W: t, H: r.H - 2*t}, color)
}

// QuadCount returns how many quads have been added.
func (dl *DrawList) QuadCount() int {
	return len(dl.VtxBuffer) / 4
}

// Finalize closes the last command and drops empty ones. Call it after all
// quads are added.
func (dl *DrawList) Finalize() {
	dl.closeCommand()
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}

// CellColor picks the fill color for the item at absolute index within row.
type CellColor func(row, index int) uint32

// AddRows draws one quad per item of rows, shrunk by gap on every side.
// Cells span [origin.X, origin.X+width) horizontally; rows are shifted
// vertically by origin.Y.
func AddRows[T any](dl *DrawList, rows []Row[T], columns int, origin Vec2, width, gap float32, color CellColor) {
	for _, row := range rows {
		for j, cell := range CellFramesIn(row, columns, origin.X, width) {
			cell.X += gap
			cell.Y += origin.Y + gap
			cell.W -= 2 * gap
			cell.H -= 2 * gap
			dl.AddRect(cell, color(row.Index, row.First+j))
		}
	}
}

// RGBA packs a color for Vertex.Color.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

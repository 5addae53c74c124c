package fx

import (
	"sync/atomic"

	"github.com/gogpu/fx/internal/parallel"
)

// Channel identifies one of the four pixel channels of a raster.
type Channel uint8

// Channel constants.
const (
	// ChannelAlpha is the opacity channel.
	ChannelAlpha Channel = iota

	// ChannelRed is the red channel.
	ChannelRed

	// ChannelGreen is the green channel.
	ChannelGreen

	// ChannelBlue is the blue channel.
	ChannelBlue

	numChannels = 4
)

// String returns a human-readable name for the channel.
func (ch Channel) String() string {
	switch ch {
	case ChannelAlpha:
		return "Alpha"
	case ChannelRed:
		return "Red"
	case ChannelGreen:
		return "Green"
	case ChannelBlue:
		return "Blue"
	default:
		return "Unknown"
	}
}

// slotState pairs a channel's transfer function with its lazily
// compiled lookup table. A state is immutable once stored in a slot:
// replacing the function stores a fresh state with a nil table, and
// publishing a compiled table stores a fresh state again. The pointer
// therefore acts as a version: if the slot still holds the state a
// table was compiled against, the table is current.
type slotState struct {
	fn    Transfer
	table *[256]uint8
}

// rows per parallel work unit when applying tables.
const transferRowGrain = 64

// ComponentTransfer is a filter node that remaps the intensity of each
// pixel channel of its single source through an independent transfer
// function. It is the feComponentTransfer primitive of SVG filters.
//
// The node does not change geometry: its bounds equal its source's
// bounds, and the output raster keeps the source origin.
//
// ComponentTransfer is safe for concurrent use. Render may race with
// SetFunc and SetSource from other goroutines; a racing render uses
// either the old or the new configuration of each channel, never a
// mixture. The compiled-table cache is an optimization only; losing a
// publication race merely recompiles a table on the next render.
type ComponentTransfer struct {
	baseNode

	// One slot per channel, indexed by Channel. Slots always hold a
	// non-nil state; a nil transfer function means identity.
	slots [numChannels]atomic.Pointer[slotState]
}

// NewComponentTransfer creates a component transfer node over src.
// Any transfer function may be nil, meaning identity for that channel.
// src may be nil; the node then renders nothing until a source is set.
func NewComponentTransfer(src Node, alpha, red, green, blue Transfer) *ComponentTransfer {
	ct := &ComponentTransfer{}
	ct.setSources([]Node{src})
	ct.SetFunc(ChannelAlpha, alpha)
	ct.SetFunc(ChannelRed, red)
	ct.SetFunc(ChannelGreen, green)
	ct.SetFunc(ChannelBlue, blue)
	return ct
}

// Source returns the node's upstream source, or nil if unset.
func (ct *ComponentTransfer) Source() Node {
	return ct.source(0)
}

// SetSource replaces the node's upstream source.
func (ct *ComponentTransfer) SetSource(src Node) {
	ct.setSource(0, src)
}

// Func returns the transfer function configured for the channel.
// nil means identity.
func (ct *ComponentTransfer) Func(ch Channel) Transfer {
	return ct.slots[ch].Load().fn
}

// SetFunc replaces the channel's transfer function and discards its
// compiled table; the next render recompiles it. The function is
// treated as immutable from this point on (replace, don't mutate).
func (ct *ComponentTransfer) SetFunc(ch Channel, fn Transfer) {
	ct.slots[ch].Store(&slotState{fn: fn})
}

// Bounds returns the source's bounds: component transfer is a
// geometry pass-through.
func (ct *ComponentTransfer) Bounds() (Rect, bool) {
	return ct.sourceBounds(0)
}

// Render pulls a rendering from the source, resolves the four lookup
// tables, and applies them per pixel. Returns (nil, nil) when the
// source renders nothing.
func (ct *ComponentTransfer) Render(ctx *Context) (*Raster, error) {
	src, err := ct.renderSource(0, ctx)
	if err != nil {
		return nil, err
	}
	if src == nil {
		return nil, nil
	}

	tables := ct.resolveTables()

	ox, oy := src.Origin()
	dst := NewRasterAt(ox, oy, src.Width(), src.Height())

	Logger().Debug("component transfer render",
		"width", src.Width(), "height", src.Height())

	in := src.Data()
	out := dst.Data()
	rowLen := src.Width() * 4
	parallel.For(src.Height(), transferRowGrain, func(lo, hi int) {
		applyTables(in[lo*rowLen:hi*rowLen], out[lo*rowLen:hi*rowLen], &tables)
	})

	return dst, nil
}

// resolveTables returns the four compiled tables, compiling any that
// are missing. A freshly compiled table is published back into its
// slot only if the slot still holds the state it was compiled against
// (identity-gated compare-and-swap); a table compiled against a state
// that has since been replaced is used for this render but not cached.
func (ct *ComponentTransfer) resolveTables() [numChannels]*[256]uint8 {
	var tables [numChannels]*[256]uint8
	for ch := range ct.slots {
		st := ct.slots[ch].Load()
		table := st.table
		if table == nil {
			table = compileTable(st.fn)
			ct.slots[ch].CompareAndSwap(st, &slotState{fn: st.fn, table: table})
		}
		tables[ch] = table
	}
	return tables
}

// applyTables remaps a run of pixels channel by channel. The four
// channels are independent; application order does not matter.
func applyTables(in, out []uint8, tables *[numChannels]*[256]uint8) {
	red := tables[ChannelRed]
	green := tables[ChannelGreen]
	blue := tables[ChannelBlue]
	alpha := tables[ChannelAlpha]

	for i := 0; i+3 < len(in); i += 4 {
		out[i+0] = red[in[i+0]]
		out[i+1] = green[in[i+1]]
		out[i+2] = blue[in[i+2]]
		out[i+3] = alpha[in[i+3]]
	}
}

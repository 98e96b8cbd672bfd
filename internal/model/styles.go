package model

// Window style bits (GWL_STYLE).
const (
	WS_OVERLAPPED   uint32 = 0x00000000
	WS_POPUP        uint32 = 0x80000000
	WS_CHILD        uint32 = 0x40000000
	WS_MINIMIZE     uint32 = 0x20000000
	WS_VISIBLE      uint32 = 0x10000000
	WS_DISABLED     uint32 = 0x08000000
	WS_CLIPSIBLINGS uint32 = 0x04000000
	WS_CLIPCHILDREN uint32 = 0x02000000
	WS_MAXIMIZE     uint32 = 0x01000000
	WS_CAPTION      uint32 = 0x00C00000 // WS_BORDER | WS_DLGFRAME
	WS_BORDER       uint32 = 0x00800000
	WS_DLGFRAME     uint32 = 0x00400000
	WS_VSCROLL      uint32 = 0x00200000
	WS_HSCROLL      uint32 = 0x00100000
	WS_SYSMENU      uint32 = 0x00080000
	WS_THICKFRAME   uint32 = 0x00040000
	WS_GROUP        uint32 = 0x00020000
	WS_TABSTOP      uint32 = 0x00010000
	WS_MINIMIZEBOX  uint32 = 0x00020000
	WS_MAXIMIZEBOX  uint32 = 0x00010000

	WS_OVERLAPPEDWINDOW = WS_OVERLAPPED | WS_CAPTION | WS_SYSMENU | WS_THICKFRAME | WS_MINIMIZEBOX | WS_MAXIMIZEBOX
)

// Extended window style bits (GWL_EXSTYLE).
const (
	WS_EX_DLGMODALFRAME  uint32 = 0x00000001
	WS_EX_NOPARENTNOTIFY uint32 = 0x00000004
	WS_EX_TOPMOST        uint32 = 0x00000008
	WS_EX_ACCEPTFILES    uint32 = 0x00000010
	WS_EX_TRANSPARENT    uint32 = 0x00000020
	WS_EX_MDICHILD       uint32 = 0x00000040
	WS_EX_TOOLWINDOW     uint32 = 0x00000080
	WS_EX_WINDOWEDGE     uint32 = 0x00000100
	WS_EX_CLIENTEDGE     uint32 = 0x00000200
	WS_EX_CONTEXTHELP    uint32 = 0x00000400
	WS_EX_APPWINDOW      uint32 = 0x00040000
	WS_EX_LAYERED        uint32 = 0x00080000
	WS_EX_NOACTIVATE     uint32 = 0x08000000
)

// Flag pairs a style mask with its display name.
type Flag struct {
	Mask uint32
	Name string
}

// StyleFlags is the decode table for GWL_STYLE, in display order.
// WS_GROUP/WS_TABSTOP are left out: on top-level windows the same bits mean
// WS_MINIMIZEBOX/WS_MAXIMIZEBOX and the name would be misleading.
var StyleFlags = []Flag{
	{WS_POPUP, "WS_POPUP"},
	{WS_CHILD, "WS_CHILD"},
	{WS_MINIMIZE, "WS_MINIMIZE"},
	{WS_MAXIMIZE, "WS_MAXIMIZE"},
	{WS_CAPTION, "WS_CAPTION"},
	{WS_VISIBLE, "WS_VISIBLE"},
	{WS_DISABLED, "WS_DISABLED"},
	{WS_CLIPSIBLINGS, "WS_CLIPSIBLINGS"},
	{WS_CLIPCHILDREN, "WS_CLIPCHILDREN"},
	{WS_BORDER, "WS_BORDER"},
	{WS_DLGFRAME, "WS_DLGFRAME"},
	{WS_VSCROLL, "WS_VSCROLL"},
	{WS_HSCROLL, "WS_HSCROLL"},
	{WS_SYSMENU, "WS_SYSMENU"},
	{WS_THICKFRAME, "WS_THICKFRAME"},
}

// ExStyleFlags is the decode table for GWL_EXSTYLE, in display order.
var ExStyleFlags = []Flag{
	{WS_EX_DLGMODALFRAME, "WS_EX_DLGMODALFRAME"},
	{WS_EX_NOPARENTNOTIFY, "WS_EX_NOPARENTNOTIFY"},
	{WS_EX_TOPMOST, "WS_EX_TOPMOST"},
	{WS_EX_ACCEPTFILES, "WS_EX_ACCEPTFILES"},
	{WS_EX_TRANSPARENT, "WS_EX_TRANSPARENT"},
	{WS_EX_MDICHILD, "WS_EX_MDICHILD"},
	{WS_EX_TOOLWINDOW, "WS_EX_TOOLWINDOW"},
	{WS_EX_WINDOWEDGE, "WS_EX_WINDOWEDGE"},
	{WS_EX_CLIENTEDGE, "WS_EX_CLIENTEDGE"},
	{WS_EX_CONTEXTHELP, "WS_EX_CONTEXTHELP"},
	{WS_EX_APPWINDOW, "WS_EX_APPWINDOW"},
	{WS_EX_LAYERED, "WS_EX_LAYERED"},
	{WS_EX_NOACTIVATE, "WS_EX_NOACTIVATE"},
}

// DecodeFlags returns the names of every flag in table whose bits are all
// set in mask, in table order. Multi-bit flags such as WS_CAPTION match only
// when every bit is present, so a window with WS_BORDER alone does not report
// WS_CAPTION. Returns nil when nothing matches.
func DecodeFlags(mask uint32, table []Flag) []string {
	var names []string
	for _, f := range table {
		if f.Mask != 0 && mask&f.Mask == f.Mask {
			names = append(names, f.Name)
		}
	}
	return names
}

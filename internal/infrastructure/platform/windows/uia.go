//go:build windows

package windows

import (
	"fmt"
	"runtime"
	"syscall"
	"unsafe"

	"yuki/internal/application/port/output"
	"yuki/internal/domain/entity"

	"golang.org/x/sys/windows"
)

// UI Automation property and control type ids, from UIAutomationClient.h.
const (
	propIsScrollPatternAvailable  = 30034
	propScrollHorizontalScroll    = 30057
	propScrollVerticalScroll      = 30058
	propWindowIsModal             = 30077
	propLegacyDefaultAction       = 30100
)

const (
	vtBool = 11
	vtBSTR = 8

	clsctxInprocServer = 0x1
)

var (
	clsidCUIAutomation = windows.GUID{
		Data1: 0xff48dba4, Data2: 0x60ef, Data3: 0x4201,
		Data4: [8]byte{0xaa, 0x87, 0x54, 0x10, 0x3e, 0xef, 0x59, 0x4e},
	}
	iidIUIAutomation = windows.GUID{
		Data1: 0x30cbe57d, Data2: 0xd9d0, Data3: 0x452a,
		Data4: [8]byte{0xab, 0x13, 0x7a, 0xc5, 0xac, 0x48, 0x25, 0xee},
	}
)

var controlTypeNames = map[int32]string{
	50000: "ButtonControl",
	50001: "CalendarControl",
	50002: "CheckBoxControl",
	50003: "ComboBoxControl",
	50004: "EditControl",
	50005: "HyperlinkControl",
	50006: "ImageControl",
	50007: "ListItemControl",
	50008: "ListControl",
	50009: "MenuControl",
	50010: "MenuBarControl",
	50011: "MenuItemControl",
	50012: "ProgressBarControl",
	50013: "RadioButtonControl",
	50014: "ScrollBarControl",
	50015: "SliderControl",
	50016: "SpinnerControl",
	50017: "StatusBarControl",
	50018: "TabControl",
	50019: "TabItemControl",
	50020: "TextControl",
	50021: "ToolBarControl",
	50022: "ToolTipControl",
	50023: "TreeControl",
	50024: "TreeItemControl",
	50025: "CustomControl",
	50026: "GroupControl",
	50027: "ThumbControl",
	50028: "DataGridControl",
	50029: "DataItemControl",
	50030: "DocumentControl",
	50031: "SplitButtonControl",
	50032: "WindowControl",
	50033: "PaneControl",
	50034: "HeaderControl",
	50035: "HeaderItemControl",
	50036: "TableControl",
	50037: "TitleBarControl",
	50038: "SeparatorControl",
	50039: "SemanticZoomControl",
	50040: "AppBarControl",
}

// comPtr is one raw COM interface pointer. Vtable slots are invoked by
// index; the indices follow the interface layouts in
// UIAutomationClient.h and must not be reordered.
type comPtr struct {
	ptr unsafe.Pointer
}

func (c comPtr) vtbl(slot int) uintptr {
	return (*(*[64]uintptr)(*(*unsafe.Pointer)(c.ptr)))[slot]
}

func (c comPtr) call(slot int, args ...uintptr) (uintptr, error) {
	full := append([]uintptr{uintptr(c.ptr)}, args...)
	hr, _, _ := syscall.SyscallN(c.vtbl(slot), full...)
	if int32(hr) < 0 {
		return hr, fmt.Errorf("com call slot %d failed: hresult 0x%08x", slot, uint32(hr))
	}
	return hr, nil
}

func (c comPtr) release() {
	if c.ptr != nil {
		syscall.SyscallN(c.vtbl(2), uintptr(c.ptr))
	}
}

// variant mirrors the 64-bit VARIANT layout far enough to read BOOL and
// BSTR results out of GetCurrentPropertyValue.
type variant struct {
	VT  uint16
	_   [6]byte
	Val uintptr
	_   [8]byte
}

func (v *variant) clear() {
	procVariantClear.Call(uintptr(unsafe.Pointer(v)))
}

func (v *variant) boolValue() bool {
	return v.VT == vtBool && v.Val != 0
}

func (v *variant) stringValue() string {
	if v.VT != vtBSTR || v.Val == 0 {
		return ""
	}
	return windows.UTF16PtrToString((*uint16)(unsafe.Pointer(v.Val)))
}

func bstrToString(b uintptr) string {
	if b == 0 {
		return ""
	}
	s := windows.UTF16PtrToString((*uint16)(unsafe.Pointer(b)))
	procSysFreeString.Call(b)
	return s
}

// UITree resolves window handles to live UI Automation elements.
//
// COM is initialized in the multithreaded apartment so the scanner's
// worker goroutines can walk elements without thread affinity.
type UITree struct {
	automation comPtr
	walker     comPtr
	log        output.LoggerPort
}

var _ output.UITreePort = (*UITree)(nil)

func NewUITree(log output.LoggerPort) (*UITree, error) {
	if err := windows.CoInitializeEx(0, windows.COINIT_MULTITHREADED); err != nil {
		// S_FALSE means already initialized on this thread.
		if err != syscall.Errno(1) {
			log.Warn("com initialization", "error", err)
		}
	}

	var raw unsafe.Pointer
	hr, _, _ := procCoCreateInstance.Call(
		uintptr(unsafe.Pointer(&clsidCUIAutomation)),
		0,
		uintptr(clsctxInprocServer),
		uintptr(unsafe.Pointer(&iidIUIAutomation)),
		uintptr(unsafe.Pointer(&raw)),
	)
	if int32(hr) < 0 {
		return nil, fmt.Errorf("create uiautomation instance: hresult 0x%08x", uint32(hr))
	}
	automation := comPtr{ptr: raw}

	// IUIAutomation::get_ControlViewWalker, slot 14.
	var walkerRaw unsafe.Pointer
	if _, err := automation.call(14, uintptr(unsafe.Pointer(&walkerRaw))); err != nil {
		automation.release()
		return nil, fmt.Errorf("acquire control view walker: %w", err)
	}

	return &UITree{
		automation: automation,
		walker:     comPtr{ptr: walkerRaw},
		log:        log,
	}, nil
}

func (t *UITree) WindowRoot(handle entity.WindowHandle) (output.UINode, error) {
	// IUIAutomation::ElementFromHandle, slot 6.
	var raw unsafe.Pointer
	if _, err := t.automation.call(6, uintptr(handle), uintptr(unsafe.Pointer(&raw))); err != nil {
		return nil, fmt.Errorf("element from handle %#x: %w", uintptr(handle), err)
	}
	if raw == nil {
		return nil, fmt.Errorf("no element for handle %#x", uintptr(handle))
	}
	return t.newNode(comPtr{ptr: raw}), nil
}

func (t *UITree) FocusedControl() (output.UINode, bool) {
	// IUIAutomation::GetFocusedElement, slot 8.
	var raw unsafe.Pointer
	if _, err := t.automation.call(8, uintptr(unsafe.Pointer(&raw))); err != nil || raw == nil {
		return nil, false
	}
	return t.newNode(comPtr{ptr: raw}), true
}

func (t *UITree) Close() {
	t.walker.release()
	t.automation.release()
}

// uiaNode wraps one IUIAutomationElement. Elements are released by
// finalizer; a scan produces thousands of short-lived nodes and tying
// release to GC keeps Children() allocation-only.
type uiaNode struct {
	elem comPtr
	tree *UITree
}

var _ output.UINode = (*uiaNode)(nil)

func (t *UITree) newNode(elem comPtr) *uiaNode {
	n := &uiaNode{elem: elem, tree: t}
	runtime.SetFinalizer(n, func(n *uiaNode) { n.elem.release() })
	return n
}

// IUIAutomationElement vtable slots for the Current* getters.
const (
	slotGetPropertyValue   = 10
	slotControlType        = 21
	slotName               = 23
	slotAcceleratorKey     = 24
	slotAccessKey          = 25
	slotHasKeyboardFocus   = 26
	slotKeyboardFocusable  = 27
	slotIsEnabled          = 28
	slotClassName          = 30
	slotIsOffscreen        = 38
	slotBoundingRectangle  = 43
)

func (n *uiaNode) bstrProp(slot int) string {
	var b uintptr
	if _, err := n.elem.call(slot, uintptr(unsafe.Pointer(&b))); err != nil {
		return ""
	}
	return bstrToString(b)
}

func (n *uiaNode) boolProp(slot int) bool {
	var v int32
	if _, err := n.elem.call(slot, uintptr(unsafe.Pointer(&v))); err != nil {
		return false
	}
	return v != 0
}

func (n *uiaNode) variantProp(propertyID int32) (variant, bool) {
	var v variant
	if _, err := n.elem.call(slotGetPropertyValue, uintptr(propertyID), uintptr(unsafe.Pointer(&v))); err != nil {
		return variant{}, false
	}
	return v, true
}

func (n *uiaNode) Name() string {
	return n.bstrProp(slotName)
}

func (n *uiaNode) ControlType() string {
	var ct int32
	if _, err := n.elem.call(slotControlType, uintptr(unsafe.Pointer(&ct))); err != nil {
		return "CustomControl"
	}
	if name, ok := controlTypeNames[ct]; ok {
		return name
	}
	return "CustomControl"
}

func (n *uiaNode) ClassName() string {
	return n.bstrProp(slotClassName)
}

func (n *uiaNode) Bounds() entity.BoundingBox {
	var r rect
	if _, err := n.elem.call(slotBoundingRectangle, uintptr(unsafe.Pointer(&r))); err != nil {
		return entity.BoundingBox{}
	}
	return entity.NewBoundingBox(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom))
}

func (n *uiaNode) Enabled() bool {
	return n.boolProp(slotIsEnabled)
}

func (n *uiaNode) Offscreen() bool {
	return n.boolProp(slotIsOffscreen)
}

func (n *uiaNode) Focusable() bool {
	return n.boolProp(slotKeyboardFocusable)
}

func (n *uiaNode) Focused() bool {
	return n.boolProp(slotHasKeyboardFocus)
}

func (n *uiaNode) HasDefaultAction() bool {
	v, ok := n.variantProp(propLegacyDefaultAction)
	if !ok {
		return false
	}
	defer v.clear()
	return v.stringValue() != ""
}

func (n *uiaNode) Modal() bool {
	v, ok := n.variantProp(propWindowIsModal)
	if !ok {
		return false
	}
	defer v.clear()
	return v.boolValue()
}

func (n *uiaNode) Shortcut() string {
	if accel := n.bstrProp(slotAcceleratorKey); accel != "" {
		return accel
	}
	return n.bstrProp(slotAccessKey)
}

func (n *uiaNode) Scroll() *output.ScrollInfo {
	avail, ok := n.variantProp(propIsScrollPatternAvailable)
	if !ok {
		return nil
	}
	supported := avail.boolValue()
	avail.clear()
	if !supported {
		return nil
	}

	info := &output.ScrollInfo{}
	if v, ok := n.variantProp(propScrollHorizontalScroll); ok {
		info.Horizontal = v.boolValue()
		v.clear()
	}
	if v, ok := n.variantProp(propScrollVerticalScroll); ok {
		info.Vertical = v.boolValue()
		v.clear()
	}
	return info
}

func (n *uiaNode) Children() []output.UINode {
	var children []output.UINode

	// IUIAutomationTreeWalker::GetFirstChildElement, slot 4.
	var raw unsafe.Pointer
	if _, err := n.tree.walker.call(4, uintptr(n.elem.ptr), uintptr(unsafe.Pointer(&raw))); err != nil {
		return nil
	}

	for raw != nil {
		child := n.tree.newNode(comPtr{ptr: raw})
		children = append(children, child)

		// IUIAutomationTreeWalker::GetNextSiblingElement, slot 6.
		var next unsafe.Pointer
		if _, err := n.tree.walker.call(6, uintptr(child.elem.ptr), uintptr(unsafe.Pointer(&next))); err != nil {
			break
		}
		raw = next
	}
	return children
}

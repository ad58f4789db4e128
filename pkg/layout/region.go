package layout

import (
	"fmt"
	"strings"

	"github.com/vango-dev/slotkit/pkg/slot"
	"github.com/vango-dev/slotkit/pkg/vdom"
)

// Region is a named region of the page layout.
type Region uint8

const (
	RegionHeader Region = iota
	RegionBody
	RegionFooter
)

// String returns the region name.
func (r Region) String() string {
	switch r {
	case RegionHeader:
		return "header"
	case RegionBody:
		return "body"
	case RegionFooter:
		return "footer"
	default:
		return fmt.Sprintf("Region(%d)", uint8(r))
	}
}

// ParseRegion maps a region name to its marker.
func ParseRegion(s string) (Region, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "header":
		return RegionHeader, true
	case "body":
		return RegionBody, true
	case "footer":
		return RegionFooter, true
	default:
		return 0, false
	}
}

// PageRegions is the marker set of the page layout, in render order.
var PageRegions = slot.Define("page", RegionHeader, RegionBody, RegionFooter)

// Header tags content for the page header.
func Header(content ...any) *vdom.VNode {
	return PageRegions.Fill(RegionHeader, content...)
}

// Body tags content for the page body.
func Body(content ...any) *vdom.VNode {
	return PageRegions.Fill(RegionBody, content...)
}

// Footer tags content for the page footer.
func Footer(content ...any) *vdom.VNode {
	return PageRegions.Fill(RegionFooter, content...)
}

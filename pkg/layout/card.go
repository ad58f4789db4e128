package layout

import (
	"context"
	"fmt"

	"github.com/vango-dev/slotkit/pkg/slot"
	"github.com/vango-dev/slotkit/pkg/vdom"
)

// CardPart is a region of the card layout. Its values never match
// PageRegions, and Region values never match CardParts.
type CardPart uint8

const (
	CardTitle CardPart = iota
	CardContent
	CardActions
)

// String returns the part name used in CSS classes and reports.
func (c CardPart) String() string {
	switch c {
	case CardTitle:
		return "title"
	case CardContent:
		return "content"
	case CardActions:
		return "actions"
	default:
		return fmt.Sprintf("CardPart(%d)", uint8(c))
	}
}

// CardParts is the marker set of the card layout.
var CardParts = slot.Define("card", CardTitle, CardContent, CardActions)

// Title tags content for the card title.
func Title(content ...any) *vdom.VNode { return CardParts.Fill(CardTitle, content...) }

// Content tags content for the card content.
func Content(content ...any) *vdom.VNode { return CardParts.Fill(CardContent, content...) }

// Actions tags content for the card actions.
func Actions(content ...any) *vdom.VNode { return CardParts.Fill(CardActions, content...) }

var cardResolver = &resolver[CardPart]{set: CardParts}

// Card renders a permissive card:
//
//	<section class="card">
//	  <h2 class="card-title">…</h2>
//	  <div class="card-content">…</div>
//	  <div class="card-actions">…</div>
//	</section>
func Card(children ...any) *vdom.VNode {
	return CardContext(context.Background(), children...)
}

// CardContext is Card with the resolution span started from ctx, so it
// joins the caller's trace.
func CardContext(ctx context.Context, children ...any) *vdom.VNode {
	a, _ := cardResolver.resolve(ctx, vdom.Children(children...))

	parts := make([]*vdom.VNode, 0, CardParts.Len())
	a.Each(func(part CardPart, content *vdom.VNode) {
		class := vdom.Class("card-" + part.String())
		if part == CardTitle {
			parts = append(parts, vdom.H2(class, content))
			return
		}
		parts = append(parts, vdom.Div(class, content))
	})
	return vdom.Section(vdom.Class("card"), parts)
}

package cli

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/trip-go/internal/adapters/scenario"
	"github.com/andrescamacho/trip-go/internal/domain/protocol"
	"github.com/andrescamacho/trip-go/internal/domain/resource"
)

// ExchangeFormatter renders scenario exchanges, one line each
type ExchangeFormatter struct {
	useColors bool
}

// NewExchangeFormatter creates a new exchange formatter
func NewExchangeFormatter(useColors bool) *ExchangeFormatter {
	return &ExchangeFormatter{useColors: useColors}
}

// Format renders one exchange:
//
//	[  3] asteroid          ✓ rocket launched (1-a1b2c3)
func (f *ExchangeFormatter) Format(ex scenario.Exchange) string {
	icon, color, text := f.describe(ex.Reply)
	return fmt.Sprintf("[%3d] %-17s %s%s %s%s", ex.Step, ex.Action, color, icon, text, f.colorReset())
}

// describe returns the status icon, color and text of a reply
func (f *ExchangeFormatter) describe(reply interface{}) (string, string, string) {
	switch r := reply.(type) {
	case nil:
		return "·", f.color("90"), "no response"
	case protocol.Stopped:
		return "■", f.color("33"), "planet stopped"
	case protocol.StartPlanetAIResult:
		return "✓", f.color("32"), "ai started"
	case protocol.StopPlanetAIResult:
		return "✓", f.color("32"), "ai stopped"
	case protocol.SunrayAck:
		return "✓", f.color("32"), "sunray acknowledged"
	case protocol.AsteroidAck:
		if r.Rocket == nil {
			return "✗", f.color("31"), "no rocket, planet destroyed"
		}
		return "✓", f.color("32"), fmt.Sprintf("rocket launched (%s)", r.Rocket.ID())
	case protocol.InternalStateResponse:
		return "✓", f.color("36"), formatCells(r.State.EnergyCells, r.State.HasRocket)
	case protocol.IncomingExplorerResponse:
		return resultIcon(r.Err, f), "", fmt.Sprintf("explorer %s arrived%s", r.ExplorerID, errSuffix(r.Err))
	case protocol.OutgoingExplorerResponse:
		return resultIcon(r.Err, f), "", fmt.Sprintf("explorer %s left%s", r.ExplorerID, errSuffix(r.Err))
	case protocol.KillPlanetResult:
		return "✝", f.color("31"), "planet killed"
	case protocol.SupportedResourceResponse:
		return "✓", f.color("36"), "generates " + joinBasic(r.ResourceList)
	case protocol.SupportedCombinationResponse:
		return "✓", f.color("36"), "combines " + joinComplex(r.CombinationList)
	case protocol.GenerateResourceResponse:
		if r.Resource == nil {
			return "✗", f.color("31"), "resource not generated"
		}
		return "✓", f.color("32"), "generated " + r.Resource.String()
	case protocol.CombineResourceResponse:
		if r.Failure != nil {
			return "✗", f.color("31"), fmt.Sprintf("%s, returned %s and %s", r.Failure.Reason, resourceName(r.Failure.Left), resourceName(r.Failure.Right))
		}
		if r.Resource == nil {
			return "✗", f.color("31"), "nothing combined"
		}
		return "✓", f.color("32"), "combined " + r.Resource.String()
	case protocol.AvailableEnergyCellResponse:
		return "✓", f.color("36"), fmt.Sprintf("%d charged cells", r.AvailableCells)
	default:
		return "?", "", fmt.Sprintf("%T", reply)
	}
}

// formatCells renders the reserve as ●○○○○ plus the rocket marker
func formatCells(cells []bool, hasRocket bool) string {
	var b strings.Builder
	for _, charged := range cells {
		if charged {
			b.WriteString("●")
		} else {
			b.WriteString("○")
		}
	}
	if hasRocket {
		b.WriteString(" 🚀")
	}
	return b.String()
}

func resultIcon(err error, f *ExchangeFormatter) string {
	if err != nil {
		return f.color("31") + "✗"
	}
	return f.color("32") + "✓"
}

func errSuffix(err error) string {
	if err == nil {
		return ""
	}
	return ": " + err.Error()
}

func resourceName(r resource.GenericResource) string {
	if r == nil {
		return "nothing"
	}
	return r.Kind()
}

func joinBasic(kinds []resource.BasicResourceType) string {
	if len(kinds) == 0 {
		return "nothing"
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func joinComplex(kinds []resource.ComplexResourceType) string {
	if len(kinds) == 0 {
		return "nothing"
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func (f *ExchangeFormatter) color(code string) string {
	if !f.useColors {
		return ""
	}
	return "\033[" + code + "m"
}

func (f *ExchangeFormatter) colorReset() string {
	if !f.useColors {
		return ""
	}
	return "\033[0m"
}

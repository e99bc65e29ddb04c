package protocol

import (
	"github.com/andrescamacho/trip-go/internal/domain/resource"
	"github.com/andrescamacho/trip-go/internal/domain/shared"
)

// UnsupportedCombinationReason is the fixed rejection reason for combinations a planet cannot perform
const UnsupportedCombinationReason = "unsupported_combination"

// ExplorerToPlanet is a request sent by an explorer visiting a planet
type ExplorerToPlanet interface {
	Explorer() shared.ExplorerID
	explorerToPlanet()
}

type SupportedResourceRequest struct {
	ExplorerID shared.ExplorerID
}

type SupportedCombinationRequest struct {
	ExplorerID shared.ExplorerID
}

type GenerateResourceRequest struct {
	ExplorerID shared.ExplorerID
	Resource   resource.BasicResourceType
}

type CombineResourceRequest struct {
	ExplorerID shared.ExplorerID
	Request    resource.ComplexResourceRequest
}

type AvailableEnergyCellRequest struct {
	ExplorerID shared.ExplorerID
}

func (m SupportedResourceRequest) Explorer() shared.ExplorerID { return m.ExplorerID }
func (m SupportedCombinationRequest) Explorer() shared.ExplorerID { return m.ExplorerID }
func (m GenerateResourceRequest) Explorer() shared.ExplorerID { return m.ExplorerID }
func (m CombineResourceRequest) Explorer() shared.ExplorerID { return m.ExplorerID }
func (m AvailableEnergyCellRequest) Explorer() shared.ExplorerID { return m.ExplorerID }

func (SupportedResourceRequest) explorerToPlanet() {}
func (SupportedCombinationRequest) explorerToPlanet() {}
func (GenerateResourceRequest) explorerToPlanet() {}
func (CombineResourceRequest) explorerToPlanet() {}
func (AvailableEnergyCellRequest) explorerToPlanet() {}

// PlanetToExplorer is a reply sent by a planet to an explorer
type PlanetToExplorer interface {
	planetToExplorer()
}

type SupportedResourceResponse struct {
	ResourceList []resource.BasicResourceType
}

type SupportedCombinationResponse struct {
	CombinationList []resource.ComplexResourceType
}

type GenerateResourceResponse struct {
	Resource *resource.BasicResource
}

// CombineFailure hands the operands back to the explorer together with the reason
type CombineFailure struct {
	Reason string
	Left   resource.GenericResource
	Right  resource.GenericResource
}

func (f *CombineFailure) Error() string {
	return f.Reason
}

// CombineResourceResponse holds exactly one of Resource or Failure
type CombineResourceResponse struct {
	Resource *resource.ComplexResource
	Failure  *CombineFailure
}

type AvailableEnergyCellResponse struct {
	AvailableCells uint32
}

func (SupportedResourceResponse) planetToExplorer() {}
func (SupportedCombinationResponse) planetToExplorer() {}
func (GenerateResourceResponse) planetToExplorer() {}
func (CombineResourceResponse) planetToExplorer() {}
func (AvailableEnergyCellResponse) planetToExplorer() {}

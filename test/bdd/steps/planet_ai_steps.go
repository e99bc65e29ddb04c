package steps

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/trip-go/internal/application/ai"
	"github.com/andrescamacho/trip-go/internal/domain/energy"
	"github.com/andrescamacho/trip-go/internal/domain/planet"
	"github.com/andrescamacho/trip-go/internal/domain/protocol"
	"github.com/andrescamacho/trip-go/internal/domain/resource"
	"github.com/andrescamacho/trip-go/internal/domain/shared"
	"github.com/andrescamacho/trip-go/test/helpers"
)

type planetAIContext struct {
	state    *planet.PlanetState
	ai       *ai.TripAI
	gen      *resource.Generator
	comb     *resource.Combinator
	recorder *helpers.MockRecorder
	logger   *helpers.MockPlanetLogger

	launched      *planet.Rocket
	explorerReply protocol.PlanetToExplorer
}

func (c *planetAIContext) reset() {
	c.state = nil
	c.recorder = helpers.NewMockRecorder()
	c.logger = helpers.NewMockPlanetLogger()
	c.ai = ai.NewTripAI(ai.Dependencies{
		Logger:   c.logger,
		Recorder: c.recorder,
		Clock:    shared.NewMockClock(helpers.FixedTime),
	})
	c.gen = resource.NewGenerator(resource.Oxygen)
	c.comb = resource.NewCombinator()
	c.launched = nil
	c.explorerReply = nil
}

// InitializePlanetAIScenario registers the planet AI decision steps
func InitializePlanetAIScenario(sc *godog.ScenarioContext) {
	c := &planetAIContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		c.reset()
		return ctx, nil
	})

	// Given steps
	sc.Step(`^a type "([^"]*)" planet with id (\d+)$`, c.aTypePlanetWithID)
	sc.Step(`^the planet generates "([^"]*)"$`, c.thePlanetGenerates)
	sc.Step(`^the planet AI is started$`, c.thePlanetAIIsStarted)
	sc.Step(`^the planet AI is stopped$`, c.thePlanetAIIsStopped)
	sc.Step(`^cells? "([^"]*)" (?:is|are) charged$`, c.cellsAreCharged)

	// When steps
	sc.Step(`^(\d+) sunrays? arrives?$`, c.sunraysArrive)
	sc.Step(`^an asteroid arrives$`, c.anAsteroidArrives)
	sc.Step(`^explorer (\d+) asks for the supported resources$`, c.explorerAsksForSupportedResources)
	sc.Step(`^explorer (\d+) asks for the supported combinations$`, c.explorerAsksForSupportedCombinations)
	sc.Step(`^explorer (\d+) asks to generate "([^"]*)"$`, c.explorerAsksToGenerate)
	sc.Step(`^explorer (\d+) asks to combine "([^"]*)"$`, c.explorerAsksToCombine)
	sc.Step(`^explorer (\d+) asks how many energy cells are charged$`, c.explorerAsksForAvailableCells)

	// Then steps
	sc.Step(`^the energy cells should read "([^"]*)"$`, c.theEnergyCellsShouldRead)
	sc.Step(`^the planet should have a rocket$`, c.thePlanetShouldHaveARocket)
	sc.Step(`^the planet should not have a rocket$`, c.thePlanetShouldNotHaveARocket)
	sc.Step(`^a rocket should be launched$`, c.aRocketShouldBeLaunched)
	sc.Step(`^no rocket should be launched$`, c.noRocketShouldBeLaunched)
	sc.Step(`^the decisions should be recorded as:$`, c.theDecisionsShouldBeRecordedAs)
	sc.Step(`^"([^"]*)" should be logged at "([^"]*)"$`, c.shouldBeLoggedAt)
	sc.Step(`^the explorer should receive no response$`, c.theExplorerShouldReceiveNoResponse)
	sc.Step(`^the explorer should receive "([^"]*)"$`, c.theExplorerShouldReceive)
	sc.Step(`^the supported resources should be "([^"]*)"$`, c.theSupportedResourcesShouldBe)
	sc.Step(`^the supported combinations should be empty$`, c.theSupportedCombinationsShouldBeEmpty)
	sc.Step(`^the explorer should be told (\d+) cells? (?:is|are) available$`, c.theExplorerShouldBeToldCellsAvailable)
	sc.Step(`^the combination should be rejected with "([^"]*)" returning "([^"]*)" and "([^"]*)"$`, c.theCombinationShouldBeRejected)
}

// ============================================================================
// Given Steps
// ============================================================================

func (c *planetAIContext) aTypePlanetWithID(planetType string, id int) error {
	t, err := planet.ParsePlanetType(planetType)
	if err != nil {
		return err
	}
	planetID, err := shared.NewPlanetID(id)
	if err != nil {
		return err
	}
	c.state, err = planet.NewPlanetState(planetID, t)
	return err
}

func (c *planetAIContext) thePlanetGenerates(names string) error {
	c.gen = resource.NewGenerator()
	for _, name := range strings.Split(names, ",") {
		kind, err := resource.ParseBasicResourceType(name)
		if err != nil {
			return err
		}
		if err := c.gen.AddRecipe(kind); err != nil {
			return err
		}
	}
	return nil
}

func (c *planetAIContext) thePlanetAIIsStarted() error {
	c.ai.Activate(c.state)
	return nil
}

func (c *planetAIContext) thePlanetAIIsStopped() error {
	c.ai.Deactivate(c.state)
	return nil
}

func (c *planetAIContext) cellsAreCharged(indexes string) error {
	for _, raw := range strings.Split(indexes, ",") {
		i, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return err
		}
		cell, err := c.state.Cell(i)
		if err != nil {
			return err
		}
		cell.Charge(energy.NewSunray())
	}
	return nil
}

// ============================================================================
// When Steps
// ============================================================================

func (c *planetAIContext) sunraysArrive(n int) error {
	for i := 0; i < n; i++ {
		c.ai.HandleSunray(c.state, c.gen, c.comb, energy.NewSunray())
	}
	return nil
}

func (c *planetAIContext) anAsteroidArrives() error {
	c.launched = c.ai.HandleAsteroid(c.state, c.gen, c.comb)
	return nil
}

func (c *planetAIContext) ask(msg protocol.ExplorerToPlanet) {
	c.explorerReply = c.ai.HandleExplorerMsg(c.state, c.gen, c.comb, msg)
}

func (c *planetAIContext) explorerAsksForSupportedResources(id int) error {
	c.ask(protocol.SupportedResourceRequest{ExplorerID: shared.ExplorerID(id)})
	return nil
}

func (c *planetAIContext) explorerAsksForSupportedCombinations(id int) error {
	c.ask(protocol.SupportedCombinationRequest{ExplorerID: shared.ExplorerID(id)})
	return nil
}

func (c *planetAIContext) explorerAsksToGenerate(id int, name string) error {
	kind, err := resource.ParseBasicResourceType(name)
	if err != nil {
		return err
	}
	c.ask(protocol.GenerateResourceRequest{ExplorerID: shared.ExplorerID(id), Resource: kind})
	return nil
}

func (c *planetAIContext) explorerAsksToCombine(id int, name string) error {
	target, err := resource.ParseComplexResourceType(name)
	if err != nil {
		return err
	}
	req, err := resource.NewRecipeRequest(target)
	if err != nil {
		return err
	}
	c.ask(protocol.CombineResourceRequest{ExplorerID: shared.ExplorerID(id), Request: req})
	return nil
}

func (c *planetAIContext) explorerAsksForAvailableCells(id int) error {
	c.ask(protocol.AvailableEnergyCellRequest{ExplorerID: shared.ExplorerID(id)})
	return nil
}

// ============================================================================
// Then Steps
// ============================================================================

func (c *planetAIContext) theEnergyCellsShouldRead(expected string) error {
	actual := cellsString(c.state.Snapshot().EnergyCells)
	if actual != expected {
		return fmt.Errorf("expected cells %s, got %s", expected, actual)
	}
	return nil
}

func (c *planetAIContext) thePlanetShouldHaveARocket() error {
	if !c.state.HasRocket() {
		return fmt.Errorf("expected the planet to have a rocket")
	}
	return nil
}

func (c *planetAIContext) thePlanetShouldNotHaveARocket() error {
	if c.state.HasRocket() {
		return fmt.Errorf("expected the planet to have no rocket")
	}
	return nil
}

func (c *planetAIContext) aRocketShouldBeLaunched() error {
	if c.launched == nil {
		return fmt.Errorf("expected a rocket to be launched")
	}
	return nil
}

func (c *planetAIContext) noRocketShouldBeLaunched() error {
	if c.launched != nil {
		return fmt.Errorf("expected no rocket, got %s", c.launched.ID())
	}
	return nil
}

func (c *planetAIContext) theDecisionsShouldBeRecordedAs(table *godog.Table) error {
	for _, row := range table.Rows[1:] {
		decision := getCellValueFromTable(table, row, "decision")
		expected, err := strconv.Atoi(getCellValueFromTable(table, row, "count"))
		if err != nil {
			return fmt.Errorf("decision %s: %w", decision, err)
		}

		actual, err := c.recordedCount(decision)
		if err != nil {
			return err
		}
		if actual != expected {
			return fmt.Errorf("expected %d %s, got %d", expected, decision, actual)
		}
	}
	return nil
}

func (c *planetAIContext) recordedCount(decision string) (int, error) {
	r := c.recorder
	switch decision {
	case "sunrays absorbed":
		return r.SunraysAbsorbed, nil
	case "sunrays wasted":
		return r.SunraysWasted, nil
	case "rockets built":
		return r.RocketsBuilt, nil
	case "rocket builds failed":
		return r.RocketBuildsFailed, nil
	case "stock launches":
		return r.Launches[ai.LaunchSourceStock], nil
	case "built launches":
		return r.Launches[ai.LaunchSourceBuilt], nil
	case "asteroids unanswered":
		return r.AsteroidsMissed, nil
	case "ignored events":
		return r.TotalIgnored(), nil
	default:
		return 0, fmt.Errorf("unknown decision %q", decision)
	}
}

func (c *planetAIContext) shouldBeLoggedAt(message, level string) error {
	if !c.logger.HasEntry(level, message) {
		return fmt.Errorf("expected %s entry containing %q", level, message)
	}
	return nil
}

func (c *planetAIContext) theExplorerShouldReceiveNoResponse() error {
	if c.explorerReply != nil {
		return fmt.Errorf("expected no response, got %T", c.explorerReply)
	}
	return nil
}

func (c *planetAIContext) theExplorerShouldReceive(name string) error {
	reply, ok := c.explorerReply.(protocol.GenerateResourceResponse)
	if !ok {
		return fmt.Errorf("expected a generated resource, got %T", c.explorerReply)
	}
	if reply.Resource == nil {
		return fmt.Errorf("expected %s, got nothing", name)
	}
	if !strings.EqualFold(reply.Resource.Kind(), name) {
		return fmt.Errorf("expected %s, got %s", name, reply.Resource.Kind())
	}
	return nil
}

func (c *planetAIContext) theSupportedResourcesShouldBe(names string) error {
	reply, ok := c.explorerReply.(protocol.SupportedResourceResponse)
	if !ok {
		return fmt.Errorf("expected supported resources, got %T", c.explorerReply)
	}
	actual := make([]string, len(reply.ResourceList))
	for i, kind := range reply.ResourceList {
		actual[i] = string(kind)
	}
	if strings.Join(actual, ",") != names {
		return fmt.Errorf("expected %s, got %s", names, strings.Join(actual, ","))
	}
	return nil
}

func (c *planetAIContext) theSupportedCombinationsShouldBeEmpty() error {
	reply, ok := c.explorerReply.(protocol.SupportedCombinationResponse)
	if !ok {
		return fmt.Errorf("expected supported combinations, got %T", c.explorerReply)
	}
	if len(reply.CombinationList) != 0 {
		return fmt.Errorf("expected no combinations, got %v", reply.CombinationList)
	}
	return nil
}

func (c *planetAIContext) theExplorerShouldBeToldCellsAvailable(n int) error {
	reply, ok := c.explorerReply.(protocol.AvailableEnergyCellResponse)
	if !ok {
		return fmt.Errorf("expected available cells, got %T", c.explorerReply)
	}
	if int(reply.AvailableCells) != n {
		return fmt.Errorf("expected %d available cells, got %d", n, reply.AvailableCells)
	}
	return nil
}

func (c *planetAIContext) theCombinationShouldBeRejected(reason, left, right string) error {
	reply, ok := c.explorerReply.(protocol.CombineResourceResponse)
	if !ok {
		return fmt.Errorf("expected a combine response, got %T", c.explorerReply)
	}
	if reply.Failure == nil {
		return fmt.Errorf("expected the combination to be rejected")
	}
	if reply.Failure.Reason != reason {
		return fmt.Errorf("expected reason %q, got %q", reason, reply.Failure.Reason)
	}
	if !strings.EqualFold(reply.Failure.Left.Kind(), left) || !strings.EqualFold(reply.Failure.Right.Kind(), right) {
		return fmt.Errorf("expected %s and %s back, got %s and %s", left, right, reply.Failure.Left.Kind(), reply.Failure.Right.Kind())
	}
	return nil
}

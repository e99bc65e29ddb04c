package steps

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/trip-go/internal/adapters/scenario"
	"github.com/andrescamacho/trip-go/internal/application/ai"
	"github.com/andrescamacho/trip-go/internal/application/planet"
	"github.com/andrescamacho/trip-go/test/helpers"
)

const runnerTimeout = 2 * time.Second

type planetRunnerContext struct {
	link      *scenario.Link
	snapshots *helpers.MockSnapshotRepository
	cancel    context.CancelFunc
	done      chan error
	exchanges []scenario.Exchange
	playErr   error
}

func (c *planetRunnerContext) reset() {
	c.stop()
	c.link = nil
	c.snapshots = helpers.NewMockSnapshotRepository()
	c.done = nil
	c.exchanges = nil
	c.playErr = nil
}

func (c *planetRunnerContext) stop() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// InitializePlanetRunnerScenario registers the steps that drive a running planet through its channels
func InitializePlanetRunnerScenario(sc *godog.ScenarioContext) {
	c := &planetRunnerContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		c.reset()
		return ctx, nil
	})
	sc.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		c.stop()
		return ctx, nil
	})

	// Given steps
	sc.Step(`^a running trip planet with id (\d+)$`, c.aRunningTripPlanetWithID)

	// When steps
	sc.Step(`^the orchestrator plays:$`, c.theOrchestratorPlays)

	// Then steps
	sc.Step(`^the replies should be:$`, c.theRepliesShouldBe)
	sc.Step(`^(\d+) exchanges should be recorded$`, c.exchangesShouldBeRecorded)
	sc.Step(`^the planet should have stopped running$`, c.thePlanetShouldHaveStoppedRunning)
	sc.Step(`^(\d+) snapshots? should have been saved$`, c.snapshotsShouldHaveBeenSaved)
}

func (c *planetRunnerContext) aRunningTripPlanetWithID(id int) error {
	c.link = scenario.NewLink()
	p, err := planet.NewTrip(id, c.link.PlanetChannels(), ai.Dependencies{}, planet.Options{Snapshots: c.snapshots})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.done = make(chan error, 1)
	go func() { c.done <- p.Run(ctx) }()
	return nil
}

func (c *planetRunnerContext) theOrchestratorPlays(doc *godog.DocString) error {
	script, err := scenario.LoadScript(strings.NewReader(doc.Content))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	driver := scenario.NewDriver(c.link, 1000, 100, runnerTimeout)
	c.exchanges, c.playErr = driver.Play(ctx, script, nil)
	return c.playErr
}

// replyName renders a reply as its bare type name, "none" for no response
func replyName(reply interface{}) string {
	if reply == nil {
		return "none"
	}
	name := fmt.Sprintf("%T", reply)
	return name[strings.LastIndex(name, ".")+1:]
}

func (c *planetRunnerContext) theRepliesShouldBe(table *godog.Table) error {
	rows := table.Rows[1:]
	if len(rows) != len(c.exchanges) {
		return fmt.Errorf("expected %d replies, got %d", len(rows), len(c.exchanges))
	}

	for i, row := range rows {
		n, err := strconv.Atoi(getCellValueFromTable(table, row, "exchange"))
		if err != nil {
			return err
		}
		if n < 1 || n > len(c.exchanges) {
			return fmt.Errorf("exchange %d out of range", n)
		}
		expected := getCellValueFromTable(table, row, "reply")
		actual := replyName(c.exchanges[n-1].Reply)
		if actual != expected {
			return fmt.Errorf("row %d: expected exchange %d to be %s, got %s", i+1, n, expected, actual)
		}
	}
	return nil
}

func (c *planetRunnerContext) exchangesShouldBeRecorded(n int) error {
	if len(c.exchanges) != n {
		return fmt.Errorf("expected %d exchanges, got %d", n, len(c.exchanges))
	}
	return nil
}

func (c *planetRunnerContext) thePlanetShouldHaveStoppedRunning() error {
	select {
	case err := <-c.done:
		if err != nil {
			return fmt.Errorf("planet stopped with error: %w", err)
		}
		return nil
	case <-time.After(runnerTimeout):
		return fmt.Errorf("planet is still running")
	}
}

func (c *planetRunnerContext) snapshotsShouldHaveBeenSaved(n int) error {
	if count := c.snapshots.Count(); count != n {
		return fmt.Errorf("expected %d snapshots, got %d", n, c.snapshots.Count())
	}
	return nil
}

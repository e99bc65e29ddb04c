package bdd

import (
	"testing"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/trip-go/test/bdd/steps"
)

func TestPlanetRunner(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: func(sc *godog.ScenarioContext) {
			steps.InitializePlanetRunnerScenario(sc)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/application/planet_runner.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run planet runner tests")
	}
}

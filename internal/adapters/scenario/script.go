package scenario

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/andrescamacho/trip-go/internal/domain/resource"
)

// Step actions
const (
	ActionStart         = "start"
	ActionStop          = "stop"
	ActionSunray        = "sunray"
	ActionAsteroid      = "asteroid"
	ActionInternalState = "internal_state"
	ActionArrive        = "explorer_arrive"
	ActionLeave         = "explorer_leave"
	ActionExplorer      = "explorer"
	ActionKill          = "kill"
)

// Explorer request kinds
const (
	RequestSupportedResource    = "supported_resource"
	RequestSupportedCombination = "supported_combination"
	RequestGenerateResource     = "generate_resource"
	RequestCombineResource      = "combine_resource"
	RequestAvailableEnergyCell  = "available_energy_cell"
)

// Script is a scripted sequence of events played against one planet:
//
//	name: defend
//	steps:
//	  - action: start
//	  - action: sunray
//	    repeat: 3
//	  - action: explorer_arrive
//	    explorer: 1
//	  - action: explorer
//	    explorer: 1
//	    request: generate_resource
//	    resource: oxygen
//	  - action: asteroid
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is one scripted event, repeated Repeat times (default once)
type Step struct {
	Action   string `yaml:"action"`
	Repeat   int    `yaml:"repeat"`
	Explorer uint32 `yaml:"explorer"`
	Request  string `yaml:"request"`
	Resource string `yaml:"resource"`
}

// Times returns how often the step runs
func (s Step) Times() int {
	if s.Repeat <= 0 {
		return 1
	}
	return s.Repeat
}

// LoadScript decodes and validates a YAML script
func LoadScript(r io.Reader) (*Script, error) {
	var script Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&script); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("scenario is empty")
		}
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}

	if err := script.Validate(); err != nil {
		return nil, err
	}
	return &script, nil
}

// LoadScriptFile opens path and decodes it with LoadScript
func LoadScriptFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario: %w", err)
	}
	defer f.Close()
	return LoadScript(f)
}

// Validate checks every step and normalizes names to lower case
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario %q has no steps", s.Name)
	}

	for i := range s.Steps {
		step := &s.Steps[i]
		step.Action = strings.ToLower(strings.TrimSpace(step.Action))
		step.Request = strings.ToLower(strings.TrimSpace(step.Request))

		if err := step.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (s Step) validate() error {
	if s.Repeat < 0 {
		return fmt.Errorf("repeat cannot be negative")
	}

	switch s.Action {
	case ActionStart, ActionStop, ActionSunray, ActionAsteroid, ActionInternalState, ActionKill,
		ActionArrive, ActionLeave:
		return nil
	case ActionExplorer:
		return s.validateRequest()
	case "":
		return fmt.Errorf("action is required")
	default:
		return fmt.Errorf("unknown action %q", s.Action)
	}
}

func (s Step) validateRequest() error {
	switch s.Request {
	case RequestSupportedResource, RequestSupportedCombination, RequestAvailableEnergyCell:
		return nil
	case RequestGenerateResource:
		_, err := resource.ParseBasicResourceType(s.Resource)
		return err
	case RequestCombineResource:
		_, err := resource.ParseComplexResourceType(s.Resource)
		return err
	case "":
		return fmt.Errorf("explorer step requires a request")
	default:
		return fmt.Errorf("unknown explorer request %q", s.Request)
	}
}

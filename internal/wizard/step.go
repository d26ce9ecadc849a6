package wizard

import (
	"encoding/json"
	"fmt"
)

type Step int

const (
	StepSelectingDestination Step = iota
	StepSelectingSeatClass
	StepSelectingAccommodation
	StepReviewAndCheckout
	StepConfirmed
)

var stepNames = [...]string{
	StepSelectingDestination:   "SelectingDestination",
	StepSelectingSeatClass:     "SelectingSeatClass",
	StepSelectingAccommodation: "SelectingAccommodation",
	StepReviewAndCheckout:      "ReviewAndCheckout",
	StepConfirmed:              "Confirmed",
}

func (s Step) String() string {
	if s < 0 || int(s) >= len(stepNames) {
		return "Unknown"
	}
	return stepNames[s]
}

func (s Step) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Step) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}

	for i, n := range stepNames {
		if n == name {
			*s = Step(i)
			return nil
		}
	}

	return fmt.Errorf("unknown step %q", name)
}

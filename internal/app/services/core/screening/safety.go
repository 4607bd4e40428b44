package screening

import "adhd-intake-service/internal/app/models"

const SafetyReasonActivePlan = "active-plan"

type Safety struct {
	Safe   bool   `json:"safe"`
	Reason string `json:"reason,omitempty"`
}

// CheckSafety must run as soon as the suicidality answer is set. An active
// plan is unsafe regardless of anything else on the form; passive thoughts
// are recorded but never block.
func CheckSafety(suicidality models.Suicidality) Safety {
	if suicidality == models.SuicidalityActivePlan {
		return Safety{Safe: false, Reason: SafetyReasonActivePlan}
	}
	return Safety{Safe: true}
}

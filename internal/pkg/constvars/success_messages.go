package constvars

const (
	ResponseUnknown = "unknown"

	GetFormSuccessMessage        = "form retrieved successfully"
	StartSessionSuccessMessage   = "intake session started successfully"
	GetSessionSuccessMessage     = "intake session retrieved successfully"
	SaveDraftSuccessMessage      = "draft saved successfully"
	SetSuicidalitySuccessMessage = "safety answer recorded"
	SubmitSuccessMessage         = "Submission successful. Thank you, the clinician will review the results."
	ScoreASRSSuccessMessage      = "ASRS score computed"
	ScoreASRSIncompleteMessage   = "Complete all ASRS items to see the screener score."
)

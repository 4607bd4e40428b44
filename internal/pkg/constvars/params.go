package constvars

const (
	URLParamSessionID = "session_id"
)

const (
	QueryParamsLanguage  = "lang"
	QueryParamsResponder = "responder"
	// QueryParamsPatientType is optional; without it the patient follows the responder
	QueryParamsPatientType = "patient_type"
)

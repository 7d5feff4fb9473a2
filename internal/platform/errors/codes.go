// Package errors provides structured error handling with stable codes.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Assessment validation errors
	CodeAssessmentMissingProject  Code = "ASSESSMENT_MISSING_PROJECT"
	CodeAssessmentMissingDate     Code = "ASSESSMENT_MISSING_DATE"
	CodeAssessmentProjectTooLong  Code = "ASSESSMENT_PROJECT_TOO_LONG"
	CodeAssessmentUnknownPillar   Code = "ASSESSMENT_UNKNOWN_PILLAR"
	CodeAssessmentUnknownPractice Code = "ASSESSMENT_UNKNOWN_PRACTICE"
	CodeAssessmentUnknownAspect   Code = "ASSESSMENT_UNKNOWN_ASPECT"

	// Storage errors
	CodeNotFound     Code = "NOT_FOUND"
	CodeStoreFailure Code = "STORE_FAILURE"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeAssessmentMissingProject,
		CodeAssessmentMissingDate,
		CodeAssessmentProjectTooLong:
		return http.StatusBadRequest
	case CodeAssessmentUnknownPillar,
		CodeAssessmentUnknownPractice,
		CodeAssessmentUnknownAspect,
		CodeNotFound:
		return http.StatusNotFound
	case CodeStoreFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

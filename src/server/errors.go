package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/chartspec"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/layout"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/report"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/reportfile"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/store"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/survey"
)

// statusFor maps pipeline errors to HTTP status codes. Errors the pipeline does not
// name get fallback.
func statusFor(err error, fallback int) int {
	var (
		ure *report.UnsupportedReportError
		ede *survey.EmptyDatasetError
		upe *survey.UnparsableOrdinalError
		ice *survey.InvalidCountError
		dle *survey.DuplicateLabelError
		ule *survey.UnknownLabelError
		ile *survey.InsufficientLabelsError
		uke *chartspec.UnsupportedKindError
		ide *chartspec.InsufficientDataError
		pce *layout.PanelCollisionError
		ipe *layout.InvalidPositionError
	)
	switch {
	case errors.Is(err, store.ErrNotFound), errors.As(err, &ure):
		return http.StatusNotFound
	case errors.As(err, &ede), errors.As(err, &upe), errors.As(err, &ice), errors.As(err, &dle),
		errors.As(err, &ule), errors.As(err, &ile), errors.As(err, &uke), errors.As(err, &ide),
		errors.As(err, &pce), errors.As(err, &ipe),
		errors.Is(err, survey.ErrNoCategories), errors.Is(err, reportfile.ErrNoResponses),
		errors.Is(err, layout.ErrNoPanels):
		return http.StatusUnprocessableEntity
	}
	return fallback
}

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, status, errorBody{Error: message, RequestID: RequestID(r.Context())})
}

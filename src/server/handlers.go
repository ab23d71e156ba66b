package server

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/layout"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/logging"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/render"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/report"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/reportfile"
	"github.com/karthiksrikumar/MagicSchoolDataAnalysis/src/store"
)

type handler struct {
	c *Container
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": h.c.Version})
}

func (h *handler) listReports(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(report.Kinds()))
	for _, k := range report.Kinds() {
		names = append(names, string(k))
	}
	writeJSON(w, http.StatusOK, map[string][]string{"reports": names})
}

// layout handles POST /v1/reports/{kind}/layout.
func (h *handler) layout(w http.ResponseWriter, r *http.Request) {
	kind, def, ok := h.definition(w, r)
	if !ok {
		return
	}
	pl, err := report.Generate(kind, def.Input())
	if err != nil {
		writeError(w, r, statusFor(err, http.StatusInternalServerError), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, pl)
}

// render handles POST /v1/reports/{kind}/render.
func (h *handler) render(w http.ResponseWriter, r *http.Request) {
	kind, def, ok := h.definition(w, r)
	if !ok {
		return
	}
	width, ok := widthParam(w, r)
	if !ok {
		return
	}
	h.renderReport(w, r, kind, def.Input(), width)
}

// surveyReport handles GET /v1/surveys/{survey}/questions/{question}/reports/{kind}.png.
func (h *handler) surveyReport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	kind, err := report.ParseKind(vars["kind"])
	if err != nil {
		writeError(w, r, http.StatusNotFound, err.Error())
		return
	}
	if h.c.Tallies == nil {
		writeError(w, r, http.StatusServiceUnavailable, "tally storage is not configured")
		return
	}
	width, ok := widthParam(w, r)
	if !ok {
		return
	}
	in := report.Input{Title: r.URL.Query().Get("title")}
	if s := r.URL.Query().Get("respondents"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid respondents %q", s))
			return
		}
		in.Respondents = n
	}
	rs, err := h.c.Tallies.Load(r.Context(), vars["survey"], vars["question"])
	if err != nil {
		writeError(w, r, statusFor(err, http.StatusInternalServerError), err.Error())
		return
	}
	in.Responses = rs
	h.renderReport(w, r, kind, in, width)
}

// saveTallies handles PUT /v1/surveys/{survey}/questions/{question}. The body is a
// report definition; only its responses are stored.
func (h *handler) saveTallies(w http.ResponseWriter, r *http.Request) {
	if h.c.Tallies == nil {
		writeError(w, r, http.StatusServiceUnavailable, "tally storage is not configured")
		return
	}
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	rs, err := reportfile.ParseResponses(body)
	if err != nil {
		writeError(w, r, statusFor(err, http.StatusBadRequest), err.Error())
		return
	}
	vars := mux.Vars(r)
	if err := h.c.Tallies.Save(r.Context(), vars["survey"], vars["question"], rs); err != nil {
		writeError(w, r, statusFor(err, http.StatusInternalServerError), err.Error())
		return
	}
	logging.Info().
		Add(logging.RequestID(RequestID(r.Context()))).
		Add(logging.Str("survey", vars["survey"])).
		Add(logging.Str("question", vars["question"])).
		Add(logging.Categories(rs.Len())).
		Msg("tallies saved")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"survey":     vars["survey"],
		"question":   vars["question"],
		"categories": rs.Len(),
		"total":      rs.Total(),
	})
}

// definition reads the path kind and the request body. The body may omit the report
// name; when it names one it must match the path.
func (h *handler) definition(w http.ResponseWriter, r *http.Request) (report.Kind, reportfile.Definition, bool) {
	kind, err := report.ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		writeError(w, r, http.StatusNotFound, err.Error())
		return "", reportfile.Definition{}, false
	}
	body, ok := readBody(w, r)
	if !ok {
		return "", reportfile.Definition{}, false
	}
	def, err := reportfile.Parse(body, kind)
	if err != nil {
		writeError(w, r, statusFor(err, http.StatusBadRequest), err.Error())
		return "", reportfile.Definition{}, false
	}
	if def.Report != kind {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("body names report %q but path names %q", def.Report, kind))
		return "", reportfile.Definition{}, false
	}
	return kind, def, true
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "read body: "+err.Error())
		return nil, false
	}
	if len(body) > MaxBodyBytes {
		writeError(w, r, http.StatusRequestEntityTooLarge, "report definition too large")
		return nil, false
	}
	return body, true
}

func widthParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	s := r.URL.Query().Get("width")
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid width %q", s))
		return 0, false
	}
	return n, true
}

func (h *handler) renderReport(w http.ResponseWriter, r *http.Request, kind report.Kind, in report.Input, width int) {
	ctx := r.Context()
	reqID := RequestID(ctx)
	key := store.Key(kind, in, width)
	if h.c.Images != nil {
		png, hit, err := h.c.Images.Get(ctx, key)
		if err != nil {
			logging.Warn().Add(logging.RequestID(reqID)).Add(logging.ErrorField(err)).Msg("image cache read failed")
		}
		if hit {
			writePNG(w, png, true)
			return
		}
	}

	start := time.Now()
	pl, err := report.Generate(kind, in)
	if err != nil {
		writeError(w, r, statusFor(err, http.StatusInternalServerError), err.Error())
		return
	}
	png, err := renderPNG(ctx, pl, width, h.c.RenderTimeout)
	if err != nil {
		writeError(w, r, statusFor(err, http.StatusInternalServerError), err.Error())
		return
	}
	logging.Info().
		Add(logging.RequestID(reqID)).
		Add(logging.Report(string(kind))).
		Add(logging.Panels(len(pl.Panels))).
		Add(logging.Categories(in.Responses.Len())).
		Add(logging.Duration(time.Since(start))).
		Msg("report rendered")

	if h.c.Images != nil {
		if err := h.c.Images.Set(ctx, key, png); err != nil {
			logging.Warn().Add(logging.RequestID(reqID)).Add(logging.ErrorField(err)).Msg("image cache write failed")
		}
	}
	writePNG(w, png, false)
}

func renderPNG(ctx context.Context, pl layout.PanelLayout, width int, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	var buf bytes.Buffer
	if err := render.New(render.WithWidth(width)).RenderPNG(ctx, pl, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writePNG(w http.ResponseWriter, png []byte, cached bool) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	if cached {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

package contact

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/doucearrivee/contact-api/metrics"
)

const maxBodyBytes = 64 * 1024

const (
	rateLimitedMsg    = "Trop de messages. Veuillez réessayer plus tard."
	dispatchFailedMsg = "Une erreur est survenue lors de l'envoi. Veuillez réessayer ou m'écrire directement par courriel."
	badRequestMsg     = "Requête invalide"
)

// TokenJSON issues the signed timestamp the form embeds when it is rendered
func (s *Server) TokenJSON(w http.ResponseWriter, r *http.Request) {
	res := Response{
		Success: true,
		Result:  map[string]string{"token": s.tg.NewToken()},
		Meta:    GetMeta(),
	}

	returnJSON(w, http.StatusOK, res)
}

// SubmitJSON runs a submission through the full pipeline: spam gate, rate
// limiter, validation, then email dispatch. Each stage short-circuits.
func (s *Server) SubmitJSON(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req SubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		returnJSONError(w, http.StatusBadRequest, badRequestMsg)
		return
	}

	ip := clientIP(r)

	// Bot submissions get the exact same response as accepted ones so
	// automated tools can't learn which check tripped them.
	if !s.gate.Check(req.Website, req.Token) {
		log.Printf("SubmitJSON: silently rejected submission from %v", ip)
		metrics.Submissions.WithLabelValues("spam").Inc()
		returnJSON(w, http.StatusOK, acceptedResponse())
		return
	}

	limited, err := s.limiter.IsRateLimited(r.Context(), ip)
	if err != nil {
		// the limiter is an abuse heuristic, not a ledger: fail open
		log.Printf("SubmitJSON: rate limiter failed, allowing request: %v", err)
	}
	if limited {
		metrics.Submissions.WithLabelValues("rate_limited").Inc()
		returnJSONError(w, http.StatusTooManyRequests, rateLimitedMsg)
		return
	}

	sub, fieldErrs := Validate(req)
	if fieldErrs != nil {
		metrics.Submissions.WithLabelValues("invalid").Inc()
		returnJSON(w, http.StatusBadRequest, Response{Success: false, Errors: fieldErrs, Meta: GetMeta()})
		return
	}

	if err := s.notifier.Notify(r.Context(), sub, ip); err != nil {
		log.Printf("SubmitJSON: failed to dispatch emails: %v", err)
		metrics.Submissions.WithLabelValues("failed").Inc()
		returnJSONError(w, http.StatusInternalServerError, dispatchFailedMsg)
		return
	}

	metrics.Submissions.WithLabelValues("accepted").Inc()
	returnJSON(w, http.StatusOK, acceptedResponse())
}

// acceptedResponse is shared by real acceptances and silent spam rejections;
// the two must stay byte-identical.
func acceptedResponse() Response {
	return Response{
		Success: true,
		Result:  map[string]string{"status": "received"},
		Meta:    GetMeta(),
	}
}

func returnJSON(w http.ResponseWriter, code int, res Response) {
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Printf("returnJSON: failed to write response: %v", err)
	}
}

func returnJSONError(w http.ResponseWriter, code int, msg string) {
	returnJSON(w, code, Response{Success: false, Errors: Errors{Code: code, Msg: msg}, Meta: GetMeta()})
}

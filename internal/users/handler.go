package users

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Kotrecon/result-pattern/fault"
	"github.com/Kotrecon/result-pattern/httpoutcome"
	"github.com/Kotrecon/result-pattern/outcome"
)

// NewHandler exposes svc over HTTP:
//
//	POST /users                  create a user
//	GET  /users/{id}             fetch a user
//	GET  /users/{id}/active      fetch a user that must be active
//	POST /users/{id}/deactivate  deactivate a user
func NewHandler(svc *Service, resp *httpoutcome.Responder) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /users", func(w http.ResponseWriter, r *http.Request) {
		res := outcome.Bind(decodeNewUser(r), svc.Create)
		httpoutcome.WriteValue(resp, w, res, http.StatusCreated)
	})

	mux.HandleFunc("GET /users/{id}", func(w http.ResponseWriter, r *http.Request) {
		httpoutcome.WriteValue(resp, w, outcome.Bind(parseID(r), svc.Get), http.StatusOK)
	})

	mux.HandleFunc("GET /users/{id}/active", func(w http.ResponseWriter, r *http.Request) {
		httpoutcome.WriteValue(resp, w, outcome.Bind(parseID(r), svc.GetActive), http.StatusOK)
	})

	mux.HandleFunc("POST /users/{id}/deactivate", func(w http.ResponseWriter, r *http.Request) {
		res := outcome.Bind(parseID(r), func(id int) outcome.Of[int] {
			return outcome.WithValue(svc.Deactivate(id), id)
		})
		resp.Write(w, res.ToOutcome())
	})

	return mux
}

func parseID(r *http.Request) outcome.Of[int] {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		return outcome.FailureOf[int](fault.NewValidation("Invalid user id", "id must be a positive integer"))
	}
	return outcome.SuccessOf(id)
}

func decodeNewUser(r *http.Request) outcome.Of[NewUser] {
	var in NewUser
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return outcome.FailureOf[NewUser](fault.NewValidation("Request body is invalid", err.Error()))
	}
	return outcome.SuccessOf(in)
}

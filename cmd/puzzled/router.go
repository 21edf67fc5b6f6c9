package main

import "net/http"

func buildHandler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/kinds", handleKinds)
	mux.HandleFunc("POST /v1/solve", handleSolve)

	mux.HandleFunc("GET /v1/records", handleGetRecords)
	mux.HandleFunc("GET /v1/records/{id}", handleGetRecord)

	mux.HandleFunc("/v1/solve/live", handleLiveSolve)

	return useMiddleware(mux,
		corsMiddleware,
		loggingMiddleware,
	)
}

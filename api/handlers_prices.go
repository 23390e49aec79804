package api

import (
	"net/http"
)

// handlePrices serves /api/v1/prices?addresses=a,b
func (s *Server) handlePrices(w http.ResponseWriter, r *http.Request) {
	param := getParam(r, "addresses")
	if param == "" {
		param = getParam(r, "list_address")
	}

	prices, err := s.priceFeed.FetchPrices(r.Context(), splitParam(param))
	if err != nil {
		s.sendError(w, r, err)
		return
	}

	s.sendJSONResponse(w, prices)
}

package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/status-im/solana-price-feed/birdeye"
)

// handleTokenList serves the listing, optionally truncated with ?limit=N
func (s *Server) handleTokenList(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := getParam(r, "limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			s.sendJSONWithStatus(w, http.StatusBadRequest, errorResponse{
				Error: fmt.Sprintf("invalid limit %q", raw),
				Kind:  "bad_request",
			})
			return
		}
		limit = parsed
	}

	listing, err := s.priceFeed.ListTokensByVolume(r.Context())
	if err != nil {
		s.sendError(w, r, err)
		return
	}

	if listing == nil {
		listing = birdeye.TokenListing{}
	}
	if limit > 0 && limit < len(listing) {
		listing = listing[:limit]
	}

	s.sendJSONResponse(w, listing)
}

// handleTokenOverview serves /api/v1/tokens/{address}
func (s *Server) handleTokenOverview(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]

	overview, err := s.priceFeed.FetchTokenOverview(r.Context(), address)
	if err != nil {
		s.sendError(w, r, err)
		return
	}

	s.sendJSONResponse(w, overview)
}

package api

import (
	"errors"
	"net/http"

	"currencyservice/internal/service"
)

// PairResponse describes one configured pair in the /pairs listing.
type PairResponse struct {
	Pair      string   `json:"pair" example:"USD_RUB"`
	Base      string   `json:"base" example:"USD"`
	Quote     string   `json:"quote" example:"RUB"`
	Status    string   `json:"status" example:"warm"`
	Value     *float64 `json:"current_value,omitempty" example:"75.5"`
	UpdatedAt *string  `json:"updated_at,omitempty" example:"2026-10-15T10:15:30Z"`
	LastError *string  `json:"last_error,omitempty" example:"fetch USD->RUB: quote missing from response"`
}

// PairsResponse is the body of /pairs.
type PairsResponse struct {
	Pairs []PairResponse `json:"pairs"`
}

// HandleGetCurrency godoc
// @Summary Get the latest rate of a configured pair
// @Description Returns the cached rate for the pair key (BASE_QUOTE). Never triggers a fetch. Unknown, missing and not yet fetched pairs are reported through the status field with HTTP 200.
// @Tags currency
// @Produce json
// @Param pair query string false "Pair key, e.g. USD_RUB"
// @Success 200 {object} CurrencyResponse "status is one of ok, pair_not_provided, pair_not_found, not_yet_available"
// @Failure 500 {object} CurrencyResponse "status is internal_error"
// @Router /get_currency [get]
func HandleGetCurrency(svc service.CurrencyServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values := r.URL.Query()
		if !values.Has("pair") {
			writeJSON(w, http.StatusOK, CurrencyResponse{Status: StatusPairNotProvided})
			return
		}

		v, err := svc.GetCurrentValue(r.Context(), values.Get("pair"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrPairNotProvided):
				writeJSON(w, http.StatusOK, CurrencyResponse{Status: StatusPairNotProvided})
			case errors.Is(err, service.ErrPairNotFound):
				writeJSON(w, http.StatusOK, CurrencyResponse{Status: StatusPairNotFound})
			case errors.Is(err, service.ErrNotYetAvailable):
				writeJSON(w, http.StatusOK, CurrencyResponse{Status: StatusNotYetAvailable})
			default:
				WriteInternalError(w, err.Error())
			}
			return
		}

		writeJSON(w, http.StatusOK, CurrencyResponse{Status: StatusOK, CurrentValue: &v})
	}
}

// HandleListPairs godoc
// @Summary List configured pairs
// @Description Returns every configured pair with its cache status, latest value and last refresh error.
// @Tags currency
// @Produce json
// @Success 200 {object} PairsResponse "Configured pairs ordered by key"
// @Failure 500 {object} CurrencyResponse "Internal error"
// @Router /pairs [get]
func HandleListPairs(svc service.CurrencyServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.ListPairs(r.Context())
		if err != nil {
			WriteInternalError(w, err.Error())
			return
		}

		resp := PairsResponse{Pairs: make([]PairResponse, 0, len(list))}
		for _, p := range list {
			resp.Pairs = append(resp.Pairs, PairResponse{
				Pair:      p.Pair,
				Base:      p.Base,
				Quote:     p.Quote,
				Status:    p.Status,
				Value:     p.Value,
				UpdatedAt: p.UpdatedAt,
				LastError: p.LastError,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

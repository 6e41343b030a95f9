package httpx

import (
	"net/http"

	"bpsgateway/internal/domain"
)

type InterestHandler struct {
	Policy domain.InterestPolicy
}

func (h *InterestHandler) Due(w http.ResponseWriter, r *http.Request) {
	q := &query{r: r}
	spent, attempts := q.amount("spent"), q.count("attempts")
	if q.err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_input", q.err.Error())
		return
	}

	rate, due, err := h.Policy.Quote(spent, attempts)
	if err != nil {
		writeCalcError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"spent":         spent,
		"attempt_count": attempts,
		"rate_bps":      rate,
		"rate_percent":  rate.Percent(),
		"interest_due":  due,
	})
}

package httpx

import (
	"fmt"
	"net/http"
	"strconv"

	"bpsgateway/internal/money"
	"bpsgateway/internal/percent"
)

type PercentageHandler struct {
	MaxIterations uint
}

// query collects the first parse failure so handlers can read several
// parameters and check once.
type query struct {
	r   *http.Request
	err error
}

func (q *query) amount(name string) money.Amount {
	if q.err != nil {
		return 0
	}
	v, err := money.ParseAmount(q.r.URL.Query().Get(name))
	if err != nil {
		q.err = fmt.Errorf("%s: %w", name, err)
	}
	return v
}

func (q *query) bps(name string) money.BasisPoints {
	if q.err != nil {
		return 0
	}
	v, err := money.ParseBasisPoints(q.r.URL.Query().Get(name))
	if err != nil {
		q.err = fmt.Errorf("%s: %w", name, err)
	}
	return v
}

func (q *query) count(name string) uint64 {
	if q.err != nil {
		return 0
	}
	v, err := strconv.ParseUint(q.r.URL.Query().Get(name), 10, 64)
	if err != nil {
		q.err = fmt.Errorf("%s: invalid unsigned integer %q", name, q.r.URL.Query().Get(name))
	}
	return v
}

func (h *PercentageHandler) Of(w http.ResponseWriter, r *http.Request) {
	q := &query{r: r}
	value, bps := q.amount("value"), q.bps("bps")
	if q.err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_input", q.err.Error())
		return
	}

	res, err := percent.Of(value, bps)
	if err != nil {
		writeCalcError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"value":       value,
		"bps":         bps,
		"bps_percent": bps.Percent(),
		"result":      res,
	})
}

func (h *PercentageHandler) Steps(w http.ResponseWriter, r *http.Request) {
	q := &query{r: r}
	value, bps := q.amount("value"), q.bps("bps")
	if q.err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_input", q.err.Error())
		return
	}

	s, err := percent.OfWithSteps(value, bps)
	if err != nil {
		writeCalcError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"value":    value,
		"bps":      bps,
		"product":  s.Product,
		"quotient": s.Quotient,
		"result":   s.Result,
	})
}

func (h *PercentageHandler) Precision(w http.ResponseWriter, r *http.Request) {
	q := &query{r: r}
	value, bps, factor := q.amount("value"), q.bps("bps"), q.count("factor")
	if q.err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_input", q.err.Error())
		return
	}

	res, err := percent.OfWithPrecision(value, bps, factor)
	if err != nil {
		writeCalcError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"value":  value,
		"bps":    bps,
		"factor": factor,
		"result": res,
	})
}

func (h *PercentageHandler) WhatPercentage(w http.ResponseWriter, r *http.Request) {
	q := &query{r: r}
	part, whole := q.amount("part"), q.amount("whole")
	if q.err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_input", q.err.Error())
		return
	}

	bps, err := percent.WhatPercentage(part, whole)
	if err != nil {
		writeCalcError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"part":        part,
		"whole":       whole,
		"bps":         bps,
		"bps_percent": bps.Percent(),
	})
}

func (h *PercentageHandler) Compound(w http.ResponseWriter, r *http.Request) {
	q := &query{r: r}
	value, bps, iterations := q.amount("value"), q.bps("bps"), q.count("iterations")
	if q.err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_input", q.err.Error())
		return
	}
	if iterations > uint64(h.MaxIterations) {
		WriteError(w, http.StatusBadRequest, "iterations_limit",
			fmt.Sprintf("iterations must be at most %d", h.MaxIterations))
		return
	}

	res, err := percent.Compound(value, bps, uint(iterations))
	if err != nil {
		writeCalcError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"value":      value,
		"bps":        bps,
		"iterations": iterations,
		"result":     res,
	})
}

func (h *PercentageHandler) Diff(w http.ResponseWriter, r *http.Request) {
	q := &query{r: r}
	v1, v2 := q.amount("value1"), q.amount("value2")
	if q.err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_input", q.err.Error())
		return
	}

	bps, increase, err := percent.Diff(v1, v2)
	if err != nil {
		writeCalcError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"value1":      v1,
		"value2":      v2,
		"change_bps":  bps,
		"bps_percent": bps.Percent(),
		"is_increase": increase,
	})
}

// internal/server/api.go

// Package server exposes the statistics and aggregation operations over
// HTTP with gin.
package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/mwiater/promstats/internal/aggregate"
	"github.com/mwiater/promstats/internal/report"
	"github.com/mwiater/promstats/internal/samples"
	"github.com/mwiater/promstats/internal/stats"
)

type summaryRequest struct {
	Samples   []float64  `json:"samples"`
	Quantiles *[]float64 `json:"quantiles"`
}

type quantileRequest struct {
	Samples []float64 `json:"samples"`
	// Q is any so that clients can send "NaN" or "+Inf", which JSON numbers cannot carry.
	Q any `json:"q"`
}

type varianceRequest struct {
	Samples []float64 `json:"samples"`
	Mean    *float64  `json:"mean"`
	Count   *int64    `json:"count"`
}

type varianceResponse struct {
	Variance report.Number `json:"variance"`
	StdDev   report.Number `json:"stddev"`
}

type aggregateRequest struct {
	Series []samples.Series `json:"series"`
	Op     string           `json:"op" binding:"required"`
	Param  float64          `json:"param"`
	By     []string         `json:"by"`
}

type aggregateResponse struct {
	Op   string          `json:"op"`
	Rows []report.RowDoc `json:"rows"`
}

// Controller serves the promstats API.
type Controller interface {
	Summary(c *gin.Context)
	Quantile(c *gin.Context)
	Variance(c *gin.Context)
	Aggregate(c *gin.Context)
}

type controller struct {
	quantiles []float64
}

// NewController returns a Controller whose summaries default to quantiles.
func NewController(quantiles []float64) Controller {
	return &controller{quantiles: quantiles}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (ctl *controller) Summary(c *gin.Context) {
	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	quantiles := ctl.quantiles
	if req.Quantiles != nil {
		quantiles = *req.Quantiles
	}
	sum := aggregate.Summarize(samples.Series{Samples: req.Samples}, quantiles)
	doc := report.NewSummaryDoc(sum)
	doc.Name = ""
	c.JSON(http.StatusOK, doc)
}

func (ctl *controller) Quantile(c *gin.Context) {
	var req quantileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.Q == nil {
		badRequest(c, errors.New("q is required"))
		return
	}
	q, err := cast.ToFloat64E(req.Q)
	if err != nil {
		badRequest(c, fmt.Errorf("invalid q: %w", err))
		return
	}
	c.JSON(http.StatusOK, report.NewQuantileDoc(q, stats.Quantile(req.Samples, q)))
}

func (ctl *controller) Variance(c *gin.Context) {
	var req varianceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	var resp varianceResponse
	if req.Count != nil {
		mean := 0.0
		if req.Mean != nil {
			mean = *req.Mean
		} else if m, ok := stats.Mean(req.Samples); ok {
			mean = m
		}
		resp.Variance = report.From(stats.VarianceWithMean(req.Samples, mean, *req.Count))
		resp.StdDev = report.From(stats.StdDeviationWithMean(req.Samples, mean, *req.Count))
	} else {
		resp.Variance = report.From(stats.Variance(req.Samples))
		resp.StdDev = report.From(stats.StdDeviation(req.Samples))
	}
	c.JSON(http.StatusOK, resp)
}

func (ctl *controller) Aggregate(c *gin.Context) {
	var req aggregateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	op, err := aggregate.ParseOp(req.Op)
	if err != nil {
		badRequest(c, err)
		return
	}
	rows, err := aggregate.Aggregate(req.Series, aggregate.Expr{Op: op, Param: req.Param, By: req.By})
	if err != nil {
		if errors.Is(err, aggregate.ErrGroupingNotAllowed) {
			badRequest(c, err)
			return
		}
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "aggregation failed"})
		return
	}
	c.JSON(http.StatusOK, aggregateResponse{Op: string(op), Rows: report.NewRowDocs(rows)})
}

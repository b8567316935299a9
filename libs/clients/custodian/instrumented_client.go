package custodian

// DO NOT EDIT!
// This code is generated with http://github.com/hexdigest/gowrap tool
// using ../../../.prom-gowrap.tmpl template

//go:generate gowrap gen -p github.com/brave-intl/airdrop-go/libs/clients/custodian -i Client -t ../../../.prom-gowrap.tmpl -o instrumented_client.go

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

// ClientWithPrometheus implements Client interface with all methods wrapped
// with Prometheus metrics
type ClientWithPrometheus struct {
	base         Client
	instanceName string
}

var clientDurationSummaryVec = promauto.NewSummaryVec(
	prometheus.SummaryOpts{
		Name:       "custodian_client_duration_seconds",
		Help:       "client runtime duration and result",
		MaxAge:     time.Minute,
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	},
	[]string{"instance_name", "method", "result"})

// NewClientWithPrometheus returns an instance of the Client decorated with prometheus summary metric
func NewClientWithPrometheus(base Client, instanceName string) ClientWithPrometheus {
	return ClientWithPrometheus{
		base:         base,
		instanceName: instanceName,
	}
}

// Transfer implements Client
func (_d ClientWithPrometheus) Transfer(ctx context.Context, token string, to string, amount decimal.Decimal) (tp1 *Transfer, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "Transfer", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.Transfer(ctx, token, to, amount)
}

// TransferBatch implements Client
func (_d ClientWithPrometheus) TransferBatch(ctx context.Context, to string, transfers []TokenAmount) (tp1 *Transfer, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "TransferBatch", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.TransferBatch(ctx, to, transfers)
}

// TransferFrom implements Client
func (_d ClientWithPrometheus) TransferFrom(ctx context.Context, token string, from string, to string, amount decimal.Decimal) (tp1 *Transfer, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "TransferFrom", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.TransferFrom(ctx, token, from, to, amount)
}

// TransferFromBatch implements Client
func (_d ClientWithPrometheus) TransferFromBatch(ctx context.Context, from string, to string, transfers []TokenAmount) (tp1 *Transfer, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "TransferFromBatch", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.TransferFromBatch(ctx, from, to, transfers)
}

package airdrop

// DO NOT EDIT!
// This code is generated with http://github.com/hexdigest/gowrap tool
// using ../.prom-gowrap.tmpl template

//go:generate gowrap gen -p github.com/brave-intl/airdrop-go/airdrop -i Datastore -t ../.prom-gowrap.tmpl -o instrumented_datastore.go

import (
	"context"
	"time"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DatastoreWithPrometheus implements Datastore interface with all methods wrapped
// with Prometheus metrics
type DatastoreWithPrometheus struct {
	base         Datastore
	instanceName string
}

var datastoreDurationSummaryVec = promauto.NewSummaryVec(
	prometheus.SummaryOpts{
		Name:       "airdrop_datastore_duration_seconds",
		Help:       "datastore runtime duration and result",
		MaxAge:     time.Minute,
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	},
	[]string{"instance_name", "method", "result"})

// NewDatastoreWithPrometheus returns an instance of the Datastore decorated with prometheus summary metric
func NewDatastoreWithPrometheus(base Datastore, instanceName string) DatastoreWithPrometheus {
	return DatastoreWithPrometheus{
		base:         base,
		instanceName: instanceName,
	}
}

// BeginTx implements Datastore
func (_d DatastoreWithPrometheus) BeginTx() (tp1 *sqlx.Tx, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		datastoreDurationSummaryVec.WithLabelValues(_d.instanceName, "BeginTx", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.BeginTx()
}

// ClaimForCampaign implements Datastore
func (_d DatastoreWithPrometheus) ClaimForCampaign(ctx context.Context, worker TransferWorker, req *ClaimRequest) (ta1 []TokenAmount, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		datastoreDurationSummaryVec.WithLabelValues(_d.instanceName, "ClaimForCampaign", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.ClaimForCampaign(ctx, worker, req)
}

// CountActiveCampaigns implements Datastore
func (_d DatastoreWithPrometheus) CountActiveCampaigns() (i1 int, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		datastoreDurationSummaryVec.WithLabelValues(_d.instanceName, "CountActiveCampaigns", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.CountActiveCampaigns()
}

// GetCampaign implements Datastore
func (_d DatastoreWithPrometheus) GetCampaign(campaignID string) (cp1 *Campaign, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		datastoreDurationSummaryVec.WithLabelValues(_d.instanceName, "GetCampaign", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.GetCampaign(campaignID)
}

// GetCampaignToken implements Datastore
func (_d DatastoreWithPrometheus) GetCampaignToken(campaignID string, token string) (cp1 *CampaignToken, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		datastoreDurationSummaryVec.WithLabelValues(_d.instanceName, "GetCampaignToken", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.GetCampaignToken(campaignID, token)
}

// GetCampaignTokenByAirdropKey implements Datastore
func (_d DatastoreWithPrometheus) GetCampaignTokenByAirdropKey(airdropKey string) (cp1 *CampaignToken, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		datastoreDurationSummaryVec.WithLabelValues(_d.instanceName, "GetCampaignTokenByAirdropKey", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.GetCampaignTokenByAirdropKey(airdropKey)
}

// GetCampaignTokens implements Datastore
func (_d DatastoreWithPrometheus) GetCampaignTokens(campaignID string) (ca1 []CampaignToken, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		datastoreDurationSummaryVec.WithLabelValues(_d.instanceName, "GetCampaignTokens", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.GetCampaignTokens(campaignID)
}

// GetClaimRecord implements Datastore
func (_d DatastoreWithPrometheus) GetClaimRecord(campaignID string, token string, claimee string) (cp1 *ClaimRecord, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		datastoreDurationSummaryVec.WithLabelValues(_d.instanceName, "GetClaimRecord", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.GetClaimRecord(campaignID, token, claimee)
}

// GetClaimRecordByClaimKey implements Datastore
func (_d DatastoreWithPrometheus) GetClaimRecordByClaimKey(claimKey string) (cp1 *ClaimRecord, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		datastoreDurationSummaryVec.WithLabelValues(_d.instanceName, "GetClaimRecordByClaimKey", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.GetClaimRecordByClaimKey(claimKey)
}

// Migrate implements Datastore
func (_d DatastoreWithPrometheus) Migrate(p1 ...uint) (err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		datastoreDurationSummaryVec.WithLabelValues(_d.instanceName, "Migrate", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.Migrate(p1...)
}

// NewMigrate implements Datastore
func (_d DatastoreWithPrometheus) NewMigrate() (mp1 *migrate.Migrate, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		datastoreDurationSummaryVec.WithLabelValues(_d.instanceName, "NewMigrate", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.NewMigrate()
}

// RawDB implements Datastore
func (_d DatastoreWithPrometheus) RawDB() (dp1 *sqlx.DB) {
	_since := time.Now()
	defer func() {
		result := "ok"
		datastoreDurationSummaryVec.WithLabelValues(_d.instanceName, "RawDB", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.RawDB()
}

// RollbackTx implements Datastore
func (_d DatastoreWithPrometheus) RollbackTx(tx *sqlx.Tx) {
	_since := time.Now()
	defer func() {
		result := "ok"
		datastoreDurationSummaryVec.WithLabelValues(_d.instanceName, "RollbackTx", result).Observe(time.Since(_since).Seconds())
	}()
	_d.base.RollbackTx(tx)
	return
}

// RollbackTxAndHandle implements Datastore
func (_d DatastoreWithPrometheus) RollbackTxAndHandle(tx *sqlx.Tx) (err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		datastoreDurationSummaryVec.WithLabelValues(_d.instanceName, "RollbackTxAndHandle", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.RollbackTxAndHandle(tx)
}

// ShutdownCampaign implements Datastore
func (_d DatastoreWithPrometheus) ShutdownCampaign(ctx context.Context, worker TransferWorker, campaignID string, recipient string, tokens []string) (ta1 []TokenAmount, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		datastoreDurationSummaryVec.WithLabelValues(_d.instanceName, "ShutdownCampaign", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.ShutdownCampaign(ctx, worker, campaignID, recipient, tokens)
}

// UpdateCampaign implements Datastore
func (_d DatastoreWithPrometheus) UpdateCampaign(ctx context.Context, worker TransferWorker, update *CampaignUpdate) (ta1 []TokenAmount, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		datastoreDurationSummaryVec.WithLabelValues(_d.instanceName, "UpdateCampaign", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.UpdateCampaign(ctx, worker, update)
}

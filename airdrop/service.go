package airdrop

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/brave-intl/airdrop-go/libs/access"
	"github.com/brave-intl/airdrop-go/libs/backoff"
	"github.com/brave-intl/airdrop-go/libs/backoff/retrypolicy"
	"github.com/brave-intl/airdrop-go/libs/clients"
	"github.com/brave-intl/airdrop-go/libs/clients/custodian"
	appctx "github.com/brave-intl/airdrop-go/libs/context"
	errorutils "github.com/brave-intl/airdrop-go/libs/errors"
	kafkautils "github.com/brave-intl/airdrop-go/libs/kafka"
	"github.com/brave-intl/airdrop-go/libs/logging"
	srv "github.com/brave-intl/airdrop-go/libs/service"
	"github.com/linkedin/goavro"
	cache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	kafka "github.com/segmentio/kafka-go"
)

const localEnv = "local"

var (
	campaignUpdatedTopic  = os.Getenv("ENV") + ".airdrop.campaign-updated"
	claimedTopic          = os.Getenv("ENV") + ".airdrop.claimed"
	campaignShutDownTopic = os.Getenv("ENV") + ".airdrop.campaign-shutdown"

	// countCampaignUpdatesTotal counts the campaign root publishes
	countCampaignUpdatesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "airdrop_campaign_updates_total",
			Help: "count of campaign root publishes ( since last start )",
		},
	)

	// countClaimsPaidTotal counts the claims that verified and paid out
	countClaimsPaidTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "airdrop_claims_paid_total",
			Help: "count of claims that verified and paid out ( since last start )",
		},
	)

	// countCampaignShutdownsTotal counts the campaigns retired
	countCampaignShutdownsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "airdrop_campaign_shutdowns_total",
			Help: "count of campaigns retired ( since last start )",
		},
	)

	// activeCampaignsGauge holds the number of campaigns with a published root
	activeCampaignsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "airdrop_active_campaigns",
			Help: "number of campaigns with a published root",
		},
	)
)

func init() {

	// register metrics with prometheus
	err := prometheus.Register(countCampaignUpdatesTotal)
	if ae, ok := err.(prometheus.AlreadyRegisteredError); ok {
		countCampaignUpdatesTotal = ae.ExistingCollector.(prometheus.Counter)
	}

	err = prometheus.Register(countClaimsPaidTotal)
	if ae, ok := err.(prometheus.AlreadyRegisteredError); ok {
		countClaimsPaidTotal = ae.ExistingCollector.(prometheus.Counter)
	}

	err = prometheus.Register(countCampaignShutdownsTotal)
	if ae, ok := err.(prometheus.AlreadyRegisteredError); ok {
		countCampaignShutdownsTotal = ae.ExistingCollector.(prometheus.Counter)
	}

	err = prometheus.Register(activeCampaignsGauge)
	if ae, ok := err.(prometheus.AlreadyRegisteredError); ok {
		activeCampaignsGauge = ae.ExistingCollector.(prometheus.Gauge)
	}
}

// Service contains datastore and custodian client connections
type Service struct {
	Datastore      Datastore
	RoDatastore    ReadOnlyDatastore
	custodian      custodian.Client
	custodyAccount string
	capability     *access.TokenRoleSet
	rootCache      *cache.Cache
	codecs         map[string]*goavro.Codec
	kafkaWriter    *kafka.Writer
	kafkaDialer    *kafka.Dialer
	jobs           []srv.Job
	retry          backoff.RetryFunc
}

// Jobs - Implement srv.JobService interface
func (s *Service) Jobs() []srv.Job {
	return s.jobs
}

// InitCodecs used for Avro encoding / decoding
func (s *Service) InitCodecs() error {
	codecs, err := kafkautils.GenerateCodecs(map[string]string{
		"campaignUpdated":  campaignUpdatedEventSchema,
		"claimed":          claimedEventSchema,
		"campaignShutDown": campaignShutDownEventSchema,
	})
	if err != nil {
		return err
	}
	s.codecs = codecs
	return nil
}

// InitKafka by creating a kafka writer and creating local copies of codecs.
// When no brokers are configured the writer stays nil and events fall back
// to the structured logger.
func (s *Service) InitKafka(ctx context.Context) error {
	brokers, _ := appctx.GetStringFromContext(ctx, appctx.KafkaBrokersCTXKey)
	if len(brokers) == 0 {
		brokers = os.Getenv("KAFKA_BROKERS")
	}
	if len(brokers) == 0 {
		logging.Logger(ctx, "airdrop.InitKafka").Info().
			Msg("kafka brokers are not configured, events will only be logged")
		return nil
	}
	ctx = context.WithValue(ctx, appctx.KafkaBrokersCTXKey, brokers)

	var err error
	// passing an empty topic will not set topic on writer, so it can be
	// defined at message write time
	s.kafkaWriter, s.kafkaDialer, err = kafkautils.InitKafkaWriter(ctx, "")
	if err != nil {
		return err
	}
	return s.InitCodecs()
}

// InitService creates a service using the passed datastore and clients configured from the environment
func InitService(ctx context.Context, airdropDB Datastore, airdropRODB ReadOnlyDatastore) (*Service, error) {
	var (
		custodianClient custodian.Client
		err             error
	)
	if os.Getenv("ENV") != localEnv || len(os.Getenv("CUSTODIAN_SERVER")) > 0 {
		custodianClient, err = custodian.NewWithContext(ctx)
		if err != nil {
			return nil, err
		}
	}

	custodyAccount, _ := appctx.GetStringFromContext(ctx, appctx.CustodyAccountCTXKey)
	if len(custodyAccount) == 0 {
		custodyAccount = os.Getenv("CUSTODY_ACCOUNT")
	}

	rootCacheExpiry, err := appctx.GetDurationFromContext(ctx, appctx.RootCacheExpiryDurationCTXKey)
	if err != nil {
		rootCacheExpiry = 1 * time.Minute
	}
	rootCachePurge, err := appctx.GetDurationFromContext(ctx, appctx.RootCachePurgeDurationCTXKey)
	if err != nil {
		rootCachePurge = 2 * time.Minute
	}

	capability := access.NewTokenRoleSet()
	if admins, ok := ctx.Value(appctx.AdminAccessTokensCTXKey).([]string); ok {
		capability.Seed(access.RoleAdmin, admins)
	}
	if superAdmins, ok := ctx.Value(appctx.SuperAdminAccessTokensCTXKey).([]string); ok {
		capability.Seed(access.RoleSuperAdmin, superAdmins)
	}

	service := &Service{
		Datastore:      airdropDB,
		RoDatastore:    airdropRODB,
		custodian:      custodianClient,
		custodyAccount: custodyAccount,
		capability:     capability,
		rootCache:      cache.New(rootCacheExpiry, rootCachePurge),
		retry:          backoff.Retry,
	}

	// setup runnable jobs
	service.jobs = []srv.Job{
		{
			Func:    service.RunNextActiveCampaignsCountJob,
			Cadence: 30 * time.Second,
			Workers: 1,
		},
	}

	err = service.InitKafka(ctx)
	if err != nil {
		return nil, err
	}
	return service, nil
}

// ReadableDatastore returns a read only datastore if available, otherwise a normal datastore
func (s *Service) ReadableDatastore() ReadOnlyDatastore {
	if s.RoDatastore != nil {
		return s.RoDatastore
	}
	return s.Datastore
}

// Capability exposes the role set backing admin authorization
func (s *Service) Capability() *access.TokenRoleSet {
	return s.capability
}

// GrantRole grants a role to a bearer token
func (s *Service) GrantRole(role string, token string) {
	s.capability.Grant(role, token)
}

// RevokeRole revokes a role from a bearer token
func (s *Service) RevokeRole(role string, token string) {
	s.capability.Revoke(role, token)
}

// validateTokenAmounts rejects empty allocation lists and entries with
// a zero token address or a negative or fractional amount.
func validateTokenAmounts(amounts []TokenAmount) error {
	if len(amounts) == 0 {
		return ErrInvalidTokenAmount
	}
	for _, amount := range amounts {
		if isZeroHex(amount.Token) {
			return ErrZeroAddress
		}
		if amount.Amount.IsNegative() || !amount.Amount.IsInteger() {
			return ErrInvalidTokenAmount
		}
	}
	return nil
}

// UpdateCampaign publishes a new merkle root for the campaign, raises
// its per token allocations and pulls the refill delta from the funder.
// Returns the per token refill amounts aligned with the request.
func (s *Service) UpdateCampaign(ctx context.Context, update *CampaignUpdate) ([]TokenAmount, error) {
	if len(update.CampaignID) == 0 || isZeroHex(update.CampaignID) {
		return nil, ErrInvalidCampaign
	}
	if isZeroHex(update.MerkleRoot) {
		return nil, ErrInvalidMerkleRoot
	}
	if isZeroHex(update.Funder) {
		return nil, ErrZeroAddress
	}
	if err := validateTokenAmounts(update.Allocations); err != nil {
		return nil, err
	}

	refills, err := s.Datastore.UpdateCampaign(ctx, s, update)
	if err != nil {
		return nil, err
	}

	s.rootCache.Delete(update.CampaignID)
	countCampaignUpdatesTotal.Inc()

	s.emitEvent(ctx, campaignUpdatedTopic, "campaignUpdated", &CampaignUpdatedEvent{
		CampaignID:  update.CampaignID,
		MerkleRoot:  update.MerkleRoot,
		Funder:      update.Funder,
		CreatedAt:   time.Now().UTC(),
		Allocations: tokenAmountEvents(update.Allocations),
		Refills:     tokenAmountEvents(refills),
	})
	return refills, nil
}

// Claim pays the unclaimed portion of a committed allocation to the
// recipient, defaulting the recipient to the claimee. Returns the per
// token amounts paid aligned with the request.
func (s *Service) Claim(ctx context.Context, caller string, req *ClaimRequest) ([]TokenAmount, error) {
	if len(req.CampaignID) == 0 || isZeroHex(req.CampaignID) {
		return nil, ErrInvalidCampaign
	}
	if isZeroHex(req.Claimee) {
		return nil, ErrZeroAddress
	}
	if len(req.Recipient) == 0 {
		req.Recipient = req.Claimee
	}
	if isZeroHex(req.Recipient) {
		return nil, ErrZeroAddress
	}
	if err := validateTokenAmounts(req.Allocations); err != nil {
		return nil, err
	}
	if len(req.Proof) == 0 {
		return nil, ErrInvalidProof
	}

	paid, err := s.Datastore.ClaimForCampaign(ctx, s, req)
	if err != nil {
		return nil, err
	}

	countClaimsPaidTotal.Inc()

	s.emitEvent(ctx, claimedTopic, "claimed", &ClaimedEvent{
		CampaignID: req.CampaignID,
		Claimee:    req.Claimee,
		Recipient:  req.Recipient,
		Caller:     caller,
		CreatedAt:  time.Now().UTC(),
		Paid:       tokenAmountEvents(paid),
	})
	return paid, nil
}

// ShutdownCampaign retires the campaign, deleting its root and the
// totals for the given tokens, and sweeps unclaimed funds to the
// recipient. Returns the per token swept amounts aligned with the
// request.
func (s *Service) ShutdownCampaign(ctx context.Context, campaignID string, recipient string, tokens []string) ([]TokenAmount, error) {
	if len(campaignID) == 0 || isZeroHex(campaignID) {
		return nil, ErrInvalidCampaign
	}
	if isZeroHex(recipient) {
		return nil, ErrZeroAddress
	}
	for _, token := range tokens {
		if isZeroHex(token) {
			return nil, ErrZeroAddress
		}
	}

	swept, err := s.Datastore.ShutdownCampaign(ctx, s, campaignID, recipient, tokens)
	if err != nil {
		return nil, err
	}

	s.rootCache.Delete(campaignID)
	countCampaignShutdownsTotal.Inc()

	s.emitEvent(ctx, campaignShutDownTopic, "campaignShutDown", &CampaignShutDownEvent{
		CampaignID: campaignID,
		Recipient:  recipient,
		CreatedAt:  time.Now().UTC(),
		Swept:      tokenAmountEvents(swept),
	})
	return swept, nil
}

// GetCampaignRoot returns the published root for a campaign, reading
// through a short lived cache. Mutations invalidate the cache, so a
// cached root is at worst as stale as the cache expiry on another
// instance.
func (s *Service) GetCampaignRoot(ctx context.Context, campaignID string) (string, error) {
	if root, ok := s.rootCache.Get(campaignID); ok {
		return root.(string), nil
	}

	campaign, err := s.ReadableDatastore().GetCampaign(campaignID)
	if err != nil {
		return "", err
	}
	if campaign == nil {
		return "", ErrCampaignNotFound
	}

	s.rootCache.SetDefault(campaignID, campaign.MerkleRoot)
	return campaign.MerkleRoot, nil
}

var (
	retryPolicy        = retrypolicy.DefaultRetry
	nonRetriableErrors = []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden,
		http.StatusInternalServerError, http.StatusConflict}
)

// RefillTransfer implements TransferWorker, pulling a campaign update's
// allocation deltas from the funder into the custody account.
func (s *Service) RefillTransfer(ctx context.Context, funder string, refills []TokenAmount) error {
	if s.custodian == nil {
		logging.Logger(ctx, "airdrop.RefillTransfer").Warn().
			Msg("custodian is not configured, skipping refill transfer")
		return nil
	}
	refillOperation := func() (interface{}, error) {
		return s.custodian.TransferFromBatch(ctx, funder, s.custodyAccount, custodianAmounts(refills))
	}
	_, err := s.retry(ctx, refillOperation, retryPolicy, canRetry(nonRetriableErrors))
	return err
}

// PayoutTransfer implements TransferWorker, paying freshly claimed
// amounts out of custody to the recipient.
func (s *Service) PayoutTransfer(ctx context.Context, recipient string, payouts []TokenAmount) error {
	if s.custodian == nil {
		logging.Logger(ctx, "airdrop.PayoutTransfer").Warn().
			Msg("custodian is not configured, skipping payout transfer")
		return nil
	}
	payoutOperation := func() (interface{}, error) {
		return s.custodian.TransferBatch(ctx, recipient, custodianAmounts(payouts))
	}
	_, err := s.retry(ctx, payoutOperation, retryPolicy, canRetry(nonRetriableErrors))
	return err
}

// SweepTransfer implements TransferWorker, returning unclaimed
// remainders out of custody to the recipient on shutdown.
func (s *Service) SweepTransfer(ctx context.Context, recipient string, sweeps []TokenAmount) error {
	if s.custodian == nil {
		logging.Logger(ctx, "airdrop.SweepTransfer").Warn().
			Msg("custodian is not configured, skipping sweep transfer")
		return nil
	}
	sweepOperation := func() (interface{}, error) {
		return s.custodian.TransferBatch(ctx, recipient, custodianAmounts(sweeps))
	}
	_, err := s.retry(ctx, sweepOperation, retryPolicy, canRetry(nonRetriableErrors))
	return err
}

// custodianAmounts converts token amounts into the custodian client's
// transfer form.
func custodianAmounts(amounts []TokenAmount) []custodian.TokenAmount {
	transfers := make([]custodian.TokenAmount, len(amounts))
	for i, amount := range amounts {
		transfers[i] = custodian.TokenAmount{Token: amount.Token, Amount: amount.Amount}
	}
	return transfers
}

// canRetry returns true for custodian responses outside the non retriable
// status list, so transient upstream failures are retried with backoff.
func canRetry(nonRetriableErrors []int) func(error) bool {
	return func(err error) bool {
		var eb *errorutils.ErrorBundle
		switch {
		case errors.As(err, &eb):
			if hs, ok := eb.Data().(clients.HTTPState); ok {
				for _, httpStatusCode := range nonRetriableErrors {
					if hs.Status == httpStatusCode {
						return false
					}
				}
				return true
			}
		}
		return false
	}
}

// codecEncoder is implemented by the kafka event types.
type codecEncoder interface {
	CodecEncode(codec *goavro.Codec) ([]byte, error)
}

// emitEvent writes an avro encoded event to kafka. Emission failure is
// logged and never fails the ledger call; without a configured writer
// the event goes to the structured logger instead.
func (s *Service) emitEvent(ctx context.Context, topic string, name string, event codecEncoder) {
	logger := logging.Logger(ctx, "airdrop.emitEvent")

	if s.kafkaWriter == nil {
		logger.Info().Str("topic", topic).Interface("event", event).
			Msg("kafka is not configured, event logged only")
		return
	}

	codec, ok := s.codecs[name]
	if !ok {
		logger.Error().Str("codec", name).Msg("no codec found for event")
		return
	}

	binary, err := event.CodecEncode(codec)
	if err != nil {
		logger.Error().Err(err).Str("topic", topic).Msg("failed to encode event")
		return
	}

	err = s.kafkaWriter.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: binary,
	})
	if err != nil {
		logger.Error().Err(err).Str("topic", topic).Msg("failed to write event to kafka")
	}
}

// RunNextActiveCampaignsCountJob refreshes the active campaigns gauge
func (s *Service) RunNextActiveCampaignsCountJob(ctx context.Context) (bool, error) {
	count, err := s.ReadableDatastore().CountActiveCampaigns()
	if err != nil {
		return true, err
	}
	activeCampaignsGauge.Set(float64(count))
	return true, nil
}

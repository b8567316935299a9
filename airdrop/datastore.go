package airdrop

import (
	"context"
	"database/sql"
	"errors"
	"os"

	"github.com/brave-intl/airdrop-go/libs/datastore"
	errorutils "github.com/brave-intl/airdrop-go/libs/errors"
	"github.com/brave-intl/airdrop-go/libs/merkle"
	"github.com/getsentry/sentry-go"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// TransferWorker encapsulates the custodial transfers a campaign
// transaction performs before it commits. A worker error aborts the
// enclosing transaction, so the books never record a movement of funds
// that did not happen.
type TransferWorker interface {
	// RefillTransfer pulls the allocation deltas for a campaign update
	// from the funder into custody
	RefillTransfer(ctx context.Context, funder string, refills []TokenAmount) error
	// PayoutTransfer pays freshly claimed amounts out of custody to the
	// recipient
	PayoutTransfer(ctx context.Context, recipient string, payouts []TokenAmount) error
	// SweepTransfer returns unclaimed remainders out of custody to the
	// recipient on shutdown
	SweepTransfer(ctx context.Context, recipient string, sweeps []TokenAmount) error
}

// Datastore abstracts over the underlying datastore
type Datastore interface {
	datastore.Datastore
	// UpdateCampaign raises per token allocations for a campaign,
	// publishes the new merkle root and pulls the refill deltas from
	// the funder, all or nothing
	UpdateCampaign(ctx context.Context, worker TransferWorker, update *CampaignUpdate) ([]TokenAmount, error)
	// ClaimForCampaign verifies a claim against the campaign root and
	// pays out whatever portion of the committed allocation the claimee
	// has not already withdrawn
	ClaimForCampaign(ctx context.Context, worker TransferWorker, req *ClaimRequest) ([]TokenAmount, error)
	// ShutdownCampaign retires a campaign, deleting its root and token
	// totals and sweeping unclaimed funds to the recipient
	ShutdownCampaign(ctx context.Context, worker TransferWorker, campaignID string, recipient string, tokens []string) ([]TokenAmount, error)
	// GetCampaign returns the campaign with the given id, nil if it has
	// no published root
	GetCampaign(campaignID string) (*Campaign, error)
	// GetCampaignTokens returns the token totals rows for a campaign
	GetCampaignTokens(campaignID string) ([]CampaignToken, error)
	// GetCampaignToken returns the totals row for one token in one
	// campaign, nil if the token was never allocated
	GetCampaignToken(campaignID string, token string) (*CampaignToken, error)
	// GetCampaignTokenByAirdropKey returns the totals row with the
	// given derived key
	GetCampaignTokenByAirdropKey(airdropKey string) (*CampaignToken, error)
	// GetClaimRecord returns the running claim total for a claimee and
	// token in a campaign, nil if nothing was ever claimed
	GetClaimRecord(campaignID string, token string, claimee string) (*ClaimRecord, error)
	// GetClaimRecordByClaimKey returns the claim record with the given
	// derived key
	GetClaimRecordByClaimKey(claimKey string) (*ClaimRecord, error)
	// CountActiveCampaigns returns the number of campaigns with a
	// published root
	CountActiveCampaigns() (int, error)
}

// ReadOnlyDatastore includes all database methods that can be made with a read only db connection
type ReadOnlyDatastore interface {
	datastore.Datastore
	// GetCampaign returns the campaign with the given id, nil if it has
	// no published root
	GetCampaign(campaignID string) (*Campaign, error)
	// GetCampaignTokens returns the token totals rows for a campaign
	GetCampaignTokens(campaignID string) ([]CampaignToken, error)
	// GetCampaignToken returns the totals row for one token in one
	// campaign, nil if the token was never allocated
	GetCampaignToken(campaignID string, token string) (*CampaignToken, error)
	// GetCampaignTokenByAirdropKey returns the totals row with the
	// given derived key
	GetCampaignTokenByAirdropKey(airdropKey string) (*CampaignToken, error)
	// GetClaimRecord returns the running claim total for a claimee and
	// token in a campaign, nil if nothing was ever claimed
	GetClaimRecord(campaignID string, token string, claimee string) (*ClaimRecord, error)
	// GetClaimRecordByClaimKey returns the claim record with the given
	// derived key
	GetClaimRecordByClaimKey(claimKey string) (*ClaimRecord, error)
	// CountActiveCampaigns returns the number of campaigns with a
	// published root
	CountActiveCampaigns() (int, error)
}

// Postgres is a Datastore wrapper around a postgres database
type Postgres struct {
	datastore.Postgres
}

// NewDB creates a new Postgres Datastore
func NewDB(databaseURL string, performMigration bool, dbStatsPrefix ...string) (Datastore, error) {
	pg, err := datastore.NewPostgres(databaseURL, performMigration, dbStatsPrefix...)
	if pg != nil {
		return &DatastoreWithPrometheus{
			base: &Postgres{*pg}, instanceName: "airdrop_datastore",
		}, err
	}
	return nil, err
}

// NewRODB creates a new Postgres RO Datastore
func NewRODB(databaseURL string, performMigration bool, dbStatsPrefix ...string) (ReadOnlyDatastore, error) {
	pg, err := datastore.NewPostgres(databaseURL, performMigration, dbStatsPrefix...)
	if pg != nil {
		return &ReadOnlyDatastoreWithPrometheus{
			base: &Postgres{*pg}, instanceName: "airdrop_ro_datastore",
		}, err
	}
	return nil, err
}

// NewPostgres creates new postgres connections
func NewPostgres() (Datastore, ReadOnlyDatastore, error) {
	var roPg ReadOnlyDatastore
	pg, err := NewDB("", true, "airdrop_db")
	if err != nil {
		sentry.CaptureException(err)
		log.Panic().Err(err).Msg("Must be able to init postgres connection to start")
	}
	roDB := os.Getenv("RO_DATABASE_URL")
	if len(roDB) > 0 {
		roPg, err = NewRODB(roDB, false, "airdrop_read_only_db")
		if err != nil {
			sentry.CaptureException(err)
			log.Error().Err(err).Msg("Could not start reader postgres connection")
		}
	}
	if roPg == nil {
		roPg = pg
	}
	return pg, roPg, err
}

// NewFromConnection creates a datastore from a connection object
func NewFromConnection(pg *datastore.Postgres, instanceName string) Datastore {
	return &DatastoreWithPrometheus{
		base: &Postgres{*pg}, instanceName: instanceName,
	}
}

// lockCampaignToken ensures a totals row exists for (campaign, token)
// and returns it locked for the remainder of the transaction.
func lockCampaignToken(tx *sqlx.Tx, campaignID string, token string) (*CampaignToken, error) {
	key, err := AirdropKey(campaignID, token)
	if err != nil {
		return nil, err
	}
	_, err = tx.Exec(`
	insert into campaign_tokens (campaign_id, token_address, airdrop_key)
	values ($1, $2, $3)
	on conflict (campaign_id, token_address) do nothing`,
		campaignID, token, key)
	if err != nil {
		return nil, err
	}

	var ct CampaignToken
	err = tx.Get(&ct, `
	select * from campaign_tokens
	where campaign_id = $1 and token_address = $2
	for update`,
		campaignID, token)
	if err != nil {
		return nil, err
	}
	return &ct, nil
}

// UpdateCampaign raises allocations, publishes the root and pulls the
// refill from the funder in a single transaction. Allocations are
// cumulative totals and may only grow; an attempt to lower any token's
// total rejects the whole update. The refill transfer happens inside
// the transaction so a custodian failure rolls the books back.
func (pg *Postgres) UpdateCampaign(ctx context.Context, worker TransferWorker, update *CampaignUpdate) ([]TokenAmount, error) {
	tx, err := pg.RawDB().Beginx()
	if err != nil {
		return nil, err
	}
	defer pg.RollbackTx(tx)

	refills := make([]TokenAmount, len(update.Allocations))
	for i, allocation := range update.Allocations {
		ct, err := lockCampaignToken(tx, update.CampaignID, allocation.Token)
		if err != nil {
			return nil, err
		}
		if allocation.Amount.LessThan(ct.TotalAllocated) {
			return nil, errorutils.Wrap(ErrInvalidTokenAmount, "allocation for "+allocation.Token+" cannot decrease")
		}

		refill := allocation.Amount.Sub(ct.TotalAllocated)
		if refill.IsPositive() {
			_, err = tx.Exec(`
			update campaign_tokens
			set total_allocated = $2, updated_at = current_timestamp
			where id = $1`,
				ct.ID, allocation.Amount)
			if err != nil {
				return nil, err
			}
		}
		refills[i] = TokenAmount{Token: allocation.Token, Amount: refill}
	}

	_, err = tx.Exec(`
	insert into campaigns (id, merkle_root)
	values ($1, $2)
	on conflict (id) do update
	set merkle_root = excluded.merkle_root, updated_at = current_timestamp`,
		update.CampaignID, update.MerkleRoot)
	if err != nil {
		return nil, err
	}

	if pull := positiveAmounts(refills); len(pull) > 0 {
		if err := worker.RefillTransfer(ctx, update.Funder, pull); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return refills, nil
}

// ClaimForCampaign pays out the unclaimed portion of a committed
// allocation. The claimed totals are written before the proof is
// checked; an invalid proof, an exhausted allocation or a custodian
// failure rolls everything back. The already claimed check runs before
// proof verification so a replayed claim fails fast.
func (pg *Postgres) ClaimForCampaign(ctx context.Context, worker TransferWorker, req *ClaimRequest) ([]TokenAmount, error) {
	tx, err := pg.RawDB().Beginx()
	if err != nil {
		return nil, err
	}
	defer pg.RollbackTx(tx)

	// The share lock holds shutdown and republish off until this claim
	// commits, while leaving other claims free to proceed.
	var root string
	err = tx.Get(&root, `select merkle_root from campaigns where id = $1 for share`, req.CampaignID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCampaignNotFound
	} else if err != nil {
		return nil, err
	}

	paid := make([]TokenAmount, len(req.Allocations))
	for i, allocation := range req.Allocations {
		ct, err := lockCampaignToken(tx, req.CampaignID, allocation.Token)
		if err != nil {
			return nil, err
		}

		claimed := decimal.Zero
		var record ClaimRecord
		err = tx.Get(&record, `
		select * from claims
		where campaign_id = $1 and token_address = $2 and claimee = $3`,
			req.CampaignID, allocation.Token, req.Claimee)
		if err == nil {
			claimed = record.AmountClaimed
		} else if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}

		owed := allocation.Amount.Sub(claimed)
		paid[i] = TokenAmount{Token: allocation.Token}
		if !owed.IsPositive() {
			continue
		}

		if ct.TotalClaimed.Add(owed).GreaterThan(ct.TotalAllocated) {
			return nil, errorutils.Wrap(errOverClaimed, "claim for "+allocation.Token+" exceeds the campaign allocation")
		}
		_, err = tx.Exec(`
		update campaign_tokens
		set total_claimed = total_claimed + $2, updated_at = current_timestamp
		where id = $1`,
			ct.ID, owed)
		if err != nil {
			return nil, err
		}

		claimKey, err := ClaimKey(req.CampaignID, allocation.Token, req.Claimee)
		if err != nil {
			return nil, err
		}
		_, err = tx.Exec(`
		insert into claims (campaign_id, token_address, claimee, claim_key, amount_claimed)
		values ($1, $2, $3, $4, $5)
		on conflict (campaign_id, token_address, claimee) do update
		set amount_claimed = excluded.amount_claimed, updated_at = current_timestamp`,
			req.CampaignID, allocation.Token, req.Claimee, claimKey, allocation.Amount)
		if err != nil {
			return nil, err
		}
		paid[i].Amount = owed
	}

	payouts := positiveAmounts(paid)
	if len(payouts) == 0 {
		return nil, ErrAlreadyClaimed
	}

	rootBytes, err := hexBytes(root)
	if err != nil {
		return nil, err
	}
	leaf, err := EncodeLeaf(req.Claimee, req.Allocations)
	if err != nil {
		return nil, err
	}
	proof, err := decodeProof(req.Proof)
	if err != nil {
		return nil, err
	}
	if !merkle.Verify(rootBytes, leaf, proof) {
		return nil, ErrInvalidProof
	}

	if err := worker.PayoutTransfer(ctx, req.Recipient, payouts); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return paid, nil
}

// ShutdownCampaign deletes the campaign's root and the totals rows for
// the given tokens, sweeping each token's unclaimed remainder to the
// recipient. Claim records are left in place. The returned amounts are
// aligned with the token list, zero for tokens the campaign never
// allocated.
func (pg *Postgres) ShutdownCampaign(ctx context.Context, worker TransferWorker, campaignID string, recipient string, tokens []string) ([]TokenAmount, error) {
	tx, err := pg.RawDB().Beginx()
	if err != nil {
		return nil, err
	}
	defer pg.RollbackTx(tx)

	result, err := tx.Exec(`delete from campaigns where id = $1`, campaignID)
	if err != nil {
		return nil, err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if deleted == 0 {
		return nil, ErrCampaignNotFound
	}

	campaignTokens := []CampaignToken{}
	err = tx.Select(&campaignTokens, `
	select * from campaign_tokens
	where campaign_id = $1 and token_address = any($2)
	for update`,
		campaignID, pq.Array(tokens))
	if err != nil {
		return nil, err
	}
	_, err = tx.Exec(`
	delete from campaign_tokens
	where campaign_id = $1 and token_address = any($2)`,
		campaignID, pq.Array(tokens))
	if err != nil {
		return nil, err
	}

	unclaimed := make(map[string]decimal.Decimal, len(campaignTokens))
	for _, ct := range campaignTokens {
		unclaimed[ct.TokenAddress] = ct.Unclaimed()
	}

	// a token the campaign never allocated sweeps zero, and a repeated
	// token sweeps only once
	sweeps := make([]TokenAmount, len(tokens))
	for i, token := range tokens {
		sweeps[i] = TokenAmount{Token: token, Amount: unclaimed[token]}
		delete(unclaimed, token)
	}

	if send := positiveAmounts(sweeps); len(send) > 0 {
		if err := worker.SweepTransfer(ctx, recipient, send); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return sweeps, nil
}

// GetCampaign returns the campaign with the given id, nil if it has no
// published root
func (pg *Postgres) GetCampaign(campaignID string) (*Campaign, error) {
	statement := "select * from campaigns where id = $1"
	campaigns := []Campaign{}
	err := pg.RawDB().Select(&campaigns, statement, campaignID)
	if err != nil {
		return nil, err
	}
	if len(campaigns) > 0 {
		return &campaigns[0], nil
	}
	return nil, nil
}

// GetCampaignTokens returns the token totals rows for a campaign
func (pg *Postgres) GetCampaignTokens(campaignID string) ([]CampaignToken, error) {
	statement := "select * from campaign_tokens where campaign_id = $1 order by token_address"
	campaignTokens := []CampaignToken{}
	err := pg.RawDB().Select(&campaignTokens, statement, campaignID)
	if err != nil {
		return nil, err
	}
	return campaignTokens, nil
}

// GetCampaignToken returns the totals row for one token in one
// campaign, nil if the token was never allocated
func (pg *Postgres) GetCampaignToken(campaignID string, token string) (*CampaignToken, error) {
	statement := "select * from campaign_tokens where campaign_id = $1 and token_address = $2"
	campaignTokens := []CampaignToken{}
	err := pg.RawDB().Select(&campaignTokens, statement, campaignID, token)
	if err != nil {
		return nil, err
	}
	if len(campaignTokens) > 0 {
		return &campaignTokens[0], nil
	}
	return nil, nil
}

// GetCampaignTokenByAirdropKey returns the totals row with the given
// derived key
func (pg *Postgres) GetCampaignTokenByAirdropKey(airdropKey string) (*CampaignToken, error) {
	statement := "select * from campaign_tokens where airdrop_key = $1"
	campaignTokens := []CampaignToken{}
	err := pg.RawDB().Select(&campaignTokens, statement, airdropKey)
	if err != nil {
		return nil, err
	}
	if len(campaignTokens) > 0 {
		return &campaignTokens[0], nil
	}
	return nil, nil
}

// GetClaimRecord returns the running claim total for a claimee and
// token in a campaign, nil if nothing was ever claimed
func (pg *Postgres) GetClaimRecord(campaignID string, token string, claimee string) (*ClaimRecord, error) {
	statement := "select * from claims where campaign_id = $1 and token_address = $2 and claimee = $3"
	records := []ClaimRecord{}
	err := pg.RawDB().Select(&records, statement, campaignID, token, claimee)
	if err != nil {
		return nil, err
	}
	if len(records) > 0 {
		return &records[0], nil
	}
	return nil, nil
}

// GetClaimRecordByClaimKey returns the claim record with the given
// derived key
func (pg *Postgres) GetClaimRecordByClaimKey(claimKey string) (*ClaimRecord, error) {
	statement := "select * from claims where claim_key = $1"
	records := []ClaimRecord{}
	err := pg.RawDB().Select(&records, statement, claimKey)
	if err != nil {
		return nil, err
	}
	if len(records) > 0 {
		return &records[0], nil
	}
	return nil, nil
}

// CountActiveCampaigns returns the number of campaigns with a published
// root
func (pg *Postgres) CountActiveCampaigns() (int, error) {
	var count int
	err := pg.RawDB().Get(&count, "select count(*) from campaigns")
	if err != nil {
		return 0, err
	}
	return count, nil
}

// positiveAmounts filters a token amount list down to the entries that
// actually move funds.
func positiveAmounts(amounts []TokenAmount) []TokenAmount {
	out := []TokenAmount{}
	for _, amount := range amounts {
		if amount.Amount.IsPositive() {
			out = append(out, amount)
		}
	}
	return out
}

// decodeProof decodes hex encoded proof nodes into sibling hashes.
func decodeProof(proof []string) ([][]byte, error) {
	nodes := make([][]byte, len(proof))
	for i, node := range proof {
		b, err := hexBytes(node)
		if err != nil || len(b) != merkle.HashSize {
			return nil, ErrInvalidProof
		}
		nodes[i] = b
	}
	return nodes, nil
}

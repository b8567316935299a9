//go:build integration

package airdrop

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PostgresTestSuite struct {
	suite.Suite
	db Datastore
}

func TestPostgresTestSuite(t *testing.T) {
	suite.Run(t, new(PostgresTestSuite))
}

func (suite *PostgresTestSuite) SetupSuite() {
	db, err := NewDB("", false, "airdrop_test")
	suite.Require().NoError(err, "Failed to get postgres conn")
	suite.db = db

	m, err := db.NewMigrate()
	suite.Require().NoError(err, "Failed to create migrate instance")

	ver, dirty, _ := m.Version()
	if dirty {
		suite.Require().NoError(m.Force(int(ver)))
	}
	if ver > 0 {
		suite.Require().NoError(m.Down(), "Failed to migrate down cleanly")
	}

	suite.Require().NoError(db.Migrate(), "Failed to fully migrate")
}

func (suite *PostgresTestSuite) SetupTest() {
	suite.CleanDB()
}

func (suite *PostgresTestSuite) CleanDB() {
	tables := []string{"claims", "campaign_tokens", "campaigns"}

	for _, table := range tables {
		_, err := suite.db.RawDB().Exec("delete from " + table)
		suite.Require().NoError(err, "Failed to get clean table")
	}
}

func (suite *PostgresTestSuite) worker(mockCtrl *gomock.Controller) *MockTransferWorker {
	worker := NewMockTransferWorker(mockCtrl)
	worker.EXPECT().RefillTransfer(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	worker.EXPECT().PayoutTransfer(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	worker.EXPECT().SweepTransfer(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return worker
}

func (suite *PostgresTestSuite) TestCampaignLifecycle() {
	ctx := context.Background()
	mockCtrl := gomock.NewController(suite.T())
	defer mockCtrl.Finish()
	worker := suite.worker(mockCtrl)

	// first round commits 100 to alice
	allocations := []TokenAmount{{Token: testToken, Amount: decimal.NewFromInt(100)}}
	root, proofs := merkleFixture(suite.T(),
		testLeaf{testAlice, allocations},
		testLeaf{testBob, []TokenAmount{{Token: testToken, Amount: decimal.NewFromInt(250)}}},
	)

	refills, err := suite.db.UpdateCampaign(ctx, worker, &CampaignUpdate{
		CampaignID:  testCampaignID,
		MerkleRoot:  root,
		Funder:      testFunder,
		Allocations: []TokenAmount{{Token: testToken, Amount: decimal.NewFromInt(350)}},
	})
	suite.Require().NoError(err)
	suite.Require().Len(refills, 1)
	suite.Assert().True(refills[0].Amount.Equal(decimal.NewFromInt(350)))

	campaign, err := suite.db.GetCampaign(testCampaignID)
	suite.Require().NoError(err)
	suite.Require().NotNil(campaign)
	suite.Assert().Equal(root, campaign.MerkleRoot)

	paid, err := suite.db.ClaimForCampaign(ctx, worker, &ClaimRequest{
		CampaignID:  testCampaignID,
		Claimee:     testAlice,
		Recipient:   testAlice,
		Allocations: allocations,
		Proof:       proofs[0],
	})
	suite.Require().NoError(err)
	suite.Require().Len(paid, 1)
	suite.Assert().True(paid[0].Amount.Equal(decimal.NewFromInt(100)))

	// second round raises alice to a cumulative 150
	allocations = []TokenAmount{{Token: testToken, Amount: decimal.NewFromInt(150)}}
	root, proofs = merkleFixture(suite.T(),
		testLeaf{testAlice, allocations},
		testLeaf{testBob, []TokenAmount{{Token: testToken, Amount: decimal.NewFromInt(250)}}},
	)

	refills, err = suite.db.UpdateCampaign(ctx, worker, &CampaignUpdate{
		CampaignID:  testCampaignID,
		MerkleRoot:  root,
		Funder:      testFunder,
		Allocations: []TokenAmount{{Token: testToken, Amount: decimal.NewFromInt(400)}},
	})
	suite.Require().NoError(err)
	suite.Assert().True(refills[0].Amount.Equal(decimal.NewFromInt(50)))

	// only the 50 not yet withdrawn is owed
	paid, err = suite.db.ClaimForCampaign(ctx, worker, &ClaimRequest{
		CampaignID:  testCampaignID,
		Claimee:     testAlice,
		Recipient:   testAlice,
		Allocations: allocations,
		Proof:       proofs[0],
	})
	suite.Require().NoError(err)
	suite.Assert().True(paid[0].Amount.Equal(decimal.NewFromInt(50)))

	// replaying the same claim pays nothing
	_, err = suite.db.ClaimForCampaign(ctx, worker, &ClaimRequest{
		CampaignID:  testCampaignID,
		Claimee:     testAlice,
		Recipient:   testAlice,
		Allocations: allocations,
		Proof:       proofs[0],
	})
	suite.Require().Error(err)
	suite.Assert().True(errors.Is(err, ErrAlreadyClaimed))

	ct, err := suite.db.GetCampaignToken(testCampaignID, testToken)
	suite.Require().NoError(err)
	suite.Require().NotNil(ct)
	suite.Assert().True(ct.TotalAllocated.Equal(decimal.NewFromInt(400)))
	suite.Assert().True(ct.TotalClaimed.Equal(decimal.NewFromInt(150)))

	swept, err := suite.db.ShutdownCampaign(ctx, worker, testCampaignID, testFunder, []string{testToken})
	suite.Require().NoError(err)
	suite.Require().Len(swept, 1)
	suite.Assert().True(swept[0].Amount.Equal(decimal.NewFromInt(250)))

	// campaign and totals are gone, claim history survives
	campaign, err = suite.db.GetCampaign(testCampaignID)
	suite.Require().NoError(err)
	suite.Assert().Nil(campaign)

	ct, err = suite.db.GetCampaignToken(testCampaignID, testToken)
	suite.Require().NoError(err)
	suite.Assert().Nil(ct)

	record, err := suite.db.GetClaimRecord(testCampaignID, testToken, testAlice)
	suite.Require().NoError(err)
	suite.Require().NotNil(record)
	suite.Assert().True(record.AmountClaimed.Equal(decimal.NewFromInt(150)))
}

func (suite *PostgresTestSuite) TestUpdateCampaignCannotLowerAllocation() {
	ctx := context.Background()
	mockCtrl := gomock.NewController(suite.T())
	defer mockCtrl.Finish()
	worker := suite.worker(mockCtrl)

	_, err := suite.db.UpdateCampaign(ctx, worker, &CampaignUpdate{
		CampaignID:  testCampaignID,
		MerkleRoot:  testStubHash,
		Funder:      testFunder,
		Allocations: []TokenAmount{{Token: testToken, Amount: decimal.NewFromInt(100)}},
	})
	suite.Require().NoError(err)

	_, err = suite.db.UpdateCampaign(ctx, worker, &CampaignUpdate{
		CampaignID:  testCampaignID,
		MerkleRoot:  testStubHash,
		Funder:      testFunder,
		Allocations: []TokenAmount{{Token: testToken, Amount: decimal.NewFromInt(60)}},
	})
	suite.Require().Error(err)
	suite.Assert().True(errors.Is(err, ErrInvalidTokenAmount))

	// the failed update must not have touched the books
	ct, err := suite.db.GetCampaignToken(testCampaignID, testToken)
	suite.Require().NoError(err)
	suite.Require().NotNil(ct)
	suite.Assert().True(ct.TotalAllocated.Equal(decimal.NewFromInt(100)))
}

func (suite *PostgresTestSuite) TestClaimRollsBackOnCustodianFailure() {
	ctx := context.Background()
	mockCtrl := gomock.NewController(suite.T())
	defer mockCtrl.Finish()

	worker := NewMockTransferWorker(mockCtrl)
	worker.EXPECT().RefillTransfer(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	allocations := []TokenAmount{{Token: testToken, Amount: decimal.NewFromInt(100)}}
	root, proofs := merkleFixture(suite.T(),
		testLeaf{testAlice, allocations},
		testLeaf{testBob, []TokenAmount{{Token: testToken, Amount: decimal.NewFromInt(250)}}},
	)

	_, err := suite.db.UpdateCampaign(ctx, worker, &CampaignUpdate{
		CampaignID:  testCampaignID,
		MerkleRoot:  root,
		Funder:      testFunder,
		Allocations: []TokenAmount{{Token: testToken, Amount: decimal.NewFromInt(350)}},
	})
	suite.Require().NoError(err)

	transferErr := errors.New("custodian unavailable")
	worker.EXPECT().PayoutTransfer(gomock.Any(), gomock.Any(), gomock.Any()).Return(transferErr)

	_, err = suite.db.ClaimForCampaign(ctx, worker, &ClaimRequest{
		CampaignID:  testCampaignID,
		Claimee:     testAlice,
		Recipient:   testAlice,
		Allocations: allocations,
		Proof:       proofs[0],
	})
	suite.Require().Error(err)
	suite.Assert().True(errors.Is(err, transferErr))

	// nothing was recorded as claimed
	ct, err := suite.db.GetCampaignToken(testCampaignID, testToken)
	suite.Require().NoError(err)
	suite.Require().NotNil(ct)
	suite.Assert().True(ct.TotalClaimed.IsZero())

	record, err := suite.db.GetClaimRecord(testCampaignID, testToken, testAlice)
	suite.Require().NoError(err)
	suite.Assert().Nil(record)

	// and the claim still goes through afterwards
	worker.EXPECT().PayoutTransfer(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	paid, err := suite.db.ClaimForCampaign(ctx, worker, &ClaimRequest{
		CampaignID:  testCampaignID,
		Claimee:     testAlice,
		Recipient:   testAlice,
		Allocations: allocations,
		Proof:       proofs[0],
	})
	suite.Require().NoError(err)
	suite.Assert().True(paid[0].Amount.Equal(decimal.NewFromInt(100)))
}

func (suite *PostgresTestSuite) TestLookupByDerivedKeys() {
	ctx := context.Background()
	mockCtrl := gomock.NewController(suite.T())
	defer mockCtrl.Finish()
	worker := suite.worker(mockCtrl)

	allocations := []TokenAmount{{Token: testToken, Amount: decimal.NewFromInt(100)}}
	root, proofs := merkleFixture(suite.T(),
		testLeaf{testAlice, allocations},
		testLeaf{testBob, []TokenAmount{{Token: testToken, Amount: decimal.NewFromInt(250)}}},
	)

	_, err := suite.db.UpdateCampaign(ctx, worker, &CampaignUpdate{
		CampaignID:  testCampaignID,
		MerkleRoot:  root,
		Funder:      testFunder,
		Allocations: []TokenAmount{{Token: testToken, Amount: decimal.NewFromInt(350)}},
	})
	suite.Require().NoError(err)

	_, err = suite.db.ClaimForCampaign(ctx, worker, &ClaimRequest{
		CampaignID:  testCampaignID,
		Claimee:     testAlice,
		Recipient:   testAlice,
		Allocations: allocations,
		Proof:       proofs[0],
	})
	suite.Require().NoError(err)

	airdropKey, err := AirdropKey(testCampaignID, testToken)
	suite.Require().NoError(err)
	ct, err := suite.db.GetCampaignTokenByAirdropKey(airdropKey)
	suite.Require().NoError(err)
	suite.Require().NotNil(ct)
	suite.Assert().Equal(testToken, ct.TokenAddress)

	claimKey, err := ClaimKey(testCampaignID, testToken, testAlice)
	suite.Require().NoError(err)
	record, err := suite.db.GetClaimRecordByClaimKey(claimKey)
	suite.Require().NoError(err)
	suite.Require().NotNil(record)
	suite.Assert().Equal(testAlice, record.Claimee)
	suite.Assert().True(record.AmountClaimed.Equal(decimal.NewFromInt(100)))
}

func (suite *PostgresTestSuite) TestCountActiveCampaignsTracksShutdown() {
	ctx := context.Background()
	mockCtrl := gomock.NewController(suite.T())
	defer mockCtrl.Finish()
	worker := suite.worker(mockCtrl)

	count, err := suite.db.CountActiveCampaigns()
	suite.Require().NoError(err)
	suite.Assert().Equal(0, count)

	_, err = suite.db.UpdateCampaign(ctx, worker, &CampaignUpdate{
		CampaignID:  testCampaignID,
		MerkleRoot:  testStubHash,
		Funder:      testFunder,
		Allocations: []TokenAmount{{Token: testToken, Amount: decimal.NewFromInt(100)}},
	})
	suite.Require().NoError(err)

	count, err = suite.db.CountActiveCampaigns()
	suite.Require().NoError(err)
	suite.Assert().Equal(1, count)

	_, err = suite.db.ShutdownCampaign(ctx, worker, testCampaignID, testFunder, []string{testToken})
	suite.Require().NoError(err)

	count, err = suite.db.CountActiveCampaigns()
	suite.Require().NoError(err)
	suite.Assert().Equal(0, count)
}

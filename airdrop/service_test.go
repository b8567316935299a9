package airdrop

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/brave-intl/airdrop-go/libs/access"
	"github.com/brave-intl/airdrop-go/libs/backoff"
	"github.com/brave-intl/airdrop-go/libs/clients"
	"github.com/brave-intl/airdrop-go/libs/clients/custodian"
	mock_custodian "github.com/brave-intl/airdrop-go/libs/clients/custodian/mock"
	"github.com/brave-intl/airdrop-go/libs/test"
	"github.com/golang/mock/gomock"
	cache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(ds Datastore) *Service {
	return &Service{
		Datastore:  ds,
		capability: access.NewTokenRoleSet(),
		rootCache:  cache.New(time.Minute, 2*time.Minute),
		retry:      backoff.Retry,
	}
}

func TestServiceUpdateCampaignValidation(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	// no datastore call may happen for any rejected update
	service := testService(NewMockDatastore(mockCtrl))

	valid := &CampaignUpdate{
		CampaignID:  testCampaignID,
		MerkleRoot:  testStubHash,
		Funder:      testFunder,
		Allocations: []TokenAmount{{Token: testToken, Amount: decimal.NewFromInt(100)}},
	}

	cases := []struct {
		name     string
		mutate   func(update *CampaignUpdate)
		expected error
	}{
		{"empty campaign id", func(u *CampaignUpdate) { u.CampaignID = "" }, ErrInvalidCampaign},
		{"zero campaign id", func(u *CampaignUpdate) { u.CampaignID = "0x0000000000000000000000000000000000000000000000000000000000000000" }, ErrInvalidCampaign},
		{"zero merkle root", func(u *CampaignUpdate) { u.MerkleRoot = "0x0" }, ErrInvalidMerkleRoot},
		{"zero funder", func(u *CampaignUpdate) { u.Funder = "0x0000000000000000000000000000000000000000" }, ErrZeroAddress},
		{"no allocations", func(u *CampaignUpdate) { u.Allocations = nil }, ErrInvalidTokenAmount},
		{"zero token address", func(u *CampaignUpdate) { u.Allocations[0].Token = "0x0000000000000000000000000000000000000000" }, ErrZeroAddress},
		{"negative amount", func(u *CampaignUpdate) { u.Allocations[0].Amount = decimal.NewFromInt(-1) }, ErrInvalidTokenAmount},
		{"fractional amount", func(u *CampaignUpdate) { u.Allocations[0].Amount = decimal.NewFromFloat(1.5) }, ErrInvalidTokenAmount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			update := *valid
			update.Allocations = []TokenAmount{valid.Allocations[0]}
			tc.mutate(&update)
			_, err := service.UpdateCampaign(context.Background(), &update)
			assert.True(t, errors.Is(err, tc.expected))
		})
	}
}

func TestServiceUpdateCampaignInvalidatesRootCache(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockDS := NewMockDatastore(mockCtrl)
	service := testService(mockDS)

	// a stale root sits in the cache from before the update
	service.rootCache.SetDefault(testCampaignID, "0x1111111111111111111111111111111111111111111111111111111111111111")

	update := &CampaignUpdate{
		CampaignID:  testCampaignID,
		MerkleRoot:  testStubHash,
		Funder:      testFunder,
		Allocations: []TokenAmount{{Token: testToken, Amount: decimal.NewFromInt(100)}},
	}
	mockDS.EXPECT().UpdateCampaign(gomock.Any(), gomock.Any(), gomock.Eq(update)).
		Return([]TokenAmount{{Token: testToken, Amount: decimal.NewFromInt(100)}}, nil)

	refills, err := service.UpdateCampaign(context.Background(), update)
	require.NoError(t, err)
	require.Len(t, refills, 1)

	mockDS.EXPECT().GetCampaign(gomock.Eq(testCampaignID)).
		Return(&Campaign{ID: testCampaignID, MerkleRoot: testStubHash}, nil)

	root, err := service.GetCampaignRoot(context.Background(), testCampaignID)
	require.NoError(t, err)
	assert.Equal(t, testStubHash, root)
}

func TestServiceClaimDefaultsRecipientToClaimee(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockDS := NewMockDatastore(mockCtrl)
	service := testService(mockDS)

	paid := []TokenAmount{{Token: testToken, Amount: decimal.NewFromInt(100)}}
	mockDS.EXPECT().ClaimForCampaign(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, worker TransferWorker, req *ClaimRequest) ([]TokenAmount, error) {
			assert.Equal(t, testAlice, req.Recipient)
			return paid, nil
		})

	got, err := service.Claim(context.Background(), testAlice, &ClaimRequest{
		CampaignID:  testCampaignID,
		Claimee:     testAlice,
		Allocations: []TokenAmount{{Token: testToken, Amount: decimal.NewFromInt(100)}},
		Proof:       []string{testStubHash},
	})
	require.NoError(t, err)
	assert.Equal(t, paid, got)
}

func TestServiceClaimValidation(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	service := testService(NewMockDatastore(mockCtrl))

	valid := func() *ClaimRequest {
		return &ClaimRequest{
			CampaignID:  testCampaignID,
			Claimee:     testAlice,
			Recipient:   testAlice,
			Allocations: []TokenAmount{{Token: testToken, Amount: decimal.NewFromInt(100)}},
			Proof:       []string{testStubHash},
		}
	}

	req := valid()
	req.Claimee = "0x0000000000000000000000000000000000000000"
	_, err := service.Claim(context.Background(), testAlice, req)
	assert.True(t, errors.Is(err, ErrZeroAddress))

	req = valid()
	req.Recipient = "0x0000000000000000000000000000000000000000"
	_, err = service.Claim(context.Background(), testAlice, req)
	assert.True(t, errors.Is(err, ErrZeroAddress))

	// a proofless claim never reaches the datastore
	req = valid()
	req.Proof = nil
	_, err = service.Claim(context.Background(), testAlice, req)
	assert.True(t, errors.Is(err, ErrInvalidProof))

	req = valid()
	req.CampaignID = ""
	_, err = service.Claim(context.Background(), testAlice, req)
	assert.True(t, errors.Is(err, ErrInvalidCampaign))
}

func TestServiceShutdownCampaignValidation(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	service := testService(NewMockDatastore(mockCtrl))

	_, err := service.ShutdownCampaign(context.Background(), testCampaignID, "0x0000000000000000000000000000000000000000", []string{testToken})
	assert.True(t, errors.Is(err, ErrZeroAddress))

	_, err = service.ShutdownCampaign(context.Background(), testCampaignID, testFunder, []string{"0x0000000000000000000000000000000000000000"})
	assert.True(t, errors.Is(err, ErrZeroAddress))

	_, err = service.ShutdownCampaign(context.Background(), "", testFunder, []string{testToken})
	assert.True(t, errors.Is(err, ErrInvalidCampaign))
}

func TestServiceGetCampaignRootReadsThroughCache(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockDS := NewMockDatastore(mockCtrl)
	service := testService(mockDS)

	mockDS.EXPECT().GetCampaign(gomock.Eq(testCampaignID)).
		Return(&Campaign{ID: testCampaignID, MerkleRoot: testStubHash}, nil).
		Times(1)

	for i := 0; i < 3; i++ {
		root, err := service.GetCampaignRoot(context.Background(), testCampaignID)
		require.NoError(t, err)
		assert.Equal(t, testStubHash, root)
	}
}

func TestServiceGetCampaignRootUnknownCampaign(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockDS := NewMockDatastore(mockCtrl)
	service := testService(mockDS)

	mockDS.EXPECT().GetCampaign(gomock.Eq(testCampaignID)).Return(nil, nil)

	_, err := service.GetCampaignRoot(context.Background(), testCampaignID)
	assert.True(t, errors.Is(err, ErrCampaignNotFound))
}

func TestServiceTransfersUseCustodian(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	custodyAccount := "0x1000000000000000000000000000000000000001"
	mockClient := mock_custodian.NewMockClient(mockCtrl)
	service := testService(NewMockDatastore(mockCtrl))
	service.custodian = mockClient
	service.custodyAccount = custodyAccount

	amounts := []TokenAmount{{Token: testToken, Amount: decimal.NewFromInt(50)}}
	transfers := []custodian.TokenAmount{{Token: testToken, Amount: decimal.NewFromInt(50)}}

	mockClient.EXPECT().TransferFromBatch(gomock.Any(), gomock.Eq(testFunder), gomock.Eq(custodyAccount), gomock.Eq(transfers)).
		Return(&custodian.Transfer{}, nil)
	require.NoError(t, service.RefillTransfer(context.Background(), testFunder, amounts))

	mockClient.EXPECT().TransferBatch(gomock.Any(), gomock.Eq(testAlice), gomock.Eq(transfers)).
		Return(&custodian.Transfer{}, nil)
	require.NoError(t, service.PayoutTransfer(context.Background(), testAlice, amounts))

	mockClient.EXPECT().TransferBatch(gomock.Any(), gomock.Eq(testFunder), gomock.Eq(transfers)).
		Return(&custodian.Transfer{}, nil)
	require.NoError(t, service.SweepTransfer(context.Background(), testFunder, amounts))
}

func TestServiceTransfersSkipWithoutCustodian(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	service := testService(NewMockDatastore(mockCtrl))

	amounts := []TokenAmount{{Token: testToken, Amount: decimal.NewFromInt(50)}}
	assert.NoError(t, service.RefillTransfer(context.Background(), testFunder, amounts))
	assert.NoError(t, service.PayoutTransfer(context.Background(), testAlice, amounts))
	assert.NoError(t, service.SweepTransfer(context.Background(), testFunder, amounts))
}

func TestCanRetry_True(t *testing.T) {
	httpError := clients.NewHTTPError(errors.New(test.RandomString()), test.RandomString(),
		test.RandomString(), http.StatusRequestTimeout, nil)
	f := canRetry(nonRetriableErrors)
	assert.True(t, f(httpError))
}

func TestCanRetry_False(t *testing.T) {
	httpError := clients.NewHTTPError(errors.New(test.RandomString()), test.RandomString(),
		test.RandomString(), http.StatusForbidden, nil)
	f := canRetry(nonRetriableErrors)
	assert.False(t, f(httpError))
}

func TestRunNextActiveCampaignsCountJob(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockDS := NewMockDatastore(mockCtrl)
	service := testService(mockDS)

	mockDS.EXPECT().CountActiveCampaigns().Return(5, nil)

	attempted, err := service.RunNextActiveCampaignsCountJob(context.Background())
	require.NoError(t, err)
	assert.True(t, attempted)

	mockDS.EXPECT().CountActiveCampaigns().Return(0, errors.New("connection reset"))

	attempted, err = service.RunNextActiveCampaignsCountJob(context.Background())
	require.Error(t, err)
	assert.True(t, attempted)
}

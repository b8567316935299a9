package airdrop

import (
	"testing"
	"time"

	kafkautils "github.com/brave-intl/airdrop-go/libs/kafka"
	"github.com/linkedin/goavro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCodecs(t *testing.T) map[string]*goavro.Codec {
	t.Helper()
	codecs, err := kafkautils.GenerateCodecs(map[string]string{
		"campaignUpdated":  campaignUpdatedEventSchema,
		"claimed":          claimedEventSchema,
		"campaignShutDown": campaignShutDownEventSchema,
	})
	require.NoError(t, err)
	return codecs
}

func TestCampaignUpdatedEventCodec(t *testing.T) {
	codec := testCodecs(t)["campaignUpdated"]

	event := &CampaignUpdatedEvent{
		CampaignID: testCampaignID,
		MerkleRoot: testStubHash,
		Funder:     testFunder,
		CreatedAt:  time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
		Allocations: []TokenAmountEvent{
			{Token: testToken, Amount: "150"},
			{Token: testOtherToken, Amount: "250"},
		},
		Refills: []TokenAmountEvent{
			{Token: testToken, Amount: "50"},
			{Token: testOtherToken, Amount: "0"},
		},
	}

	binary, err := event.CodecEncode(codec)
	require.NoError(t, err)

	native, _, err := codec.NativeFromBinary(binary)
	require.NoError(t, err)
	textual, err := codec.TextualFromNative(nil, native)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"campaignId": "`+testCampaignID+`",
		"merkleRoot": "`+testStubHash+`",
		"funder": "`+testFunder+`",
		"createdAt": "2024-03-01T12:30:00Z",
		"allocations": [
			{ "token": "`+testToken+`", "amount": "150" },
			{ "token": "`+testOtherToken+`", "amount": "250" }
		],
		"refills": [
			{ "token": "`+testToken+`", "amount": "50" },
			{ "token": "`+testOtherToken+`", "amount": "0" }
		]
	}`, string(textual))
}

func TestClaimedEventCodec(t *testing.T) {
	codec := testCodecs(t)["claimed"]

	event := &ClaimedEvent{
		CampaignID: testCampaignID,
		Claimee:    testAlice,
		Recipient:  testBob,
		Caller:     testAlice,
		CreatedAt:  time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC),
		Paid: []TokenAmountEvent{
			{Token: testToken, Amount: "50"},
		},
	}

	binary, err := event.CodecEncode(codec)
	require.NoError(t, err)

	native, _, err := codec.NativeFromBinary(binary)
	require.NoError(t, err)
	textual, err := codec.TextualFromNative(nil, native)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"campaignId": "`+testCampaignID+`",
		"claimee": "`+testAlice+`",
		"recipient": "`+testBob+`",
		"caller": "`+testAlice+`",
		"createdAt": "2024-03-02T09:00:00Z",
		"paid": [
			{ "token": "`+testToken+`", "amount": "50" }
		]
	}`, string(textual))
}

func TestCampaignShutDownEventCodec(t *testing.T) {
	codec := testCodecs(t)["campaignShutDown"]

	event := &CampaignShutDownEvent{
		CampaignID: testCampaignID,
		Recipient:  testFunder,
		CreatedAt:  time.Date(2024, 3, 3, 18, 45, 0, 0, time.UTC),
		Swept: []TokenAmountEvent{
			{Token: testToken, Amount: "250"},
			{Token: testOtherToken, Amount: "0"},
		},
	}

	binary, err := event.CodecEncode(codec)
	require.NoError(t, err)

	native, _, err := codec.NativeFromBinary(binary)
	require.NoError(t, err)
	textual, err := codec.TextualFromNative(nil, native)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"campaignId": "`+testCampaignID+`",
		"recipient": "`+testFunder+`",
		"createdAt": "2024-03-03T18:45:00Z",
		"swept": [
			{ "token": "`+testToken+`", "amount": "250" },
			{ "token": "`+testOtherToken+`", "amount": "0" }
		]
	}`, string(textual))
}

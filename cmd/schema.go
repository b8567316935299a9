package cmd

import (
	"reflect"

	"github.com/brave-intl/airdrop-go/airdrop"
)

var (
	// APIResponseTypes - A list of all API response types used in airdrop services
	// primarily for auto generating the json-schema for each response type
	APIResponseTypes = []reflect.Type{
		reflect.TypeOf(airdrop.CampaignUpdateResponse{}),
		reflect.TypeOf(airdrop.MakeClaimResponse{}),
		reflect.TypeOf(airdrop.ShutdownResponse{}),
		reflect.TypeOf(airdrop.CampaignResponse{}),
		reflect.TypeOf(airdrop.RootResponse{}),
		reflect.TypeOf(airdrop.ClaimedAmountResponse{}),
	}
)

package airdrop

import (
	"time"

	"github.com/linkedin/goavro"
)

const campaignUpdatedEventSchema = `{
	"namespace": "brave.airdrop",
	"type": "record",
	"name": "campaignUpdated",
	"doc": "This message is sent when an admin publishes a root and raises allocations",
	"fields": [
		{ "name": "campaignId", "type": "string" },
		{ "name": "merkleRoot", "type": "string" },
		{ "name": "funder", "type": "string" },
		{ "name": "createdAt", "type": "string" },
		{ "name": "allocations",
		  "type": {
			"type": "array",
			"items": {
			  "type": "record",
			  "name": "tokenAmount",
			  "doc": "This record represents an amount of one token.",
			  "fields": [
				{ "name": "token", "type": "string" },
				{ "name": "amount", "type": "string" }
			  ]
			}
		  }
		},
		{ "name": "refills", "type": { "type": "array", "items": "tokenAmount" } }
	]}`

const claimedEventSchema = `{
	"namespace": "brave.airdrop",
	"type": "record",
	"name": "claimed",
	"doc": "This message is sent when a claim verifies and pays out",
	"fields": [
		{ "name": "campaignId", "type": "string" },
		{ "name": "claimee", "type": "string" },
		{ "name": "recipient", "type": "string" },
		{ "name": "caller", "type": "string" },
		{ "name": "createdAt", "type": "string" },
		{ "name": "paid",
		  "type": {
			"type": "array",
			"items": {
			  "type": "record",
			  "name": "tokenAmount",
			  "fields": [
				{ "name": "token", "type": "string" },
				{ "name": "amount", "type": "string" }
			  ]
			}
		  }
		}
	]}`

const campaignShutDownEventSchema = `{
	"namespace": "brave.airdrop",
	"type": "record",
	"name": "campaignShutDown",
	"doc": "This message is sent when an admin retires a campaign and sweeps the remainder",
	"fields": [
		{ "name": "campaignId", "type": "string" },
		{ "name": "recipient", "type": "string" },
		{ "name": "createdAt", "type": "string" },
		{ "name": "swept",
		  "type": {
			"type": "array",
			"items": {
			  "type": "record",
			  "name": "tokenAmount",
			  "fields": [
				{ "name": "token", "type": "string" },
				{ "name": "amount", "type": "string" }
			  ]
			}
		  }
		}
	]}`

// TokenAmountEvent - a token and amount pair as written to kafka
type TokenAmountEvent struct {
	Token  string `json:"token"`
	Amount string `json:"amount"`
}

// tokenAmountEvents converts token amounts into their logged form.
func tokenAmountEvents(amounts []TokenAmount) []TokenAmountEvent {
	events := make([]TokenAmountEvent, len(amounts))
	for i, amount := range amounts {
		events[i] = TokenAmountEvent{Token: amount.Token, Amount: amount.Amount.String()}
	}
	return events
}

// CampaignUpdatedEvent - kafka campaign updated event
type CampaignUpdatedEvent struct {
	CampaignID  string             `json:"campaignId"`
	MerkleRoot  string             `json:"merkleRoot"`
	Funder      string             `json:"funder"`
	CreatedAt   time.Time          `json:"createdAt"`
	Allocations []TokenAmountEvent `json:"allocations"`
	Refills     []TokenAmountEvent `json:"refills"`
}

// CodecEncode - encode using avro campaign updated codec
func (e *CampaignUpdatedEvent) CodecEncode(codec *goavro.Codec) ([]byte, error) {
	return codec.BinaryFromNative(nil, map[string]interface{}{
		"campaignId":  e.CampaignID,
		"merkleRoot":  e.MerkleRoot,
		"funder":      e.Funder,
		"createdAt":   e.CreatedAt.Format(time.RFC3339),
		"allocations": tokenAmountEventsNative(e.Allocations),
		"refills":     tokenAmountEventsNative(e.Refills),
	})
}

// ClaimedEvent - kafka claimed event
type ClaimedEvent struct {
	CampaignID string             `json:"campaignId"`
	Claimee    string             `json:"claimee"`
	Recipient  string             `json:"recipient"`
	Caller     string             `json:"caller"`
	CreatedAt  time.Time          `json:"createdAt"`
	Paid       []TokenAmountEvent `json:"paid"`
}

// CodecEncode - encode using avro claimed codec
func (e *ClaimedEvent) CodecEncode(codec *goavro.Codec) ([]byte, error) {
	return codec.BinaryFromNative(nil, map[string]interface{}{
		"campaignId": e.CampaignID,
		"claimee":    e.Claimee,
		"recipient":  e.Recipient,
		"caller":     e.Caller,
		"createdAt":  e.CreatedAt.Format(time.RFC3339),
		"paid":       tokenAmountEventsNative(e.Paid),
	})
}

// CampaignShutDownEvent - kafka campaign shut down event
type CampaignShutDownEvent struct {
	CampaignID string             `json:"campaignId"`
	Recipient  string             `json:"recipient"`
	CreatedAt  time.Time          `json:"createdAt"`
	Swept      []TokenAmountEvent `json:"swept"`
}

// CodecEncode - encode using avro campaign shut down codec
func (e *CampaignShutDownEvent) CodecEncode(codec *goavro.Codec) ([]byte, error) {
	return codec.BinaryFromNative(nil, map[string]interface{}{
		"campaignId": e.CampaignID,
		"recipient":  e.Recipient,
		"createdAt":  e.CreatedAt.Format(time.RFC3339),
		"swept":      tokenAmountEventsNative(e.Swept),
	})
}

// tokenAmountEventsNative converts logged token amount events into the
// native form the avro codecs expect.
func tokenAmountEventsNative(events []TokenAmountEvent) []interface{} {
	native := make([]interface{}, len(events))
	for i, event := range events {
		native[i] = map[string]interface{}{
			"token":  event.Token,
			"amount": event.Amount,
		}
	}
	return native
}

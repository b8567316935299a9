package airdrop

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/brave-intl/airdrop-go/libs/access"
	"github.com/brave-intl/airdrop-go/libs/clients"
	"github.com/brave-intl/airdrop-go/libs/handlers"
	"github.com/brave-intl/airdrop-go/libs/inputs"
	"github.com/brave-intl/airdrop-go/libs/middleware"
	"github.com/go-chi/chi"
	"github.com/shopspring/decimal"
)

// Router for campaign endpoints
func Router(service *Service) chi.Router {
	r := chi.NewRouter()
	adminOnly := middleware.RoleAuthorizedOnly(service.Capability(), access.RoleAdmin)

	r.Method("PUT", "/campaigns/{campaignId}", adminOnly(middleware.InstrumentHandler("UpdateCampaign", UpdateCampaign(service))))
	r.Method("DELETE", "/campaigns/{campaignId}", adminOnly(middleware.InstrumentHandler("ShutdownCampaign", ShutdownCampaign(service))))
	r.Method("POST", "/campaigns/{campaignId}/claims", middleware.InstrumentHandler("MakeClaim", MakeClaim(service)))

	r.Method("GET", "/campaigns/{campaignId}", middleware.InstrumentHandler("GetCampaign", GetCampaign(service)))
	r.Method("GET", "/campaigns/{campaignId}/root", middleware.InstrumentHandler("GetCampaignRoot", GetCampaignRoot(service)))
	r.Method("GET", "/campaigns/{campaignId}/tokens/{token}", middleware.InstrumentHandler("GetCampaignTokenTotals", GetCampaignTokenTotals(service)))
	r.Method("GET", "/campaigns/{campaignId}/tokens/{token}/claimed/{claimee}", middleware.InstrumentHandler("GetClaimedAmount", GetClaimedAmount(service)))
	r.Method("GET", "/claims/{claimKey}", middleware.InstrumentHandler("GetClaimByKey", GetClaimByKey(service)))
	r.Method("GET", "/totals/{airdropKey}", middleware.InstrumentHandler("GetTotalsByKey", GetTotalsByKey(service)))

	r.Mount("/roles", RolesRouter(service))
	return r
}

// RolesRouter for role membership endpoints
func RolesRouter(service *Service) chi.Router {
	r := chi.NewRouter()
	superAdminOnly := middleware.RoleAuthorizedOnly(service.Capability(), access.RoleSuperAdmin)

	r.Method("POST", "/{role}/grants", superAdminOnly(middleware.InstrumentHandler("GrantRole", GrantRole(service))))
	r.Method("DELETE", "/{role}/grants/{token}", superAdminOnly(middleware.InstrumentHandler("RevokeRole", RevokeRole(service))))
	return r
}

// appError maps domain errors onto the http error envelope
func appError(err error, msg string) *handlers.AppError {
	switch {
	case errors.Is(err, ErrCampaignNotFound):
		return handlers.WrapError(err, msg, http.StatusNotFound)
	case errors.Is(err, ErrAlreadyClaimed):
		return handlers.WrapError(err, msg, http.StatusConflict)
	case errors.Is(err, ErrInvalidProof):
		return handlers.WrapError(err, msg, http.StatusForbidden)
	case errors.Is(err, ErrInvalidCampaign),
		errors.Is(err, ErrInvalidMerkleRoot),
		errors.Is(err, ErrInvalidTokenAmount),
		errors.Is(err, ErrZeroAddress):
		return handlers.WrapError(err, msg, http.StatusBadRequest)
	}

	if state, uerr := clients.UnwrapHTTPState(err); uerr == nil {
		return &handlers.AppError{
			Cause:   err,
			Message: msg + ": custodian call failed",
			Code:    http.StatusBadGateway,
			Data:    state,
		}
	}
	return handlers.WrapError(err, msg, http.StatusInternalServerError)
}

// readRequest decodes a json request body into v
func readRequest(r *http.Request, v interface{}) *handlers.AppError {
	limit := int64(1024 * 1024 * 10) // 10MiB
	body, err := io.ReadAll(io.LimitReader(r.Body, limit))
	if err != nil {
		return handlers.WrapError(err, "Error reading body", http.StatusInternalServerError)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return handlers.WrapError(err, "Error unmarshalling body", http.StatusBadRequest)
	}
	return nil
}

// campaignIDParam decodes and validates the campaignId url parameter
func campaignIDParam(r *http.Request) (string, *handlers.AppError) {
	var campaignID inputs.Hash
	if err := inputs.DecodeAndValidateString(r.Context(), &campaignID, chi.URLParam(r, "campaignId")); err != nil {
		return "", handlers.ValidationError("request url parameter", map[string]string{
			"campaignId": err.Error(),
		})
	}
	return campaignID.String(), nil
}

// addressParam decodes and validates an address url parameter
func addressParam(r *http.Request, name string) (string, *handlers.AppError) {
	var addr inputs.Address
	if err := inputs.DecodeAndValidateString(r.Context(), &addr, chi.URLParam(r, name)); err != nil {
		return "", handlers.ValidationError("request url parameter", map[string]string{
			name: err.Error(),
		})
	}
	return addr.Lower(), nil
}

// TokenAmountRequest is one per token entry in a request body
type TokenAmountRequest struct {
	Token  string          `json:"token"`
	Amount decimal.Decimal `json:"amount"`
}

// allocationsFromRequest normalizes request entries into token amounts,
// returning field keyed validation errors on malformed addresses
func allocationsFromRequest(r *http.Request, entries []TokenAmountRequest) ([]TokenAmount, *handlers.AppError) {
	allocations := make([]TokenAmount, len(entries))
	for i, entry := range entries {
		token, err := inputs.NewAddress(r.Context(), entry.Token)
		if err != nil {
			return nil, handlers.ValidationError("request body", map[string]string{
				fmt.Sprintf("allocations.%d.token", i): err.Error(),
			})
		}
		allocations[i] = TokenAmount{Token: token.Lower(), Amount: entry.Amount}
	}
	return allocations, nil
}

// CampaignUpdateRequest is a request to publish a new root and raise allocations
type CampaignUpdateRequest struct {
	MerkleRoot  string               `json:"merkleRoot"`
	Funder      string               `json:"funder"`
	Allocations []TokenAmountRequest `json:"allocations"`
}

// CampaignUpdateResponse reports the refill pulled for each token
type CampaignUpdateResponse struct {
	CampaignID string        `json:"campaignId"`
	MerkleRoot string        `json:"merkleRoot"`
	Refills    []TokenAmount `json:"refills"`
}

// UpdateCampaign is the handler for publishing a campaign root and raising allocations
func UpdateCampaign(service *Service) handlers.AppHandler {
	return handlers.AppHandler(func(w http.ResponseWriter, r *http.Request) *handlers.AppError {
		campaignID, appErr := campaignIDParam(r)
		if appErr != nil {
			return appErr
		}

		var req CampaignUpdateRequest
		if appErr := readRequest(r, &req); appErr != nil {
			return appErr
		}

		root, err := inputs.NewHash(r.Context(), req.MerkleRoot)
		if err != nil {
			return handlers.ValidationError("request body", map[string]string{
				"merkleRoot": err.Error(),
			})
		}
		funder, err := inputs.NewAddress(r.Context(), req.Funder)
		if err != nil {
			return handlers.ValidationError("request body", map[string]string{
				"funder": err.Error(),
			})
		}
		allocations, appErr := allocationsFromRequest(r, req.Allocations)
		if appErr != nil {
			return appErr
		}

		refills, err := service.UpdateCampaign(r.Context(), &CampaignUpdate{
			CampaignID:  campaignID,
			MerkleRoot:  root.String(),
			Funder:      funder.Lower(),
			Allocations: allocations,
		})
		if err != nil {
			return appError(err, "Error updating campaign")
		}

		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(&CampaignUpdateResponse{
			CampaignID: campaignID,
			MerkleRoot: root.String(),
			Refills:    refills,
		}); err != nil {
			panic(err)
		}
		return nil
	})
}

// MakeClaimRequest is a request to claim a committed allocation
type MakeClaimRequest struct {
	Claimee     string               `json:"claimee"`
	Recipient   string               `json:"recipient,omitempty"`
	Allocations []TokenAmountRequest `json:"allocations"`
	Proof       []string             `json:"proof"`
}

// MakeClaimResponse reports the amount paid for each token
type MakeClaimResponse struct {
	CampaignID string        `json:"campaignId"`
	Claimee    string        `json:"claimee"`
	Recipient  string        `json:"recipient"`
	Paid       []TokenAmount `json:"paid"`
}

// MakeClaim is the handler for claiming against a campaign root
func MakeClaim(service *Service) handlers.AppHandler {
	return handlers.AppHandler(func(w http.ResponseWriter, r *http.Request) *handlers.AppError {
		campaignID, appErr := campaignIDParam(r)
		if appErr != nil {
			return appErr
		}

		var req MakeClaimRequest
		if appErr := readRequest(r, &req); appErr != nil {
			return appErr
		}

		claimee, err := inputs.NewAddress(r.Context(), req.Claimee)
		if err != nil {
			return handlers.ValidationError("request body", map[string]string{
				"claimee": err.Error(),
			})
		}
		recipient := claimee.Lower()
		if len(req.Recipient) > 0 {
			to, err := inputs.NewAddress(r.Context(), req.Recipient)
			if err != nil {
				return handlers.ValidationError("request body", map[string]string{
					"recipient": err.Error(),
				})
			}
			recipient = to.Lower()
		}
		allocations, appErr := allocationsFromRequest(r, req.Allocations)
		if appErr != nil {
			return appErr
		}
		proof := make([]string, len(req.Proof))
		for i, node := range req.Proof {
			h, err := inputs.NewHash(r.Context(), node)
			if err != nil {
				return handlers.ValidationError("request body", map[string]string{
					fmt.Sprintf("proof.%d", i): err.Error(),
				})
			}
			proof[i] = h.String()
		}

		paid, err := service.Claim(r.Context(), claimee.Lower(), &ClaimRequest{
			CampaignID:  campaignID,
			Claimee:     claimee.Lower(),
			Recipient:   recipient,
			Allocations: allocations,
			Proof:       proof,
		})
		if err != nil {
			return appError(err, "Error claiming allocation")
		}

		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(&MakeClaimResponse{
			CampaignID: campaignID,
			Claimee:    claimee.Lower(),
			Recipient:  recipient,
			Paid:       paid,
		}); err != nil {
			panic(err)
		}
		return nil
	})
}

// ShutdownRequest is a request to retire a campaign and sweep its remainder
type ShutdownRequest struct {
	Recipient string   `json:"recipient"`
	Tokens    []string `json:"tokens"`
}

// ShutdownResponse reports the amount swept for each token
type ShutdownResponse struct {
	CampaignID string        `json:"campaignId"`
	Recipient  string        `json:"recipient"`
	Swept      []TokenAmount `json:"swept"`
}

// ShutdownCampaign is the handler for retiring a campaign
func ShutdownCampaign(service *Service) handlers.AppHandler {
	return handlers.AppHandler(func(w http.ResponseWriter, r *http.Request) *handlers.AppError {
		campaignID, appErr := campaignIDParam(r)
		if appErr != nil {
			return appErr
		}

		var req ShutdownRequest
		if appErr := readRequest(r, &req); appErr != nil {
			return appErr
		}

		recipient, err := inputs.NewAddress(r.Context(), req.Recipient)
		if err != nil {
			return handlers.ValidationError("request body", map[string]string{
				"recipient": err.Error(),
			})
		}
		tokens := make([]string, len(req.Tokens))
		for i, raw := range req.Tokens {
			token, err := inputs.NewAddress(r.Context(), raw)
			if err != nil {
				return handlers.ValidationError("request body", map[string]string{
					fmt.Sprintf("tokens.%d", i): err.Error(),
				})
			}
			tokens[i] = token.Lower()
		}

		swept, err := service.ShutdownCampaign(r.Context(), campaignID, recipient.Lower(), tokens)
		if err != nil {
			return appError(err, "Error shutting down campaign")
		}

		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(&ShutdownResponse{
			CampaignID: campaignID,
			Recipient:  recipient.Lower(),
			Swept:      swept,
		}); err != nil {
			panic(err)
		}
		return nil
	})
}

// CampaignResponse is the detail view of a campaign and its tokens
type CampaignResponse struct {
	Campaign
	Tokens []CampaignToken `json:"tokens"`
}

// GetCampaign is the handler for reading a campaign and its token totals
func GetCampaign(service *Service) handlers.AppHandler {
	return handlers.AppHandler(func(w http.ResponseWriter, r *http.Request) *handlers.AppError {
		campaignID, appErr := campaignIDParam(r)
		if appErr != nil {
			return appErr
		}

		campaign, err := service.ReadableDatastore().GetCampaign(campaignID)
		if err != nil {
			return handlers.WrapError(err, "Error getting campaign", http.StatusInternalServerError)
		}
		if campaign == nil {
			return &handlers.AppError{
				Message: "Campaign does not exist",
				Code:    http.StatusNotFound,
				Data:    map[string]interface{}{},
			}
		}
		campaignTokens, err := service.ReadableDatastore().GetCampaignTokens(campaignID)
		if err != nil {
			return handlers.WrapError(err, "Error getting campaign tokens", http.StatusInternalServerError)
		}

		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(&CampaignResponse{
			Campaign: *campaign,
			Tokens:   campaignTokens,
		}); err != nil {
			panic(err)
		}
		return nil
	})
}

// RootResponse carries the published root for a campaign
type RootResponse struct {
	CampaignID string `json:"campaignId"`
	MerkleRoot string `json:"merkleRoot"`
}

// GetCampaignRoot is the handler for reading a campaign's published root
func GetCampaignRoot(service *Service) handlers.AppHandler {
	return handlers.AppHandler(func(w http.ResponseWriter, r *http.Request) *handlers.AppError {
		campaignID, appErr := campaignIDParam(r)
		if appErr != nil {
			return appErr
		}

		root, err := service.GetCampaignRoot(r.Context(), campaignID)
		if err != nil {
			return appError(err, "Error getting campaign root")
		}

		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(&RootResponse{
			CampaignID: campaignID,
			MerkleRoot: root,
		}); err != nil {
			panic(err)
		}
		return nil
	})
}

// GetCampaignTokenTotals is the handler for reading one token's totals in a campaign
func GetCampaignTokenTotals(service *Service) handlers.AppHandler {
	return handlers.AppHandler(func(w http.ResponseWriter, r *http.Request) *handlers.AppError {
		campaignID, appErr := campaignIDParam(r)
		if appErr != nil {
			return appErr
		}
		token, appErr := addressParam(r, "token")
		if appErr != nil {
			return appErr
		}

		campaignToken, err := service.ReadableDatastore().GetCampaignToken(campaignID, token)
		if err != nil {
			return handlers.WrapError(err, "Error getting campaign token", http.StatusInternalServerError)
		}
		if campaignToken == nil {
			return &handlers.AppError{
				Message: "Token was never allocated for this campaign",
				Code:    http.StatusNotFound,
				Data:    map[string]interface{}{},
			}
		}

		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(campaignToken); err != nil {
			panic(err)
		}
		return nil
	})
}

// ClaimedAmountResponse carries the running claim total for one claimee
type ClaimedAmountResponse struct {
	CampaignID    string          `json:"campaignId"`
	Token         string          `json:"token"`
	Claimee       string          `json:"claimee"`
	AmountClaimed decimal.Decimal `json:"amountClaimed"`
}

// GetClaimedAmount is the handler for reading a claimee's running claim total
func GetClaimedAmount(service *Service) handlers.AppHandler {
	return handlers.AppHandler(func(w http.ResponseWriter, r *http.Request) *handlers.AppError {
		campaignID, appErr := campaignIDParam(r)
		if appErr != nil {
			return appErr
		}
		token, appErr := addressParam(r, "token")
		if appErr != nil {
			return appErr
		}
		claimee, appErr := addressParam(r, "claimee")
		if appErr != nil {
			return appErr
		}

		record, err := service.ReadableDatastore().GetClaimRecord(campaignID, token, claimee)
		if err != nil {
			return handlers.WrapError(err, "Error getting claim record", http.StatusInternalServerError)
		}

		resp := &ClaimedAmountResponse{
			CampaignID:    campaignID,
			Token:         token,
			Claimee:       claimee,
			AmountClaimed: decimal.Zero,
		}
		if record != nil {
			resp.AmountClaimed = record.AmountClaimed
		}

		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			panic(err)
		}
		return nil
	})
}

// GetClaimByKey is the handler for reading a claim record by its derived key
func GetClaimByKey(service *Service) handlers.AppHandler {
	return handlers.AppHandler(func(w http.ResponseWriter, r *http.Request) *handlers.AppError {
		var claimKey inputs.Hash
		if err := inputs.DecodeAndValidateString(r.Context(), &claimKey, chi.URLParam(r, "claimKey")); err != nil {
			return handlers.ValidationError("request url parameter", map[string]string{
				"claimKey": err.Error(),
			})
		}

		record, err := service.ReadableDatastore().GetClaimRecordByClaimKey(claimKey.String())
		if err != nil {
			return handlers.WrapError(err, "Error getting claim record", http.StatusInternalServerError)
		}
		if record == nil {
			return &handlers.AppError{
				Message: "Claim record does not exist",
				Code:    http.StatusNotFound,
				Data:    map[string]interface{}{},
			}
		}

		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(record); err != nil {
			panic(err)
		}
		return nil
	})
}

// GetTotalsByKey is the handler for reading token totals by their derived key
func GetTotalsByKey(service *Service) handlers.AppHandler {
	return handlers.AppHandler(func(w http.ResponseWriter, r *http.Request) *handlers.AppError {
		var airdropKey inputs.Hash
		if err := inputs.DecodeAndValidateString(r.Context(), &airdropKey, chi.URLParam(r, "airdropKey")); err != nil {
			return handlers.ValidationError("request url parameter", map[string]string{
				"airdropKey": err.Error(),
			})
		}

		campaignToken, err := service.ReadableDatastore().GetCampaignTokenByAirdropKey(airdropKey.String())
		if err != nil {
			return handlers.WrapError(err, "Error getting campaign token", http.StatusInternalServerError)
		}
		if campaignToken == nil {
			return &handlers.AppError{
				Message: "Totals do not exist",
				Code:    http.StatusNotFound,
				Data:    map[string]interface{}{},
			}
		}

		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(campaignToken); err != nil {
			panic(err)
		}
		return nil
	})
}

// RoleGrantRequest names the bearer token receiving or losing a role
type RoleGrantRequest struct {
	Token string `json:"token"`
}

// roleParam validates the role url parameter
func roleParam(r *http.Request) (string, *handlers.AppError) {
	role := chi.URLParam(r, "role")
	if role != access.RoleAdmin && role != access.RoleSuperAdmin {
		return "", handlers.ValidationError("request url parameter", map[string]string{
			"role": fmt.Sprintf("role '%s' is not supported", role),
		})
	}
	return role, nil
}

// GrantRole is the handler for granting a role to a bearer token
func GrantRole(service *Service) handlers.AppHandler {
	return handlers.AppHandler(func(w http.ResponseWriter, r *http.Request) *handlers.AppError {
		role, appErr := roleParam(r)
		if appErr != nil {
			return appErr
		}

		var req RoleGrantRequest
		if appErr := readRequest(r, &req); appErr != nil {
			return appErr
		}
		if len(req.Token) == 0 {
			return handlers.ValidationError("request body", map[string]string{
				"token": "token must not be empty",
			})
		}

		service.GrantRole(role, req.Token)

		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(map[string]string{"role": role}); err != nil {
			panic(err)
		}
		return nil
	})
}

// RevokeRole is the handler for revoking a role from a bearer token
func RevokeRole(service *Service) handlers.AppHandler {
	return handlers.AppHandler(func(w http.ResponseWriter, r *http.Request) *handlers.AppError {
		role, appErr := roleParam(r)
		if appErr != nil {
			return appErr
		}

		token := chi.URLParam(r, "token")
		if len(token) == 0 {
			return handlers.ValidationError("request url parameter", map[string]string{
				"token": "token must not be empty",
			})
		}

		service.RevokeRole(role, token)

		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(map[string]string{"role": role}); err != nil {
			panic(err)
		}
		return nil
	})
}

package service

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/bridge-tracker/pkg/app/errors"
	apphttp "github.com/chainsafe/bridge-tracker/pkg/app/http"
	"github.com/chainsafe/bridge-tracker/pkg/auth"
	"github.com/chainsafe/bridge-tracker/pkg/fees"
	"github.com/chainsafe/bridge-tracker/pkg/tracker"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service     Service
	authEnabled bool
	logger      *zap.Logger
}

// feeRequest is the wire form of fees.Request with hex encoded calldata.
type feeRequest struct {
	ChainID          uint64 `json:"chainId"`
	To               string `json:"to"`
	Data             string `json:"data"`
	ContractCreation bool   `json:"contractCreation"`
}

// RegisterRoutes registers the tracker endpoints on the given chi router.
// Mutating per-address routes require a bearer token from tokens when it is
// not nil.
func RegisterRoutes(r chi.Router, service Service, tokens *auth.TokenIssuer, logger *zap.Logger) {
	h := &HTTP{
		service:     service,
		authEnabled: tokens != nil,
		logger:      logger,
	}

	r.Put("/sessions/{session}", apphttp.HandleError(h.selectSession))
	r.Delete("/sessions/{session}", apphttp.HandleError(h.stopSession))
	r.Get("/sessions/{session}/transfers", apphttp.HandleError(h.sessionTransfers))

	r.Route("/transfers/{networkType}/{address}", func(r chi.Router) {
		r.Get("/", apphttp.HandleError(h.transfers))
		r.Get("/notifications", apphttp.HandleError(h.notifications))

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(tokens))
			r.Post("/notifications/seen", apphttp.HandleError(h.markSeen))
			r.Post("/{hash}/claim", apphttp.HandleError(h.claim))
		})
	})

	r.Post("/fees/retryable", apphttp.HandleError(h.estimateFee))
	r.Post("/auth/token", apphttp.HandleError(h.issueToken))
}

func (h *HTTP) selectSession(w http.ResponseWriter, r *http.Request) error {
	var req tracker.SelectRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.service.SelectSession(r.Context(), chi.URLParam(r, "session"), &req)
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) stopSession(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.StopSession(r.Context(), chi.URLParam(r, "session")); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *HTTP) sessionTransfers(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.SessionTransfers(r.Context(), chi.URLParam(r, "session"))
	if err != nil {
		return err
	}

	status := http.StatusOK
	if resp.Pending {
		status = http.StatusAccepted
	}
	h.writeJSON(w, status, resp)
	return nil
}

func (h *HTTP) transfers(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.Transfers(r.Context(), chi.URLParam(r, "networkType"), chi.URLParam(r, "address"))
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) notifications(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.Notifications(r.Context(), chi.URLParam(r, "networkType"), chi.URLParam(r, "address"))
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) markSeen(w http.ResponseWriter, r *http.Request) error {
	address := chi.URLParam(r, "address")
	if err := auth.RequireOwner(r, address, h.authEnabled); err != nil {
		return err
	}

	resp, err := h.service.MarkSeen(r.Context(), chi.URLParam(r, "networkType"), address)
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) claim(w http.ResponseWriter, r *http.Request) error {
	address := chi.URLParam(r, "address")
	if err := auth.RequireOwner(r, address, h.authEnabled); err != nil {
		return err
	}

	resp, err := h.service.Claim(r.Context(), chi.URLParam(r, "networkType"), address, chi.URLParam(r, "hash"))
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) estimateFee(w http.ResponseWriter, r *http.Request) error {
	var body feeRequest
	if err := apphttp.DecodeJSON(r, &body); err != nil {
		return err
	}
	if !common.IsHexAddress(body.To) {
		return apperrors.BadRequestError(nil, "invalid to address")
	}

	req := fees.Request{
		ChainID:          body.ChainID,
		To:               common.HexToAddress(body.To),
		ContractCreation: body.ContractCreation,
	}
	if body.Data != "" {
		data, err := hexutil.Decode(body.Data)
		if err != nil {
			return apperrors.BadRequestError(err, "invalid calldata")
		}
		req.Data = data
	}

	resp, err := h.service.EstimateFee(r.Context(), &req)
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) issueToken(w http.ResponseWriter, r *http.Request) error {
	var req tracker.TokenRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.service.IssueToken(r.Context(), &req)
	if err != nil {
		return err
	}

	h.writeJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) writeJSON(w http.ResponseWriter, status int, data any) {
	if err := apphttp.WriteJSON(w, status, data); err != nil {
		h.logger.Warn("Failed to encode response", zap.Error(err))
	}
}

package historyfeed

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

const (
	reasonDecode      = "decode"
	reasonInvalid     = "invalid_field"
	reasonMissingKey  = "missing_key"
	reasonUnknownKind = "unknown_kind"
)

// rawRecord is the indexer's wire shape. The amount may arrive as a JSON
// string or number; every other numeric field must be a bare number.
type rawRecord struct {
	Type   string      `json:"type" validate:"required"`
	Amount json.Number `json:"amount"`

	ParentNetworkChainID uint64 `json:"parentNetworkChainId" validate:"required"`
	ChildNetworkChainID  uint64 `json:"childNetworkChainId" validate:"required,nefield=ParentNetworkChainID"`
	ParentNetworkHash    string `json:"parentNetworkHash" validate:"omitempty,txhash"`
	ChildNetworkHash     string `json:"childNetworkHash" validate:"omitempty,txhash"`

	ParentNetworkTimestamp *int64 `json:"parentNetworkTimestamp" validate:"omitempty,gte=0"`
	ChildNetworkTimestamp  *int64 `json:"childNetworkTimestamp" validate:"omitempty,gte=0"`
	CompletionTimestamp    *int64 `json:"completionTimestamp" validate:"omitempty,gte=0"`
	ClaimableTimestamp     *int64 `json:"claimableTimestamp" validate:"omitempty,gte=0"`
	ChallengePeriod        int64  `json:"challengePeriod" validate:"gte=0"`

	Token            string `json:"token" validate:"omitempty,eth_addr"`
	OriginToken      string `json:"origin_token" validate:"omitempty,eth_addr"`
	DestinationToken string `json:"destination_token" validate:"omitempty,eth_addr"`
	Symbol           string `json:"symbol" validate:"max=32"`
	IsCCTP           bool   `json:"isCctp"`
}

// Quarantined is a raw record rejected at ingestion.
type Quarantined struct {
	Raw    json.RawMessage `json:"raw"`
	Reason string          `json:"reason"`
	Err    string          `json:"error"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("txhash", func(fl validator.FieldLevel) bool {
		return transfer.IsTxHash(fl.Field().String())
	})
	return v
}

// decodeRecord turns one raw element into a record, or reports why it was
// quarantined.
func decodeRecord(v *validator.Validate, raw json.RawMessage) (transfer.Record, *Quarantined) {
	quarantine := func(reason string, err error) (transfer.Record, *Quarantined) {
		return transfer.Record{}, &Quarantined{Raw: raw, Reason: reason, Err: err.Error()}
	}

	var r rawRecord
	if err := json.Unmarshal(raw, &r); err != nil {
		return quarantine(reasonDecode, err)
	}
	if err := v.Struct(&r); err != nil {
		return quarantine(reasonInvalid, err)
	}

	kind := transfer.Kind(strings.ToUpper(r.Type))
	if !kind.Valid() {
		return quarantine(reasonUnknownKind, fmt.Errorf("unknown type %q", r.Type))
	}

	amount := r.Amount.String()
	if amount == "" {
		amount = "0"
	}
	if err := transfer.ValidateAmount(amount); err != nil {
		return quarantine(reasonInvalid, err)
	}

	token := r.Token
	if token == "" {
		token = r.OriginToken
	}

	rec := transfer.Record{
		Kind:                    kind,
		Amount:                  amount,
		OriginChainID:           r.ParentNetworkChainID,
		DestinationChainID:      r.ChildNetworkChainID,
		OriginHash:              r.ParentNetworkHash,
		DestinationHash:         r.ChildNetworkHash,
		OriginTimestamp:         positive(r.ParentNetworkTimestamp),
		DestinationTimestamp:    positive(r.ChildNetworkTimestamp),
		CompletionTimestamp:     positive(r.CompletionTimestamp),
		ClaimableTimestamp:      positive(r.ClaimableTimestamp),
		ChallengePeriodSeconds:  r.ChallengePeriod,
		TokenAddress:            token,
		DestinationTokenAddress: r.DestinationToken,
		Symbol:                  r.Symbol,
		CCTP:                    r.IsCCTP,
	}
	if rec.Key() == "" {
		return quarantine(reasonMissingKey, errors.New("record has no dedup key"))
	}
	return rec, nil
}

// positive maps the indexer's zero placeholder to unset.
func positive(v *int64) *int64 {
	if v == nil || *v <= 0 {
		return nil
	}
	return transfer.Int64(*v)
}

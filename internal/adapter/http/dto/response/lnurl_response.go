package response

import (
	"bitcoinswitch/internal/usecase"
)

const (
	lnurlPayTag    = "payRequest"
	lnurlStatusErr = "ERROR"
	lnurlStatusOK  = "OK"
)

type AssetMetadataResponse struct {
	SupportsRfq bool   `json:"supportsRfq"`
	Message     string `json:"message"`
	RfqEnabled  bool   `json:"rfqEnabled"`
}

// PayRequestResponse is the LNURL-pay first step. Sendable amounts are in msat.
type PayRequestResponse struct {
	Tag              string                 `json:"tag"`
	Callback         string                 `json:"callback"`
	MinSendable      int64                  `json:"minSendable"`
	MaxSendable      int64                  `json:"maxSendable"`
	Metadata         string                 `json:"metadata"`
	CommentAllowed   int                    `json:"commentAllowed"`
	AcceptsAssets    bool                   `json:"acceptsAssets,omitempty"`
	AcceptedAssetIDs []string               `json:"acceptedAssetIds,omitempty"`
	AssetMetadata    *AssetMetadataResponse `json:"assetMetadata,omitempty"`
}

type SuccessAction struct {
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// InvoiceResponse is the LNURL-pay callback answer.
type InvoiceResponse struct {
	PR            string        `json:"pr"`
	SuccessAction SuccessAction `json:"successAction"`
	Routes        []any         `json:"routes"`
}

// LNURLError is the error envelope wallets understand.
type LNURLError struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

func FromQuote(q usecase.QuoteResult) PayRequestResponse {
	res := PayRequestResponse{
		Tag:            lnurlPayTag,
		Callback:       q.Callback,
		MinSendable:    q.MinSendable,
		MaxSendable:    q.MaxSendable,
		Metadata:       q.Metadata,
		CommentAllowed: q.CommentAllowed,
	}
	if q.AcceptsAssets {
		res.AcceptsAssets = true
		res.AcceptedAssetIDs = q.AcceptedAssetIDs
	}
	if q.AssetMetadata != nil {
		res.AssetMetadata = &AssetMetadataResponse{
			SupportsRfq: q.AssetMetadata.SupportsRfq,
			Message:     q.AssetMetadata.Message,
			RfqEnabled:  q.AssetMetadata.RfqEnabled,
		}
	}
	return res
}

func FromInvoice(inv usecase.InvoiceResult) InvoiceResponse {
	return InvoiceResponse{
		PR:            inv.PaymentRequest,
		SuccessAction: SuccessAction{Tag: "message", Message: inv.SuccessMessage},
		Routes:        []any{},
	}
}

func NewLNURLError(reason string) LNURLError {
	return LNURLError{Status: lnurlStatusErr, Reason: reason}
}

func NewStatusOK() StatusResponse {
	return StatusResponse{Status: lnurlStatusOK}
}

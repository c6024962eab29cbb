package oauthmodel

import (
	"github.com/jrsteele09/go-authlete/enum"
	"github.com/jrsteele09/go-authlete/oauth2"
)

// PushedAuthReqRequest forwards an RFC 9126 pushed authorization request.
type PushedAuthReqRequest struct {
	Parameters string `json:"parameters"`
	ClientCredentials
	DPoPProof
}

func (r *PushedAuthReqRequest) Validate() error {
	if err := requireString("PushedAuthReqRequest", "parameters", r.Parameters); err != nil {
		return err
	}
	return r.DPoPProof.validate("PushedAuthReqRequest")
}

// PushedAuthReqResponse carries the request_uri to return to the client when Action is CREATED.
type PushedAuthReqResponse struct {
	ApiResult
	Action           PushedAuthReqAction                    `json:"action"`
	ResponseContent  *string                                `json:"responseContent,omitempty"`
	ClientAuthMethod enum.Optional[oauth2.ClientAuthMethod] `json:"clientAuthMethod,omitzero"`
	RequestURI       *string                                `json:"requestUri,omitempty"`
	DPoPNonce        *string                                `json:"dpopNonce,omitempty"`
}

package oauthmodel

// HskCreateRequest creates a key in a hardware security module.
type HskCreateRequest struct {
	Kty     string `json:"kty"`
	Use     string `json:"use,omitempty"`
	Alg     string `json:"alg,omitempty"`
	Kid     string `json:"kid,omitempty"`
	HsmName string `json:"hsmName"`
}

func (r *HskCreateRequest) Validate() error {
	if err := requireString("HskCreateRequest", "kty", r.Kty); err != nil {
		return err
	}
	if r.Kty != "EC" && r.Kty != "RSA" {
		return invalidField("HskCreateRequest", "kty", "must be EC or RSA")
	}
	return requireString("HskCreateRequest", "hsmName", r.HsmName)
}

// HskResponse is returned by /hsk/create, /hsk/get and /hsk/delete.
type HskResponse struct {
	ApiResult
	Action HskAction `json:"action"`
	Hsk    *Hsk      `json:"hsk,omitempty"`
}

// HskListResponse is returned by /hsk/get/list.
type HskListResponse struct {
	ApiResult
	Action HskAction `json:"action"`
	Hsks   []Hsk     `json:"hsks,omitempty"`
}

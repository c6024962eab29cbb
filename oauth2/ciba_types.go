package oauth2

import "github.com/jrsteele09/go-authlete/enum"

// DeliveryMode is the CIBA token delivery mode (backchannel_token_delivery_mode).
type DeliveryMode int16

const (
	// DeliveryModePoll has the client poll the token endpoint.
	DeliveryModePoll DeliveryMode = 1
	// DeliveryModePing notifies the client, which then calls the token endpoint.
	DeliveryModePing DeliveryMode = 2
	// DeliveryModePush delivers the tokens straight to the client notification endpoint.
	DeliveryModePush DeliveryMode = 3
)

var deliveryModes = enum.New("DeliveryMode",
	enum.Entry[DeliveryMode]{Value: DeliveryModePoll, Wire: "poll", Name: "POLL"},
	enum.Entry[DeliveryMode]{Value: DeliveryModePing, Wire: "ping", Name: "PING"},
	enum.Entry[DeliveryMode]{Value: DeliveryModePush, Wire: "push", Name: "PUSH"},
)

// DeliveryModes returns the lookup table for DeliveryMode.
func DeliveryModes() *enum.Set[DeliveryMode] { return deliveryModes }

// ParseDeliveryMode resolves a canonical wire string.
func ParseDeliveryMode(s string) (DeliveryMode, error) { return deliveryModes.FromString(s) }

func (m DeliveryMode) Enum() *enum.Set[DeliveryMode]    { return deliveryModes }
func (m DeliveryMode) Ordinal() int                     { return int(m) }
func (m DeliveryMode) String() string                   { return deliveryModes.Wire(m) }
func (m DeliveryMode) Name() string                     { return deliveryModes.Name(m) }
func (m DeliveryMode) MarshalJSON() ([]byte, error)     { return deliveryModes.MarshalJSON(m) }
func (m *DeliveryMode) UnmarshalJSON(data []byte) error { return deliveryModes.UnmarshalJSON(data, m) }

// UserIdentificationHintType names which hint a backchannel authentication request carried.
type UserIdentificationHintType int16

const (
	UserIdentificationHintTypeIDTokenHint    UserIdentificationHintType = 1
	UserIdentificationHintTypeLoginHint      UserIdentificationHintType = 2
	UserIdentificationHintTypeLoginHintToken UserIdentificationHintType = 3
)

var userIdentificationHintTypes = enum.New("UserIdentificationHintType",
	enum.Entry[UserIdentificationHintType]{Value: UserIdentificationHintTypeIDTokenHint, Wire: "id_token_hint", Name: "ID_TOKEN_HINT"},
	enum.Entry[UserIdentificationHintType]{Value: UserIdentificationHintTypeLoginHint, Wire: "login_hint", Name: "LOGIN_HINT"},
	enum.Entry[UserIdentificationHintType]{Value: UserIdentificationHintTypeLoginHintToken, Wire: "login_hint_token", Name: "LOGIN_HINT_TOKEN"},
)

// UserIdentificationHintTypes returns the lookup table for UserIdentificationHintType.
func UserIdentificationHintTypes() *enum.Set[UserIdentificationHintType] {
	return userIdentificationHintTypes
}

// ParseUserIdentificationHintType resolves a canonical wire string.
func ParseUserIdentificationHintType(s string) (UserIdentificationHintType, error) {
	return userIdentificationHintTypes.FromString(s)
}

func (t UserIdentificationHintType) Enum() *enum.Set[UserIdentificationHintType] {
	return userIdentificationHintTypes
}
func (t UserIdentificationHintType) Ordinal() int   { return int(t) }
func (t UserIdentificationHintType) String() string { return userIdentificationHintTypes.Wire(t) }
func (t UserIdentificationHintType) Name() string   { return userIdentificationHintTypes.Name(t) }
func (t UserIdentificationHintType) MarshalJSON() ([]byte, error) {
	return userIdentificationHintTypes.MarshalJSON(t)
}
func (t *UserIdentificationHintType) UnmarshalJSON(data []byte) error {
	return userIdentificationHintTypes.UnmarshalJSON(data, t)
}

// UserCodeCharset is the character set of device flow user codes.
type UserCodeCharset int16

const (
	// UserCodeCharsetBase20 is "BCDFGHJKLMNPQRSTVWXZ", consonants only.
	UserCodeCharsetBase20  UserCodeCharset = 1
	// UserCodeCharsetNumeric is "0123456789".
	UserCodeCharsetNumeric UserCodeCharset = 2
)

var userCodeCharsets = enum.New("UserCodeCharset",
	enum.Entry[UserCodeCharset]{Value: UserCodeCharsetBase20, Wire: "BASE20"},
	enum.Entry[UserCodeCharset]{Value: UserCodeCharsetNumeric, Wire: "NUMERIC"},
)

var userCodeAlphabets = map[UserCodeCharset]string{
	UserCodeCharsetBase20:  "BCDFGHJKLMNPQRSTVWXZ",
	UserCodeCharsetNumeric: "0123456789",
}

// UserCodeCharsets returns the lookup table for UserCodeCharset.
func UserCodeCharsets() *enum.Set[UserCodeCharset] { return userCodeCharsets }

// ParseUserCodeCharset resolves a canonical wire string.
func ParseUserCodeCharset(s string) (UserCodeCharset, error) { return userCodeCharsets.FromString(s) }

func (c UserCodeCharset) Enum() *enum.Set[UserCodeCharset] { return userCodeCharsets }
func (c UserCodeCharset) Ordinal() int                     { return int(c) }
func (c UserCodeCharset) String() string                   { return userCodeCharsets.Wire(c) }
func (c UserCodeCharset) Name() string                     { return userCodeCharsets.Name(c) }
func (c UserCodeCharset) MarshalJSON() ([]byte, error)     { return userCodeCharsets.MarshalJSON(c) }
func (c *UserCodeCharset) UnmarshalJSON(data []byte) error { return userCodeCharsets.UnmarshalJSON(data, c) }

// Characters returns the alphabet user codes are drawn from.
func (c UserCodeCharset) Characters() string {
	return userCodeAlphabets[c]
}

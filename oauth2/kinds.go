package oauth2

import (
	"sort"

	"github.com/jrsteele09/go-authlete/enum"
)

// Constant is one row of a kind's constant table.
type Constant struct {
	Ordinal int    `json:"ordinal"`
	Wire    string `json:"value"`
	Name    string `json:"name"`
}

func constants[T enum.Integer](s *enum.Set[T]) []Constant {
	entries := s.Entries()
	table := make([]Constant, len(entries))
	for i, e := range entries {
		table[i] = Constant{Ordinal: int(e.Value), Wire: e.Wire, Name: e.Name}
	}
	return table
}

// Kinds returns every protocol constant table keyed by kind name.
func Kinds() map[string][]Constant {
	return map[string][]Constant{
		applicationTypes.Kind():            constants(applicationTypes),
		claimTypes.Kind():                  constants(claimTypes),
		clientAuthMethods.Kind():           constants(clientAuthMethods),
		clientTypes.Kind():                 constants(clientTypes),
		codeChallengeMethods.Kind():        constants(codeChallengeMethods),
		deliveryModes.Kind():               constants(deliveryModes),
		displays.Kind():                    constants(displays),
		grantTypes.Kind():                  constants(grantTypes),
		hashAlgs.Kind():                    constants(hashAlgs),
		jweAlgs.Kind():                     constants(jweAlgs),
		jweEncs.Kind():                     constants(jweEncs),
		jwsAlgs.Kind():                     constants(jwsAlgs),
		prompts.Kind():                     constants(prompts),
		responseModes.Kind():               constants(responseModes),
		responseTypes.Kind():               constants(responseTypes),
		serviceProfiles.Kind():             constants(serviceProfiles),
		snses.Kind():                       constants(snses),
		subjectTypes.Kind():                constants(subjectTypes),
		tokenTypes.Kind():                  constants(tokenTypes),
		userCodeCharsets.Kind():            constants(userCodeCharsets),
		userIdentificationHintTypes.Kind(): constants(userIdentificationHintTypes),
	}
}

// KindNames returns the registered kind names in sorted order.
func KindNames() []string {
	kinds := Kinds()
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package utils

import "golang.org/x/net/idna"

// ToASCII converts a Unicode label to its A-label (punycode) form for
// conventional DNS wire encoding. Labels that are already ASCII, or that
// idna rejects, are returned unchanged — the codec must not fail an
// otherwise well-formed packet over a single cosmetic label.
func ToASCII(label string) string {
	out, err := idna.Lookup.ToASCII(label)
	if err != nil {
		return label
	}
	return out
}

// ToUnicode converts an A-label back to its Unicode (U-label) form, for
// mDNS/LLMNR presentation. Invalid input is returned unchanged.
func ToUnicode(label string) string {
	out, err := idna.Lookup.ToUnicode(label)
	if err != nil {
		return label
	}
	return out
}

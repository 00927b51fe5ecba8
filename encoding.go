package msg91

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// GSM 03.38 default alphabet and its extension table. Messages made of
// these runes fit the NORMAL template type; anything else needs UNICODE.
const (
	gsmAlphabet  = "@£$¥èéùìòÇ\nØø\rÅåΔ_ΦΓΛΩΠΨΣΘΞÆæßÉ !\"#¤%&'()*+,-./0123456789:;<=>?¡ABCDEFGHIJKLMNOPQRSTUVWXYZÄÖÑÜ§¿abcdefghijklmnopqrstuvwxyzäöñüà"
	gsmExtension = "\f^{}\\[~]|€"
)

var (
	gsmRunes    = runeSet(gsmAlphabet)
	gsmExtRunes = runeSet(gsmExtension)
)

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

// DetectSMSType reports the template type a body needs: NORMAL when every
// rune fits the GSM 03.38 default alphabet (extension table included),
// UNICODE otherwise.
func DetectSMSType(body string) SMSType {
	for _, r := range body {
		if _, ok := gsmRunes[r]; ok {
			continue
		}
		if _, ok := gsmExtRunes[r]; ok {
			continue
		}
		return SMSTypeUnicode
	}
	return SMSTypeNormal
}

// Segment size limits per encoding: a single GSM message holds 160
// septets, 153 once the concatenation header is needed; UCS-2 holds 70
// code units, 67 concatenated.
const (
	gsmSingleLimit  = 160
	gsmMultiLimit   = 153
	ucs2SingleLimit = 70
	ucs2MultiLimit  = 67
)

// MessageSegments returns how many SMS segments a body occupies. GSM
// extension-table runes cost two septets; UCS-2 counting uses UTF-16
// code units, so astral runes cost two units.
func MessageSegments(body string) int {
	if body == "" {
		return 0
	}

	if DetectSMSType(body) == SMSTypeNormal {
		septets := 0
		for _, r := range body {
			if _, ok := gsmExtRunes[r]; ok {
				septets += 2
				continue
			}
			septets++
		}
		return segmentCount(septets, gsmSingleLimit, gsmMultiLimit)
	}

	encoded, _, err := transform.Bytes(
		unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder(), []byte(body))
	if err != nil {
		// UTF-16 can represent any valid string; treat a failure as one
		// unit per rune.
		return segmentCount(len([]rune(body)), ucs2SingleLimit, ucs2MultiLimit)
	}
	return segmentCount(len(encoded)/2, ucs2SingleLimit, ucs2MultiLimit)
}

func segmentCount(units, single, multi int) int {
	if units <= single {
		return 1
	}
	return (units + multi - 1) / multi
}

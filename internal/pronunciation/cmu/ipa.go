package cmu

import (
	"strings"

	"github.com/heartmarshall/poemfactory/internal/domain"
)

// arpabetMap maps ARPAbet phonemes (without stress markers) to IPA symbols.
var arpabetMap = map[string]string{
	"AA": "\u0251",     // ɑ
	"AE": "\u00e6",     // æ
	"AH": "\u028c",     // ʌ
	"AO": "\u0254",     // ɔ
	"AW": "a\u028a",    // aʊ
	"AY": "a\u026a",    // aɪ
	"B":  "b",
	"CH": "t\u0283",    // tʃ
	"D":  "d",
	"DH": "\u00f0",     // ð
	"EH": "\u025b",     // ɛ
	"ER": "\u025d",     // ɝ
	"EY": "e\u026a",    // eɪ
	"F":  "f",
	"G":  "\u0261",     // ɡ
	"HH": "h",
	"IH": "\u026a",     // ɪ
	"IY": "i",
	"JH": "d\u0292",    // dʒ
	"K":  "k",
	"L":  "l",
	"M":  "m",
	"N":  "n",
	"NG": "\u014b",     // ŋ
	"OW": "o\u028a",    // oʊ
	"OY": "\u0254\u026a", // ɔɪ
	"P":  "p",
	"R":  "\u0279",     // ɹ
	"S":  "s",
	"SH": "\u0283",     // ʃ
	"T":  "t",
	"TH": "\u03b8",     // θ
	"UH": "\u028a",     // ʊ
	"UW": "u",
	"V":  "v",
	"W":  "w",
	"Y":  "j",
	"Z":  "z",
	"ZH": "\u0292",     // ʒ
}

// IPA renders a pronunciation as a slash-wrapped IPA transcription for display.
// Unknown phonemes are dropped.
func IPA(p domain.Pronunciation) string {
	var b strings.Builder
	b.WriteByte('/')
	for _, ph := range p {
		if ipa, ok := arpabetMap[ph.Base()]; ok {
			b.WriteString(ipa)
		}
	}
	b.WriteByte('/')
	return b.String()
}

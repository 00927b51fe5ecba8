package msg91_test

import (
	"strings"
	"testing"

	msg91 "github.com/ajayykmr/msg91-go"
)

func TestDetectSMSType(t *testing.T) {
	cases := []struct {
		body string
		want msg91.SMSType
	}{
		{"", msg91.SMSTypeNormal},
		{"hello world", msg91.SMSTypeNormal},
		{"price: 5€ {offer}", msg91.SMSTypeNormal},
		{"Grüße aus Köln", msg91.SMSTypeNormal},
		{"done ✓", msg91.SMSTypeUnicode},
		{"नमस्ते", msg91.SMSTypeUnicode},
		{"emoji 😀", msg91.SMSTypeUnicode},
	}
	for _, tc := range cases {
		if got := msg91.DetectSMSType(tc.body); got != tc.want {
			t.Fatalf("DetectSMSType(%q) = %s, want %s", tc.body, got, tc.want)
		}
	}
}

func TestMessageSegmentsGSM(t *testing.T) {
	if got := msg91.MessageSegments(""); got != 0 {
		t.Fatalf("empty body should take 0 segments, got %d", got)
	}
	if got := msg91.MessageSegments("hello"); got != 1 {
		t.Fatalf("short message should take 1 segment, got %d", got)
	}
	if got := msg91.MessageSegments(strings.Repeat("a", 160)); got != 1 {
		t.Fatalf("160 septets should fit one segment, got %d", got)
	}
	if got := msg91.MessageSegments(strings.Repeat("a", 161)); got != 2 {
		t.Fatalf("161 septets should take 2 segments, got %d", got)
	}
	if got := msg91.MessageSegments(strings.Repeat("a", 307)); got != 3 {
		t.Fatalf("307 septets should take 3 segments, got %d", got)
	}
}

func TestMessageSegmentsCountsExtensionRunesTwice(t *testing.T) {
	// 158 plain septets plus the two-septet euro sign is exactly 160.
	if got := msg91.MessageSegments(strings.Repeat("a", 158) + "€"); got != 1 {
		t.Fatalf("expected 1 segment, got %d", got)
	}
	if got := msg91.MessageSegments(strings.Repeat("a", 159) + "€"); got != 2 {
		t.Fatalf("expected 2 segments, got %d", got)
	}
}

func TestMessageSegmentsUnicode(t *testing.T) {
	if got := msg91.MessageSegments(strings.Repeat("✓", 70)); got != 1 {
		t.Fatalf("70 UCS-2 units should fit one segment, got %d", got)
	}
	if got := msg91.MessageSegments(strings.Repeat("✓", 71)); got != 2 {
		t.Fatalf("71 UCS-2 units should take 2 segments, got %d", got)
	}
	// Astral runes occupy two UTF-16 code units each.
	if got := msg91.MessageSegments(strings.Repeat("😀", 35)); got != 1 {
		t.Fatalf("35 astral runes should fit one segment, got %d", got)
	}
	if got := msg91.MessageSegments(strings.Repeat("😀", 36)); got != 2 {
		t.Fatalf("36 astral runes should take 2 segments, got %d", got)
	}
}

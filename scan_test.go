package jptext

import "testing"

func TestFirstKanaCluster(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"ｶ", []string{"ｶ"}},
		{"ｶﾞｷ", []string{"ｶﾞ", "ｷ"}},
		{"ﾊﾟﾝ", []string{"ﾊﾟ", "ﾝ"}},
		{"ﾞﾞﾞ", []string{"ﾞﾞ", "ﾞ"}},
		{"aﾟb", []string{"aﾟ", "b"}},
		{"ガ", []string{"ガ"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var fromString, fromBytes []string
			str := tt.input
			for len(str) > 0 {
				var c string
				c, str, _, _ = FirstKanaClusterInString(str)
				fromString = append(fromString, c)
			}
			b := []byte(tt.input)
			for len(b) > 0 {
				var c []byte
				c, b, _, _ = FirstKanaCluster(b)
				fromBytes = append(fromBytes, string(c))
			}
			if len(fromString) != len(tt.expected) || len(fromBytes) != len(tt.expected) {
				t.Fatalf("got %q and %q, want %q", fromString, fromBytes, tt.expected)
			}
			for i := range tt.expected {
				if fromString[i] != tt.expected[i] || fromBytes[i] != tt.expected[i] {
					t.Errorf("cluster %d: got %q and %q, want %q", i, fromString[i], fromBytes[i], tt.expected[i])
				}
			}
		})
	}
}

func TestFirstKanaClusterParts(t *testing.T) {
	_, rest, base, mark := FirstKanaClusterInString("ﾎﾟﾝ")
	if base != 'ﾎ' || mark != HalfwidthSemiVoicedMark || rest != "ﾝ" {
		t.Errorf("got base %q mark %q rest %q", base, mark, rest)
	}
	_, rest, base, mark = FirstKanaClusterInString("ﾝ")
	if base != 'ﾝ' || mark != 0 || rest != "" {
		t.Errorf("got base %q mark %q rest %q", base, mark, rest)
	}
}

package media

import "testing"

func TestParseNameAcceptsConvention(t *testing.T) {
	cases := []struct {
		name string
		key  int
	}{
		{"GH010013.MP4", 10013},
		{"GH020013.mp4", 20013},
		{"GX040016.mov", 40016},
		{"gh010013.AVI", 10013},
		{"AB000001.mp4", 1},
	}
	for _, tc := range cases {
		key, ok := ParseName(tc.name)
		if !ok {
			t.Fatalf("ParseName(%q) rejected valid name", tc.name)
		}
		if key != tc.key {
			t.Fatalf("ParseName(%q) = %d, want %d", tc.name, key, tc.key)
		}
	}
}

func TestParseNameRejectsMalformed(t *testing.T) {
	names := []string{
		"",
		"GH010013",         // no extension
		"GH010013.mkv",     // extension outside the allowed set
		"GH10013.MP4",      // digit field too short
		"GH0100134.MP4",    // digit field too long
		"G1010013.MP4",     // digit in the prefix
		"GHX10013.MP4",     // letter in the digit field
		"01GH0013.MP4",     // prefix and digits swapped
		"GH01-013.MP4",     // punctuation in the digit field
		"holiday_cut.mp4",  // unrelated naming scheme
		"GH010013.MP4.bak", // trailing suffix
	}
	for _, name := range names {
		if _, ok := ParseName(name); ok {
			t.Fatalf("ParseName(%q) accepted malformed name", name)
		}
	}
}

func TestAllowedExtension(t *testing.T) {
	for _, ext := range []string{".mp4", ".MP4", ".mov", ".MoV", ".avi"} {
		if !AllowedExtension(ext) {
			t.Fatalf("expected %q to be allowed", ext)
		}
	}
	for _, ext := range []string{".mkv", ".txt", "", "mp4"} {
		if AllowedExtension(ext) {
			t.Fatalf("expected %q to be rejected", ext)
		}
	}
}

func TestBaseStripsExtension(t *testing.T) {
	f := File{Name: "GH010013.MP4"}
	if got := f.Base(); got != "GH010013" {
		t.Fatalf("Base() = %q, want GH010013", got)
	}
}

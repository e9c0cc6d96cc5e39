package domain

import (
	"strings"
	"testing"
)

func TestImageDataURL(t *testing.T) {
	img := Image{Data: []byte{0x89, 0x50, 0x4e, 0x47}, MIMEType: "image/png"}
	got := img.DataURL()
	if !strings.HasPrefix(got, "data:image/png;base64,") {
		t.Fatalf("DataURL missing mime declaration: %s", got)
	}
	if got != "data:image/png;base64,iVBORw==" {
		t.Fatalf("unexpected data URL: %s", got)
	}
}

func TestImageExt(t *testing.T) {
	cases := []struct {
		mime string
		want string
	}{
		{"image/png", ".png"},
		{"image/jpeg", ".jpg"},
		{"IMAGE/JPEG", ".jpg"},
		{"image/webp", ".webp"},
		{"image/gif", ".gif"},
		{"application/octet-stream", ".png"},
		{"", ".png"},
	}
	for _, tc := range cases {
		img := Image{MIMEType: tc.mime}
		if got := img.Ext(); got != tc.want {
			t.Fatalf("Ext(%q) = %q, want %q", tc.mime, got, tc.want)
		}
	}
}

func TestImageExportName(t *testing.T) {
	img := Image{MIMEType: "image/jpeg"}
	if got := img.ExportName(1700000000); got != "enhanced-image-1700000000.jpg" {
		t.Fatalf("unexpected export name: %s", got)
	}
}

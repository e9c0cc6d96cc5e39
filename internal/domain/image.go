package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Image is an immutable in-memory image payload plus its MIME type. It is used
// both for the uploaded source and for the enhanced result returned by the
// provider.
type Image struct {
	Data     []byte
	MIMEType string
}

// DataURL renders the image as a self-describing data URL, usable directly as
// an <img> source or a file export.
func (i Image) DataURL() string {
	return fmt.Sprintf("data:%s;base64,%s", i.MIMEType, base64.StdEncoding.EncodeToString(i.Data))
}

// Ext returns the file extension matching the image MIME type. Unknown types
// fall back to .png since the provider defaults to PNG output.
func (i Image) Ext() string {
	switch strings.ToLower(strings.TrimSpace(i.MIMEType)) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}

// ExportName builds the download filename for an enhanced result using a
// unix-timestamp suffix.
func (i Image) ExportName(unix int64) string {
	return fmt.Sprintf("enhanced-image-%d%s", unix, i.Ext())
}
